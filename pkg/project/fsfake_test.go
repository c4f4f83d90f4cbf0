package project_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pseudomuto/sqlschema/pkg/project"
)

// fakeFilesystem is a minimal in-memory project.Filesystem used to exercise
// the orchestration layer without touching disk, following the teacher's
// pkg/cmd/testutil pattern of isolating filesystem side effects in tests.
type fakeFilesystem struct {
	files map[string][]byte
	dirs  map[string]bool
}

func newFakeFilesystem() *fakeFilesystem {
	return &fakeFilesystem{files: map[string][]byte{}, dirs: map[string]bool{}}
}

func (f *fakeFilesystem) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (f *fakeFilesystem) WriteFile(path string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	f.files[path] = cp
	return nil
}

func (f *fakeFilesystem) MkdirAll(path string) error {
	for p := path; p != "." && p != "/" && p != ""; p = filepath.Dir(p) {
		f.dirs[p] = true
	}
	return nil
}

func (f *fakeFilesystem) Stat(path string) (fs.FileInfo, error) {
	if _, ok := f.files[path]; ok {
		return fakeFileInfo{name: filepath.Base(path), dir: false}, nil
	}
	if f.dirs[path] {
		return fakeFileInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (f *fakeFilesystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	var paths []string
	for p := range f.files {
		if p == root || strings.HasPrefix(p, root+"/") {
			paths = append(paths, p)
		}
	}
	for p := range f.dirs {
		if p == root || strings.HasPrefix(p, root+"/") {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	if err := fn(root, fakeDirEntry{fakeFileInfo{name: filepath.Base(root), dir: true}}, nil); err != nil {
		return err
	}
	for _, p := range paths {
		if p == root {
			continue
		}
		_, isDir := f.dirs[p]
		if err := fn(p, fakeDirEntry{fakeFileInfo{name: filepath.Base(p), dir: isDir}}, nil); err != nil {
			return err
		}
	}
	return nil
}

type fakeFileInfo struct {
	name string
	dir  bool
}

func (i fakeFileInfo) Name() string { return i.name }
func (i fakeFileInfo) Size() int64  { return 0 }
func (i fakeFileInfo) Mode() os.FileMode {
	if i.dir {
		return os.ModeDir | 0o755
	}
	return 0o644
}
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return i.dir }
func (i fakeFileInfo) Sys() any           { return nil }

type fakeDirEntry struct{ info fakeFileInfo }

func (e fakeDirEntry) Name() string               { return e.info.name }
func (e fakeDirEntry) IsDir() bool                { return e.info.dir }
func (e fakeDirEntry) Type() fs.FileMode           { return e.info.Mode().Type() }
func (e fakeDirEntry) Info() (fs.FileInfo, error)  { return e.info, nil }

var _ project.Filesystem = (*fakeFilesystem)(nil)
