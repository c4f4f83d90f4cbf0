package project

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlschema/pkg/consts"
)

type (
	// Filesystem is the orchestration layer's external collaborator for
	// reading, writing and walking the schema file and migrations directory
	// (spec.md §4.7). osFilesystem is the production implementation; tests
	// substitute an in-memory fake.
	Filesystem interface {
		ReadFile(path string) ([]byte, error)
		WriteFile(path string, data []byte) error
		MkdirAll(path string) error
		Stat(path string) (fs.FileInfo, error)
		WalkDir(root string, fn fs.WalkDirFunc) error
	}

	// Clock yields the current instant, used only to stamp a new migration's
	// timestamp (spec.md §4.7). realClock is the production implementation.
	Clock interface {
		Now() time.Time
	}

	osFilesystem struct{}

	realClock struct{}
)

// OSFilesystem returns the Filesystem backed by the local disk.
func OSFilesystem() Filesystem { return osFilesystem{} }

// RealClock returns the Clock backed by time.Now.
func RealClock() Clock { return realClock{} }

func (osFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFilesystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, consts.ModeFile)
}

func (osFilesystem) MkdirAll(path string) error {
	return os.MkdirAll(path, consts.ModeDir)
}

func (osFilesystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osFilesystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// ensureFile makes sure path exists as a regular file, creating an empty one
// (and its parent directories) if absent.
func ensureFile(fsys Filesystem, path string) error {
	if _, err := fsys.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, "stat %s", path)
		}
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := fsys.MkdirAll(dir); err != nil {
				return errors.Wrapf(err, "create %s", dir)
			}
		}
		if err := fsys.WriteFile(path, nil); err != nil {
			return errors.Wrapf(err, "create %s", path)
		}
		return nil
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("%s must be a regular file", path)
	}
	return nil
}

// ensureDir makes sure path exists as a directory.
func ensureDir(fsys Filesystem, path string) error {
	if _, err := fsys.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, "stat %s", path)
		}
		return errors.Wrapf(fsys.MkdirAll(path), "create %s", path)
	}
	return nil
}
