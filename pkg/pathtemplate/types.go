package pathtemplate

import (
	"fmt"
	"time"
)

// Kind discriminates the token variants a path can be built from.
type Kind int

const (
	KindPrefix Kind = iota
	KindPaddedNumber
	KindRandomNumber
	KindSemver
	KindTimestamp
	KindName
	KindUpDown
	KindDoUndo
	KindUnderscore
	KindDot
	KindDash
	KindExtension
)

// UpDown is the direction a migration runs.
type UpDown int

const (
	Up UpDown = iota
	Down
)

// DoUndo is the do/undo alias for UpDown some projects use instead of up/down.
type DoUndo int

const (
	Do DoUndo = iota
	Undo
)

// AsUpDown maps the do/undo alias onto the canonical up/down direction.
func (d DoUndo) AsUpDown() UpDown {
	if d == Do {
		return Up
	}
	return Down
}

// PaddedNumber is a zero-padded counter, e.g. "0001".
type PaddedNumber struct {
	Width  int
	Number int
}

// Semver is a dotted major.minor.patch number, each component remembering
// the width it was originally zero-padded to.
type Semver struct {
	Major, Minor, Patch                int
	WidthMajor, WidthMinor, WidthPatch int
}

// IncrementMinor bumps the minor component and resets patch to zero, the
// default behavior when resolving a template whose data carries no explicit
// semver override.
func (s Semver) IncrementMinor() Semver {
	s.Minor++
	s.Patch = 0
	return s
}

func (s Semver) String() string {
	return fmt.Sprintf("%0*d.%0*d.%0*d", s.WidthMajor, s.Major, s.WidthMinor, s.Minor, s.WidthPatch, s.Patch)
}

// SubSecondKind distinguishes the precision of a Time's fractional second.
type SubSecondKind int

const (
	SubMilli SubSecondKind = iota
	SubMicro
	SubNano
)

type SubSecond struct {
	Kind SubSecondKind
}

type Time struct {
	Hour, Minute int
	HourSep      string
	MinuteSep    string
	HasSecond    bool
	SecondSep    string
	HasSubSecond bool
	SubSecond    SubSecond
}

type Date struct {
	Year, Month, Day int
	YearSep          string
	MonthSep         string
}

type DateTimeValue struct {
	Date    Date
	DateSep string
	HasTime bool
	Time    Time
}

// EpochKind distinguishes the unit an epoch timestamp's digits are in.
type EpochKind int

const (
	EpochSecond EpochKind = iota
	EpochMilli
	EpochMicro
	EpochNano
)

type EpochTimestamp struct {
	Kind EpochKind
}

// TimestampKind distinguishes an epoch-style timestamp from a calendar one.
type TimestampKind int

const (
	TimestampEpoch TimestampKind = iota
	TimestampDateTime
)

type Timestamp struct {
	Kind     TimestampKind
	Epoch    EpochTimestamp
	DateTime DateTimeValue
}

// Token is a single lexical element of a path segment. Only the field(s)
// matching Kind are meaningful.
type Token struct {
	Kind      Kind
	Prefix    string
	Padded    PaddedNumber
	Semver    Semver
	Timestamp Timestamp
	Name      string
	UpDown    UpDown
	DoUndo    DoUndo
}

// SegmentKind is Dir for a path component that precedes a path separator,
// File for the final component (which always ends in ".sql").
type SegmentKind int

const (
	SegDir SegmentKind = iota
	SegFile
)

type Segment struct {
	Kind   SegmentKind
	Tokens []Token
}

// PathTemplate is a parsed migration path, abstracted into the tokens that
// make it up so a new path with the same shape can be resolved from fresh
// TemplateData.
type PathTemplate struct {
	Segments []Segment
}

// TemplateData supplies the values a PathTemplate's tokens resolve against.
// The Has* flags distinguish "use the template's own default" from
// "caller explicitly supplied a value" (spec.md §4.5's resolve semantics).
type TemplateData struct {
	Timestamp  time.Time
	Name       string
	HasUpDown  bool
	UpDown     UpDown
	HasCounter bool
	Counter    int
	HasRandom  bool
	Random     int
	HasSemver  bool
	Semver     Semver
}

// IncludesUpDown reports whether any segment carries an UpDown/DoUndo token.
func (pt PathTemplate) IncludesUpDown() bool {
	for _, seg := range pt.Segments {
		for i := len(seg.Tokens) - 1; i >= 0; i-- {
			if seg.Tokens[i].Kind == KindUpDown || seg.Tokens[i].Kind == KindDoUndo {
				return true
			}
		}
	}
	return false
}

// WithUpDown returns a copy of pt whose final segment is guaranteed to carry
// an UpDown token, inserting ".up" just before the extension when one isn't
// already present.
func (pt PathTemplate) WithUpDown() PathTemplate {
	if len(pt.Segments) == 0 {
		return pt
	}

	segs := append([]Segment(nil), pt.Segments...)
	last := segs[len(segs)-1]
	toks := append([]Token(nil), last.Tokens...)

	ext := Token{Kind: KindExtension}
	if len(toks) > 0 {
		ext = toks[len(toks)-1]
		toks = toks[:len(toks)-1]
	}

	if len(toks) == 0 || (toks[len(toks)-1].Kind != KindUpDown && toks[len(toks)-1].Kind != KindDoUndo) {
		toks = append(toks, Token{Kind: KindDot}, Token{Kind: KindUpDown, UpDown: Up})
	}
	toks = append(toks, ext)

	last.Tokens = toks
	segs[len(segs)-1] = last
	return PathTemplate{Segments: segs}
}

// DefaultTemplate is the fallback shape used when no existing migration path
// is available to learn a naming convention from.
func DefaultTemplate() PathTemplate {
	return PathTemplate{
		Segments: []Segment{
			{
				Kind: SegFile,
				Tokens: []Token{
					{Kind: KindTimestamp, Timestamp: Timestamp{Kind: TimestampEpoch, Epoch: EpochTimestamp{Kind: EpochSecond}}},
					{Kind: KindUnderscore},
					{Kind: KindName, Name: "generated_migration"},
					{Kind: KindDot},
					{Kind: KindUpDown, UpDown: Up},
					{Kind: KindExtension},
				},
			},
		},
	}
}
