package pathtemplate

import (
	"fmt"
	"strconv"
	"time"
)

// ParseError reports where in a path the scanner gave up.
type ParseError struct {
	Input string
	Pos   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pathtemplate: couldn't make sense of the migration naming convention in %q at position %d", e.Input, e.Pos)
}

// Parse scans path (a filename, or a dir/filename pair) into a PathTemplate.
func Parse(path string) (PathTemplate, error) {
	sc := &scanner{s: path}

	if dir, ok := tryDirIdent(sc); ok {
		save := sc.pos
		if sc.tryLiteral("/") || sc.tryLiteral(`\`) {
			if file, ok := tryFileNonIdent(sc); ok && sc.eof() {
				return PathTemplate{Segments: []Segment{dir, file}}, nil
			}
		}
		sc.pos = save
	}
	sc.pos = 0

	if file, ok := tryFileIdent(sc); ok && sc.eof() {
		return PathTemplate{Segments: []Segment{file}}, nil
	}

	return PathTemplate{}, &ParseError{Input: path, Pos: sc.pos}
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool    { return sc.pos >= len(sc.s) }
func (sc *scanner) rest() string { return sc.s[sc.pos:] }

func (sc *scanner) tryLiteral(lit string) bool {
	if len(sc.rest()) >= len(lit) && sc.rest()[:len(lit)] == lit {
		sc.pos += len(lit)
		return true
	}
	return false
}

func (sc *scanner) tryDigits(n int) (string, bool) {
	r := sc.rest()
	if len(r) < n {
		return "", false
	}
	for i := 0; i < n; i++ {
		if r[i] < '0' || r[i] > '9' {
			return "", false
		}
	}
	sc.pos += n
	return r[:n], true
}

func (sc *scanner) tryDigits1() (string, bool) {
	r := sc.rest()
	i := 0
	for i < len(r) && r[i] >= '0' && r[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", false
	}
	sc.pos += i
	return r[:i], true
}

func (sc *scanner) trySepByte() (byte, bool) {
	if sc.eof() {
		return 0, false
	}
	c := sc.s[sc.pos]
	if c == '.' || c == '_' || c == '-' {
		sc.pos++
		return c, true
	}
	return 0, false
}

func sepToken(c byte) Token {
	switch c {
	case '.':
		return Token{Kind: KindDot}
	case '_':
		return Token{Kind: KindUnderscore}
	default:
		return Token{Kind: KindDash}
	}
}

// tryPrefix matches an optional run of z/Z followed by a mandatory v/V,
// e.g. "v", "zv", "ZV".
func tryPrefix(sc *scanner) (Token, bool) {
	save := sc.pos
	start := sc.pos
	for !sc.eof() && (sc.s[sc.pos] == 'z' || sc.s[sc.pos] == 'Z') {
		sc.pos++
	}
	if sc.eof() || (sc.s[sc.pos] != 'v' && sc.s[sc.pos] != 'V') {
		sc.pos = save
		return Token{}, false
	}
	sc.pos++
	return Token{Kind: KindPrefix, Prefix: sc.s[start:sc.pos]}, true
}

func tryName(sc *scanner) (Token, bool) {
	r := sc.rest()
	i := 0
	for i < len(r) && r[i] != '.' {
		i++
	}
	if i == 0 {
		return Token{}, false
	}
	sc.pos += i
	return Token{Kind: KindName, Name: r[:i]}, true
}

// tryUpDownOrDoUndo checks "down" before "undo" before "up" before "do", so
// "do" doesn't falsely prefix-match the start of "down".
func tryUpDownOrDoUndo(sc *scanner) (Token, bool) {
	switch {
	case sc.tryLiteral("down"):
		return Token{Kind: KindUpDown, UpDown: Down}, true
	case sc.tryLiteral("undo"):
		return Token{Kind: KindDoUndo, DoUndo: Undo}, true
	case sc.tryLiteral("up"):
		return Token{Kind: KindUpDown, UpDown: Up}, true
	case sc.tryLiteral("do"):
		return Token{Kind: KindDoUndo, DoUndo: Do}, true
	default:
		return Token{}, false
	}
}

var minEpochDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
var maxEpochDate = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)

func epochInRange(t time.Time) bool {
	return !t.Before(minEpochDate) && t.Before(maxEpochDate)
}

// tryEpoch reads a digit run and tries reinterpreting it as nanoseconds,
// microseconds, milliseconds, then seconds since the Unix epoch, keeping the
// first interpretation that lands within [2000-01-01, 2100-01-01).
func tryEpoch(sc *scanner) (Token, bool) {
	save := sc.pos
	digits, ok := sc.tryDigits1()
	if !ok {
		return Token{}, false
	}
	val, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		sc.pos = save
		return Token{}, false
	}

	candidates := []struct {
		kind EpochKind
		t    time.Time
	}{
		{EpochNano, time.Unix(0, val)},
		{EpochMicro, time.UnixMicro(val)},
		{EpochMilli, time.UnixMilli(val)},
		{EpochSecond, time.Unix(val, 0)},
	}
	for _, c := range candidates {
		if epochInRange(c.t) {
			return Token{Kind: KindTimestamp, Timestamp: Timestamp{Kind: TimestampEpoch, Epoch: EpochTimestamp{Kind: c.kind}}}, true
		}
	}

	sc.pos = save
	return Token{}, false
}

// tryDatetime matches a "20YY[sep]MM[sep]DD[[sep]time]" calendar timestamp;
// month and day are required, the time part is optional.
func tryDatetime(sc *scanner) (Token, bool) {
	save := sc.pos

	if !sc.tryLiteral("20") {
		return Token{}, false
	}
	yy, ok := sc.tryDigits(2)
	if !ok {
		sc.pos = save
		return Token{}, false
	}
	year, _ := strconv.Atoi("20" + yy)

	yearSep := ""
	if c, ok := sc.trySepByte(); ok {
		yearSep = string(c)
	}
	mm, ok := sc.tryDigits(2)
	if !ok {
		sc.pos = save
		return Token{}, false
	}
	month, _ := strconv.Atoi(mm)
	if month < 1 || month > 12 {
		sc.pos = save
		return Token{}, false
	}

	monthSep := ""
	if c, ok := sc.trySepByte(); ok {
		monthSep = string(c)
	}
	dd, ok := sc.tryDigits(2)
	if !ok {
		sc.pos = save
		return Token{}, false
	}
	day, _ := strconv.Atoi(dd)
	if day < 1 || day > 31 {
		sc.pos = save
		return Token{}, false
	}

	date := Date{Year: year, YearSep: yearSep, Month: month, MonthSep: monthSep, Day: day}

	dateSep := ""
	hasTime := false
	var timeVal Time
	saveBeforeTime := sc.pos
	if c, ok := sc.trySepByte(); ok {
		dateSep = string(c)
	}
	if tv, ok := tryTime(sc); ok {
		hasTime = true
		timeVal = tv
	} else {
		sc.pos = saveBeforeTime
		dateSep = ""
	}

	return Token{
		Kind: KindTimestamp,
		Timestamp: Timestamp{
			Kind: TimestampDateTime,
			DateTime: DateTimeValue{
				Date:    date,
				DateSep: dateSep,
				HasTime: hasTime,
				Time:    timeVal,
			},
		},
	}, true
}

func tryTime(sc *scanner) (Time, bool) {
	save := sc.pos

	hh, ok := sc.tryDigits(2)
	if !ok {
		sc.pos = save
		return Time{}, false
	}
	hour, _ := strconv.Atoi(hh)
	if hour < 1 || hour > 12 {
		sc.pos = save
		return Time{}, false
	}

	hourSep := ""
	if c, ok := sc.trySepByte(); ok {
		hourSep = string(c)
	}

	mm, ok := sc.tryDigits(2)
	if !ok {
		sc.pos = save
		return Time{}, false
	}
	minute, _ := strconv.Atoi(mm)
	if minute >= 60 {
		sc.pos = save
		return Time{}, false
	}

	t := Time{Hour: hour, HourSep: hourSep, Minute: minute}

	saveBeforeSecond := sc.pos
	minuteSep := ""
	if c, ok := sc.trySepByte(); ok {
		minuteSep = string(c)
	}
	ss, ok := sc.tryDigits(2)
	if !ok {
		sc.pos = saveBeforeSecond
		return t, true
	}
	second, _ := strconv.Atoi(ss)
	if second >= 60 {
		sc.pos = saveBeforeSecond
		return t, true
	}
	t.MinuteSep = minuteSep
	t.HasSecond = true

	saveBeforeSub := sc.pos
	secondSep := ""
	if c, ok := sc.trySepByte(); ok {
		secondSep = string(c)
	}
	if sub, ok := trySubSecond(sc); ok {
		t.SecondSep = secondSep
		t.HasSubSecond = true
		t.SubSecond = sub
	} else {
		sc.pos = saveBeforeSub
	}

	return t, true
}

// trySubSecond tries nano (9 digits), then micro (6), then milli (1-3), in
// that order so the longest exact-width match wins before falling back to a
// shorter one.
func trySubSecond(sc *scanner) (SubSecond, bool) {
	save := sc.pos
	if _, ok := sc.tryDigits(9); ok {
		return SubSecond{Kind: SubNano}, true
	}
	sc.pos = save
	if _, ok := sc.tryDigits(6); ok {
		return SubSecond{Kind: SubMicro}, true
	}
	sc.pos = save
	r := sc.rest()
	n := 0
	for n < len(r) && n < 3 && r[n] >= '0' && r[n] <= '9' {
		n++
	}
	if n == 0 {
		return SubSecond{}, false
	}
	sc.pos += n
	return SubSecond{Kind: SubMilli}, true
}

func trySemver(sc *scanner) (Token, bool) {
	save := sc.pos

	major, ok := sc.tryDigits1()
	if !ok {
		return Token{}, false
	}
	if !sc.tryLiteral(".") {
		sc.pos = save
		return Token{}, false
	}
	minor, ok := sc.tryDigits1()
	if !ok {
		sc.pos = save
		return Token{}, false
	}
	if !sc.tryLiteral(".") {
		sc.pos = save
		return Token{}, false
	}
	patch, ok := sc.tryDigits1()
	if !ok {
		sc.pos = save
		return Token{}, false
	}

	maj, _ := strconv.Atoi(major)
	min, _ := strconv.Atoi(minor)
	pat, _ := strconv.Atoi(patch)
	return Token{Kind: KindSemver, Semver: Semver{
		Major: maj, Minor: min, Patch: pat,
		WidthMajor: len(major), WidthMinor: len(minor), WidthPatch: len(patch),
	}}, true
}

func tryPadded(sc *scanner) (Token, bool) {
	digits, ok := sc.tryDigits1()
	if !ok {
		return Token{}, false
	}
	n, _ := strconv.Atoi(digits)
	return Token{Kind: KindPaddedNumber, Padded: PaddedNumber{Width: len(digits), Number: n}}, true
}

// tryNumber is the core numeric alternative, tried in the order datetime,
// epoch timestamp, semver, padded number (spec.md §4.5's tie-break rule).
func tryNumber(sc *scanner) (Token, bool) {
	if t, ok := tryDatetime(sc); ok {
		return t, true
	}
	if t, ok := tryEpoch(sc); ok {
		return t, true
	}
	if t, ok := trySemver(sc); ok {
		return t, true
	}
	return tryPadded(sc)
}

func trySepRun(sc *scanner, min int) ([]Token, bool) {
	save := sc.pos
	var toks []Token
	for {
		c, ok := sc.trySepByte()
		if !ok {
			break
		}
		toks = append(toks, sepToken(c))
	}
	if len(toks) < min {
		sc.pos = save
		return nil, false
	}
	return toks, true
}

// tryDirIdent matches a directory segment: [prefix] number [sep+ name].
func tryDirIdent(sc *scanner) (Segment, bool) {
	save := sc.pos
	var tokens []Token

	if t, ok := tryPrefix(sc); ok {
		tokens = append(tokens, t)
	}
	num, ok := tryNumber(sc)
	if !ok {
		sc.pos = save
		return Segment{}, false
	}
	tokens = append(tokens, num)

	saveBeforeName := sc.pos
	if seps, ok := trySepRun(sc, 1); ok {
		if name, ok := tryName(sc); ok {
			tokens = append(tokens, seps...)
			tokens = append(tokens, name)
		} else {
			sc.pos = saveBeforeName
		}
	}

	return Segment{Kind: SegDir, Tokens: tokens}, true
}

// tryFileNonIdent matches a bare "up.sql"/"down.sql"/"do.sql"/"undo.sql".
func tryFileNonIdent(sc *scanner) (Segment, bool) {
	save := sc.pos
	updown, ok := tryUpDownOrDoUndo(sc)
	if !ok {
		return Segment{}, false
	}
	if !sc.tryLiteral(".sql") {
		sc.pos = save
		return Segment{}, false
	}
	return Segment{Kind: SegFile, Tokens: []Token{updown, {Kind: KindExtension}}}, true
}

// tryFileIdent matches a file segment: [prefix] number [sep+ name] [.updown] .sql
//
// The separator-before-name rule requires at least one separator in both
// tryDirIdent and here; the original grammar this is grounded on allows a
// bare (unseparated) name in the file case, which risks a name like "up" in
// "00152up.sql" misparsing as a Name token rather than an UpDown token.
// Requiring a separator in both productions removes the ambiguity.
func tryFileIdent(sc *scanner) (Segment, bool) {
	save := sc.pos
	var tokens []Token

	if t, ok := tryPrefix(sc); ok {
		tokens = append(tokens, t)
	}
	num, ok := tryNumber(sc)
	if !ok {
		sc.pos = save
		return Segment{}, false
	}
	tokens = append(tokens, num)

	saveBeforeName := sc.pos
	if seps, ok := trySepRun(sc, 1); ok {
		if name, ok := tryName(sc); ok {
			tokens = append(tokens, seps...)
			tokens = append(tokens, name)
		} else {
			sc.pos = saveBeforeName
		}
	}

	saveBeforeUpDown := sc.pos
	if sc.tryLiteral(".") {
		if updown, ok := tryUpDownOrDoUndo(sc); ok {
			tokens = append(tokens, Token{Kind: KindDot}, updown)
		} else {
			sc.pos = saveBeforeUpDown
		}
	}

	if !sc.tryLiteral(".sql") {
		sc.pos = save
		return Segment{}, false
	}
	tokens = append(tokens, Token{Kind: KindExtension})

	return Segment{Kind: SegFile, Tokens: tokens}, true
}
