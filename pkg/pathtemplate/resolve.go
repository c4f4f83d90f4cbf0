package pathtemplate

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve renders pt against data, producing a concrete path (spec.md §4.5).
//
// Segments are joined with "/". original_source/src/path_template.rs
// discards the path separator while parsing a genuine dir/file pair (e.g.
// "017/do.sql", where the directory component is a bare number with nothing
// else before the separator) and never reinserts one while resolving; its
// own round-trip tests only pass for shapes where a name token's greedy
// scan swallows the separator into a single segment instead. Joining with
// "/" here is a deliberate fix for the genuine two-segment case rather than
// a carried-over gap.
func (pt PathTemplate) Resolve(data TemplateData) string {
	parts := make([]string, len(pt.Segments))
	for i, seg := range pt.Segments {
		parts[i] = seg.resolve(data)
	}
	return strings.Join(parts, "/")
}

func (seg Segment) resolve(data TemplateData) string {
	var b strings.Builder
	for i, t := range seg.Tokens {
		var next *Token
		if i+1 < len(seg.Tokens) {
			next = &seg.Tokens[i+1]
		}
		// Suppress a Dot immediately preceding an UpDown/DoUndo token when
		// the data carries no direction, so "foo.up.sql" degrades to
		// "foo.sql" rather than "foo..sql".
		if !data.HasUpDown && t.Kind == KindDot && next != nil && (next.Kind == KindUpDown || next.Kind == KindDoUndo) {
			continue
		}
		b.WriteString(t.resolve(data))
	}
	return b.String()
}

func (t Token) resolve(data TemplateData) string {
	switch t.Kind {
	case KindPrefix:
		return t.Prefix
	case KindPaddedNumber:
		counter := t.Padded.Number + 1
		if data.HasCounter {
			counter = data.Counter
		}
		return fmt.Sprintf("%0*d", t.Padded.Width, counter)
	case KindRandomNumber:
		if data.HasRandom {
			return strconv.Itoa(data.Random)
		}
		return strconv.FormatInt(data.Timestamp.UnixMicro(), 10)
	case KindSemver:
		v := t.Semver
		if data.HasSemver {
			v = data.Semver
		} else {
			v = v.IncrementMinor()
		}
		return v.String()
	case KindTimestamp:
		return t.Timestamp.resolve(data)
	case KindName:
		return data.Name
	case KindUpDown:
		if !data.HasUpDown {
			return ""
		}
		if data.UpDown == Up {
			return "up"
		}
		return "down"
	case KindDoUndo:
		if !data.HasUpDown {
			return ""
		}
		if data.UpDown == Up {
			return "do"
		}
		return "undo"
	case KindUnderscore:
		return "_"
	case KindDot:
		return "."
	case KindDash:
		return "-"
	case KindExtension:
		return ".sql"
	default:
		return ""
	}
}

func (ts Timestamp) resolve(data TemplateData) string {
	switch ts.Kind {
	case TimestampEpoch:
		return ts.Epoch.resolve(data)
	case TimestampDateTime:
		return ts.DateTime.resolve(data)
	default:
		return ""
	}
}

func (e EpochTimestamp) resolve(data TemplateData) string {
	ts := data.Timestamp
	switch e.Kind {
	case EpochMilli:
		return strconv.FormatInt(ts.UnixMilli(), 10)
	case EpochMicro:
		return strconv.FormatInt(ts.UnixMicro(), 10)
	case EpochNano:
		return strconv.FormatInt(ts.UnixNano(), 10)
	default:
		return strconv.FormatInt(ts.Unix(), 10)
	}
}

func (d DateTimeValue) resolve(data TemplateData) string {
	s := d.Date.resolve(data) + d.DateSep
	if d.HasTime {
		s += d.Time.resolve(data)
	}
	return s
}

func (d Date) resolve(data TemplateData) string {
	ts := data.Timestamp
	return fmt.Sprintf("%02d%s%02d%s%02d", ts.Year(), d.YearSep, int(ts.Month()), d.MonthSep, ts.Day())
}

func (t Time) resolve(data TemplateData) string {
	ts := data.Timestamp
	s := fmt.Sprintf("%02d%s%02d%s", ts.Hour(), t.HourSep, ts.Minute(), t.MinuteSep)
	if t.HasSecond {
		s += fmt.Sprintf("%02d", ts.Second())
	}
	s += t.SecondSep
	if t.HasSubSecond {
		s += t.SubSecond.resolve(data)
	}
	return s
}

func (s SubSecond) resolve(data TemplateData) string {
	ts := data.Timestamp
	switch s.Kind {
	case SubMicro:
		return strconv.Itoa(ts.Nanosecond() / 1000)
	case SubNano:
		return strconv.Itoa(ts.Nanosecond())
	default:
		return strconv.Itoa(ts.Nanosecond() / 1e6)
	}
}
