package timefmt

import (
	"strconv"
	"strings"
	"time"
)

// DefaultPattern is the console-wide display pattern for timestamp spans:
// two-digit date parts and a 12-hour clock with a lowercase am/pm marker.
const DefaultPattern = "MM/DD/YY hh:mm:ss a"

// Pattern tokens mapped to Go reference-time fragments. Ordered so the
// longest token wins at any position (YYYY before YY, MM before M).
var tokens = []struct {
	tok    string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"A", "PM"},
	{"a", "pm"},
}

// Formatter renders Unix-second timestamps for display. Location and the
// default pattern are explicit so callers are not tied to the process-wide
// defaults and tests can pin a timezone.
type Formatter struct {
	Location *time.Location
	Default  string
}

func New(loc *time.Location) *Formatter {
	return &Formatter{Location: loc, Default: DefaultPattern}
}

// std backs the package-level helpers: system-local time, default pattern.
var std = New(time.Local)

// FormatTimestampValue formats a Unix-seconds value (decimal string) with a
// pattern, in the system-local timezone. Empty, zero, or unparseable input
// yields "" rather than an error. An empty pattern uses DefaultPattern.
func FormatTimestampValue(value, pattern string) string {
	return std.FormatValue(value, pattern)
}

func (f *Formatter) FormatValue(value, pattern string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	secs, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return ""
	}
	return f.FormatUnix(secs, pattern)
}

// FormatUnix is FormatValue for callers that already hold an int64.
// A zero timestamp counts as absent and yields "".
func (f *Formatter) FormatUnix(secs int64, pattern string) string {
	if secs == 0 {
		return ""
	}
	if pattern == "" {
		pattern = f.Default
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(secs, 0).In(loc).Format(Layout(pattern))
}

// Layout translates a display pattern into a Go reference-time layout.
// Bracketed spans ("[at] hh:mm") are copied through without token matching.
func Layout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i:], ']')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				break
			}
			b.WriteString(pattern[i+1 : i+end])
			i += end + 1
			continue
		}
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(pattern[i:], t.tok) {
				b.WriteString(t.layout)
				i += len(t.tok)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}
