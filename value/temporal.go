package value

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Date, Time, DateTime, and LocalDateTime are parsed under a configured
// strftime-style pattern (see TemporalFormat). Date and Time discard the
// fields they don't represent (Date's time-of-day is midnight UTC, Time's
// date is the Go zero date); DateTime keeps whatever offset the input
// carried; LocalDateTime carries no zone at all.
type Date struct{ Val time.Time }
type Time struct{ Val time.Time }
type DateTime struct{ Val time.Time }
type LocalDateTime struct{ Val time.Time }

func (Date) Kind() Kind            { return KindDate }
func (d Date) String() string      { return d.Val.Format("2006-01-02") }
func (d Date) CompareTo(o Value) int { return d.Val.Compare(o.(Date).Val) }

func (Time) Kind() Kind            { return KindTime }
func (t Time) String() string      { return t.Val.Format("15:04:05") }
func (t Time) CompareTo(o Value) int { return t.Val.Compare(o.(Time).Val) }

func (DateTime) Kind() Kind            { return KindDateTime }
func (d DateTime) String() string      { return d.Val.Format(time.RFC3339) }
func (d DateTime) CompareTo(o Value) int { return d.Val.Compare(o.(DateTime).Val) }

func (LocalDateTime) Kind() Kind            { return KindLocalDateTime }
func (d LocalDateTime) String() string      { return d.Val.Format("2006-01-02T15:04:05") }
func (d LocalDateTime) CompareTo(o Value) int { return d.Val.Compare(o.(LocalDateTime).Val) }

// TemporalFormat is a strftime-style pattern translated once at startup
// into the Go reference-time layout used to parse and render values of
// one of the four temporal kinds.
type TemporalFormat struct {
	Pattern string
	layout  string
}

// GrammarDelimiters are the characters a format string must never
// contain: they would make the tokenizer's word boundaries ambiguous
// with the expression grammar's own delimiters.
var GrammarDelimiters = []byte{' ', '(', ')'}

// NewTemporalFormat translates a strftime-style pattern into a
// TemporalFormat, or returns a ConfigError-flavored error if the pattern
// uses an unsupported specifier or a grammar delimiter.
func NewTemporalFormat(pattern string) (TemporalFormat, error) {
	for _, d := range GrammarDelimiters {
		if strings.IndexByte(pattern, d) >= 0 {
			return TemporalFormat{}, errors.Errorf("format string %q must not contain %q", pattern, string(d))
		}
	}
	layout, err := strftimeToGoLayout(pattern)
	if err != nil {
		return TemporalFormat{}, errors.Wrapf(err, "format string %q", pattern)
	}
	return TemporalFormat{Pattern: pattern, layout: layout}, nil
}

func (f TemporalFormat) Render(t time.Time) string { return t.Format(f.layout) }

// Formats bundles the four temporal parse formats configured once at
// startup; the tokenizer and the expression parser both recognise
// literals under the same Formats value, so a literal in an expression
// and a token on a line are always comparable.
type Formats struct {
	Date          TemporalFormat
	Time          TemporalFormat
	DateTime      TemporalFormat
	LocalDateTime TemporalFormat
}

// DefaultFormats are the strftime-style defaults named in the comparator
// dispatch documentation: %F, %T, %+, and %Y-%m-%dT%H:%M:%S%.f.
func DefaultFormats() (Formats, error) {
	date, err := NewTemporalFormat("%F")
	if err != nil {
		return Formats{}, err
	}
	tm, err := NewTemporalFormat("%T")
	if err != nil {
		return Formats{}, err
	}
	dt, err := NewTemporalFormat("%+")
	if err != nil {
		return Formats{}, err
	}
	ldt, err := NewTemporalFormat("%Y-%m-%dT%H:%M:%S%.f")
	if err != nil {
		return Formats{}, err
	}
	return Formats{Date: date, Time: tm, DateTime: dt, LocalDateTime: ldt}, nil
}

// strftimeDirectives maps single-letter strftime specifiers to their Go
// reference-time layout equivalent. Multi-character directives (%F, %T,
// %+, %.f) are matched before falling back to this table.
var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'z': "-0700",
	'Z': "MST",
}

func strftimeToGoLayout(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(pattern) {
			return "", errors.New("trailing '%' in format string")
		}
		switch {
		case pattern[i+1] == '.' && i+2 < len(pattern) && pattern[i+2] == 'f':
			b.WriteString(".999999999")
			i += 2
		case pattern[i+1] == 'F':
			b.WriteString("2006-01-02")
			i++
		case pattern[i+1] == 'T':
			b.WriteString("15:04:05")
			i++
		case pattern[i+1] == 'R':
			b.WriteString("15:04")
			i++
		case pattern[i+1] == '+':
			b.WriteString("2006-01-02T15:04:05.999999999Z07:00")
			i++
		case pattern[i+1] == '%':
			b.WriteByte('%')
			i++
		default:
			layout, ok := strftimeDirectives[pattern[i+1]]
			if !ok {
				return "", errors.Errorf("unsupported format specifier %%%c", pattern[i+1])
			}
			b.WriteString(layout)
			i++
		}
	}
	return b.String(), nil
}

// RecogniseDate, RecogniseTime, RecogniseDateTime, and RecogniseLocalDateTime
// parse raw token text under a configured TemporalFormat.
func RecogniseDate(text string, f TemporalFormat) (Value, bool) {
	t, err := time.Parse(f.layout, text)
	if err != nil {
		return nil, false
	}
	return Date{Val: t}, true
}

func RecogniseTime(text string, f TemporalFormat) (Value, bool) {
	t, err := time.Parse(f.layout, text)
	if err != nil {
		return nil, false
	}
	return Time{Val: t}, true
}

func RecogniseDateTime(text string, f TemporalFormat) (Value, bool) {
	t, err := time.Parse(f.layout, text)
	if err != nil {
		return nil, false
	}
	return DateTime{Val: t}, true
}

func RecogniseLocalDateTime(text string, f TemporalFormat) (Value, bool) {
	t, err := time.Parse(f.layout, text)
	if err != nil {
		return nil, false
	}
	return LocalDateTime{Val: t}, true
}
