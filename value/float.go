package value

import "strconv"

// Float is an IEEE 754 double. NaN and infinities are never produced by
// RecogniseFloat.
type Float struct {
	Val float64
}

func (Float) Kind() Kind       { return KindFloat }
func (f Float) String() string { return strconv.FormatFloat(f.Val, 'f', -1, 64) }

func (f Float) CompareTo(other Value) int {
	o := other.(Float)
	switch {
	case f.Val < o.Val:
		return -1
	case f.Val > o.Val:
		return 1
	default:
		return 0
	}
}

// RecogniseFloat accepts an optional sign, digits, and at most one '.',
// with at least one digit present. An integer-looking token (no '.') is
// deliberately rejected: $float never overlaps with $integer, so the
// existential semantics of the two variables stay disjoint per line.
// Scientific notation, "inf", and "nan" are rejected by construction,
// since none of those characters are in the accepted set.
func RecogniseFloat(text string) (Value, bool) {
	if text == "" {
		return nil, false
	}
	body := text
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if body == "" {
		return nil, false
	}

	dots := 0
	digits := 0
	for _, c := range body {
		switch {
		case c == '.':
			dots++
		case c >= '0' && c <= '9':
			digits++
		default:
			return nil, false
		}
	}
	if dots != 1 || digits == 0 {
		return nil, false
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	return Float{Val: f}, true
}
