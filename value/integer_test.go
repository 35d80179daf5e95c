package value_test

import (
	"testing"

	"github.com/qpanda/semfilter/value"
)

func TestRecogniseInteger(t *testing.T) {
	cases := map[string]struct {
		text string
		want int64
		ok   bool
	}{
		"positive":       {"42", 42, true},
		"negative":       {"-7", -7, true},
		"explicit plus":  {"+7", 7, true},
		"zero":           {"0", 0, true},
		"empty":          {"", 0, false},
		"sign only":      {"-", 0, false},
		"has dot":        {"1.0", 0, false},
		"has letters":    {"12a", 0, false},
		"leading space":  {" 1", 0, false},
		"overflows i64":  {"99999999999999999999", 0, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := value.RecogniseInteger(tc.text)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			i, isInt := got.(value.Integer)
			if !isInt {
				t.Fatalf("got %T, want value.Integer", got)
			}
			if i.Val != tc.want {
				t.Errorf("Val = %d, want %d", i.Val, tc.want)
			}
			if i.Kind() != value.KindInteger {
				t.Errorf("Kind() = %v, want %v", i.Kind(), value.KindInteger)
			}
		})
	}
}

func TestIntegerCompareTo(t *testing.T) {
	a := value.Integer{Val: 1}
	b := value.Integer{Val: 2}
	if a.CompareTo(b) >= 0 {
		t.Errorf("1 should compare less than 2")
	}
	if b.CompareTo(a) <= 0 {
		t.Errorf("2 should compare greater than 1")
	}
	if a.CompareTo(a) != 0 {
		t.Errorf("1 should compare equal to 1")
	}
}
