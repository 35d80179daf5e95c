package value_test

import (
	"testing"

	"github.com/qpanda/semfilter/value"
)

func TestRecogniseSemanticVersion(t *testing.T) {
	cases := map[string]bool{
		"0.1.0":         true,
		"1.2.3":         true,
		"1.2.3-rc.1":    true,
		"1.2.3+build.5": true,
		"1.2":           false,
		"v1.2.3":        false,
		"":              false,
	}
	for text, want := range cases {
		_, ok := value.RecogniseSemanticVersion(text)
		if ok != want {
			t.Errorf("RecogniseSemanticVersion(%q) ok = %v, want %v", text, ok, want)
		}
	}
}

func TestSemanticVersionOrdering(t *testing.T) {
	versions := []string{"0.1.0", "0.2.0", "0.3.0", "0.4.0"}
	threshold, _ := value.RecogniseSemanticVersion("0.2.0")
	var atLeastThreshold []string
	for _, v := range versions {
		sv, ok := value.RecogniseSemanticVersion(v)
		if !ok {
			t.Fatalf("failed to recognise %q", v)
		}
		if sv.(value.SemanticVersion).CompareTo(threshold) >= 0 {
			atLeastThreshold = append(atLeastThreshold, v)
		}
	}
	want := []string{"0.2.0", "0.3.0", "0.4.0"}
	if len(atLeastThreshold) != len(want) {
		t.Fatalf("got %v, want %v", atLeastThreshold, want)
	}
	for i := range want {
		if atLeastThreshold[i] != want[i] {
			t.Errorf("got %v, want %v", atLeastThreshold, want)
		}
	}
}

func TestSemanticVersionRequirementMatches(t *testing.T) {
	cases := map[string]struct {
		requirement string
		version     string
		want        bool
	}{
		"caret compatible":   {"^1.2.0", "1.4.0", true},
		"caret major change": {"^1.2.0", "2.0.0", false},
		"tilde same minor":   {"~1.2.0", "1.2.9", true},
		"tilde minor change": {"~1.2.0", "1.3.0", false},
		"gte satisfied":      {">=0.2.0", "0.2.0", true},
		"gte unsatisfied":    {">=0.2.0", "0.1.9", false},
		"comma and":          {">=1.0.0,<2.0.0", "1.5.0", true},
		"comma and fails":    {">=1.0.0,<2.0.0", "2.5.0", false},
		"wildcard":           {"*", "9.9.9", true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req, ok := value.RecogniseSemanticVersionRequirement(tc.requirement)
			if !ok {
				t.Fatalf("failed to recognise requirement %q", tc.requirement)
			}
			v, ok := value.RecogniseSemanticVersion(tc.version)
			if !ok {
				t.Fatalf("failed to recognise version %q", tc.version)
			}
			got := req.(value.SemanticVersionRequirement).Matches(v.(value.SemanticVersion))
			if got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}
