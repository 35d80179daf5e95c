package value

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// SemanticVersion is a SemVer 2.0.0 version string. Ordering (precedence)
// is delegated to golang.org/x/mod/semver, which implements the same
// major.minor.patch-then-prerelease precedence rules as the SemVer 2.0.0
// spec; build metadata is ignored for ordering, matching the spec.
type SemanticVersion struct {
	Val string
}

func (SemanticVersion) Kind() Kind       { return KindSemanticVersion }
func (s SemanticVersion) String() string { return s.Val }

func (s SemanticVersion) CompareTo(other Value) int {
	o := other.(SemanticVersion)
	return semver.Compare("v"+s.Val, "v"+o.Val)
}

// RecogniseSemanticVersion accepts a strict MAJOR.MINOR.PATCH version,
// with an optional "-prerelease" and/or "+build" suffix, per SemVer
// 2.0.0. golang.org/x/mod/semver's own IsValid is too permissive for
// this (it treats "v1" and "v1.2" as shorthand for "v1.0.0" and
// "v1.2.0", which SemVer 2.0.0 does not allow), so the three-component
// shape is checked here; x/mod/semver is used only for precedence
// ordering once a value is known to be well-formed.
func RecogniseSemanticVersion(text string) (Value, bool) {
	if !isStrictSemanticVersion(text) {
		return nil, false
	}
	return SemanticVersion{Val: text}, true
}

func isStrictSemanticVersion(text string) bool {
	if text == "" {
		return false
	}
	core := text
	if i := strings.IndexByte(core, '+'); i >= 0 {
		build := core[i+1:]
		core = core[:i]
		if !isValidIdentifierList(build, true) {
			return false
		}
	}
	if i := strings.IndexByte(core, '-'); i >= 0 {
		pre := core[i+1:]
		core = core[:i]
		if !isValidIdentifierList(pre, false) {
			return false
		}
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if !isNumericIdentifier(p) {
			return false
		}
	}
	return true
}

func isNumericIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isValidIdentifierList checks a dot-separated list of prerelease/build
// identifiers: each is non-empty and built only from [A-Za-z0-9-].
// Build-metadata identifiers (allowNumericLeadingZero) may have a
// leading zero; prerelease numeric identifiers may not.
func isValidIdentifierList(s string, allowNumericLeadingZero bool) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		numeric := true
		for i := 0; i < len(part); i++ {
			c := part[i]
			alnum := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-'
			if !alnum {
				return false
			}
			if c < '0' || c > '9' {
				numeric = false
			}
		}
		if numeric && !allowNumericLeadingZero && len(part) > 1 && part[0] == '0' {
			return false
		}
	}
	return true
}

// SemanticVersionRequirement is a literal-only kind: it never ranges
// over a token, it only ever appears on the right-hand side of the
// "matches" comparator against a $semanticVersion-like variable.
//
// A requirement is a comma-separated list of clauses, ANDed together.
// Each clause is an optional comparison operator (=, >, >=, <, <=, ^,
// ~) followed by a (possibly partial) version, or the bare wildcard
// "*". Prerelease and build metadata are not supported in requirement
// clauses.
type SemanticVersionRequirement struct {
	Val     string
	clauses []requirementClause
}

func (SemanticVersionRequirement) Kind() Kind       { return KindSemanticVersionRequirement }
func (r SemanticVersionRequirement) String() string { return r.Val }

// Matches reports whether v satisfies every clause of the requirement.
func (r SemanticVersionRequirement) Matches(v SemanticVersion) bool {
	major, minor, patch, ok := parseVersionTuple(v.Val)
	if !ok {
		return false
	}
	for _, c := range r.clauses {
		if !c.matches(major, minor, patch) {
			return false
		}
	}
	return true
}

type requirementClause struct {
	wildcard  bool
	op        string
	precision int
	major     int
	minor     int
	patch     int
}

func (c requirementClause) matches(major, minor, patch int) bool {
	if c.wildcard {
		return true
	}
	cmp := compareTuple(major, minor, patch, c.major, c.minor, c.patch)
	switch c.op {
	case "=":
		if c.precision >= 1 && major != c.major {
			return false
		}
		if c.precision >= 2 && minor != c.minor {
			return false
		}
		if c.precision >= 3 && patch != c.patch {
			return false
		}
		return true
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case "^":
		switch {
		case c.major > 0:
			return major == c.major && cmp >= 0
		case c.minor > 0:
			return major == 0 && minor == c.minor && cmp >= 0
		default:
			return major == 0 && minor == 0 && patch == c.patch
		}
	case "~":
		if c.precision >= 2 {
			return major == c.major && minor == c.minor && patch >= c.patch
		}
		return major == c.major
	default:
		return false
	}
}

func compareTuple(aMajor, aMinor, aPatch, bMajor, bMinor, bPatch int) int {
	switch {
	case aMajor != bMajor:
		return sign(aMajor - bMajor)
	case aMinor != bMinor:
		return sign(aMinor - bMinor)
	default:
		return sign(aPatch - bPatch)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func parseVersionTuple(v string) (major, minor, patch int, ok bool) {
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	if i := strings.IndexByte(v, '-'); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

var requirementOperators = []string{">=", "<=", "==", "^", "~", ">", "<", "="}

// RecogniseSemanticVersionRequirement parses a comma-separated list of
// requirement clauses.
func RecogniseSemanticVersionRequirement(text string) (Value, bool) {
	if text == "" {
		return nil, false
	}
	parts := strings.Split(text, ",")
	clauses := make([]requirementClause, 0, len(parts))
	for _, p := range parts {
		c, ok := parseRequirementClause(p)
		if !ok {
			return nil, false
		}
		clauses = append(clauses, c)
	}
	return SemanticVersionRequirement{Val: text, clauses: clauses}, true
}

func parseRequirementClause(s string) (requirementClause, bool) {
	op := "="
	rest := s
	for _, o := range requirementOperators {
		if strings.HasPrefix(s, o) {
			op = o
			if op == "==" {
				op = "="
			}
			rest = s[len(o):]
			break
		}
	}
	if rest == "*" {
		return requirementClause{wildcard: true}, true
	}
	if rest == "" {
		return requirementClause{}, false
	}
	parts := strings.Split(rest, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return requirementClause{}, false
	}
	var nums [3]int
	precision := len(parts)
	for i, p := range parts {
		if p == "*" {
			precision = i
			break
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return requirementClause{}, false
		}
		nums[i] = n
	}
	return requirementClause{op: op, precision: precision, major: nums[0], minor: nums[1], patch: nums[2]}, true
}
