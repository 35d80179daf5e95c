package value

// ID is an identifier: a letter followed by letters, digits, or any of
// "+-.:_". Ordering is lexicographic byte comparison with no locale
// collation, per spec.
type ID struct {
	Val string
}

func (ID) Kind() Kind       { return KindID }
func (i ID) String() string { return i.Val }

func (i ID) CompareTo(other Value) int {
	o := other.(ID)
	switch {
	case i.Val < o.Val:
		return -1
	case i.Val > o.Val:
		return 1
	default:
		return 0
	}
}

func (i ID) Contains(sub string) bool   { return contains(i.Val, sub) }
func (i ID) StartsWith(pre string) bool { return len(i.Val) >= len(pre) && i.Val[:len(pre)] == pre }
func (i ID) EndsWith(suf string) bool   { return len(i.Val) >= len(suf) && i.Val[len(i.Val)-len(suf):] == suf }

func contains(s, sub string) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func isIDFirst(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIDRest(c byte) bool {
	return isIDFirst(c) ||
		(c >= '0' && c <= '9') ||
		c == '+' || c == '-' || c == '.' || c == ':' || c == '_'
}

// RecogniseID accepts a leading letter followed by letters, digits, or
// any of "+-.:_".
func RecogniseID(text string) (Value, bool) {
	if text == "" || !isIDFirst(text[0]) {
		return nil, false
	}
	for i := 1; i < len(text); i++ {
		if !isIDRest(text[i]) {
			return nil, false
		}
	}
	return ID{Val: text}, true
}
