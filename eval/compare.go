package eval

import (
	"net/netip"

	"github.com/qpanda/semfilter/expr"
	"github.com/qpanda/semfilter/value"
)

// addressValue and networkValue are satisfied structurally by the IP
// address and network families in the value package; declaring them
// here, rather than in value, keeps the in/not-in comparator's
// implementation local to the evaluator that uses it.
type addressValue interface {
	Addr() netip.Addr
}

type networkValue interface {
	Contains(netip.Addr) bool
}

// matches runs one comparator against a candidate value and a literal,
// both already known (by construction of the AST at parse time) to be
// of compatible kinds.
func matches(cmp expr.Comparator, v, literal value.Value) bool {
	switch cmp {
	case expr.Eq:
		return v.(value.Comparable).CompareTo(literal) == 0
	case expr.Ne:
		return v.(value.Comparable).CompareTo(literal) != 0
	case expr.Gt:
		return v.(value.Comparable).CompareTo(literal) > 0
	case expr.Ge:
		return v.(value.Comparable).CompareTo(literal) >= 0
	case expr.Lt:
		return v.(value.Comparable).CompareTo(literal) < 0
	case expr.Le:
		return v.(value.Comparable).CompareTo(literal) <= 0
	case expr.Contains:
		return v.(value.ID).Contains(literal.(value.ID).Val)
	case expr.StartsWith:
		return v.(value.ID).StartsWith(literal.(value.ID).Val)
	case expr.EndsWith:
		return v.(value.ID).EndsWith(literal.(value.ID).Val)
	case expr.In:
		return literal.(networkValue).Contains(v.(addressValue).Addr())
	case expr.NotIn:
		return !literal.(networkValue).Contains(v.(addressValue).Addr())
	case expr.Matches:
		return literal.(value.SemanticVersionRequirement).Matches(v.(value.SemanticVersion))
	default:
		return false
	}
}
