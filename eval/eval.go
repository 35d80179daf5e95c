// Package eval walks an expression AST against a line's token list,
// implementing the existential match semantics: a condition is true iff
// some token of the required kind satisfies the comparison, and false
// (not an error) if no such token exists.
package eval

import (
	"github.com/qpanda/semfilter/expr"
	"github.com/qpanda/semfilter/token"
)

// Result is the outcome of evaluating an AST against one line's tokens:
// whether the expression matched, and the set of token positions that
// satisfied a condition on a branch that held (see Evaluate) — used to
// drive highlight/filter-and-highlight output modes.
type Result struct {
	Matched   bool
	Positions map[int]bool
}

// Evaluate runs n against tokens. Positions are gated by truth at every
// And/Or node, mirroring the grammar's own and/or rules: an "and" node
// contributes its operands' positions only when both sides are
// non-empty (true); an "or" node contributes them unless both sides are
// empty (false). A false branch's positions are discarded, not merged —
// so highlighting only ever reflects the combination that actually
// decided the match, never a side that was overruled.
func Evaluate(n expr.Node, tokens []token.Token) Result {
	matched, positions := evalNode(n, tokens)
	return Result{Matched: matched, Positions: positions}
}

func evalNode(n expr.Node, tokens []token.Token) (bool, map[int]bool) {
	switch node := n.(type) {
	case expr.And:
		leftMatched, leftPos := evalNode(node.Left, tokens)
		rightMatched, rightPos := evalNode(node.Right, tokens)
		if !leftMatched || !rightMatched {
			return false, map[int]bool{}
		}
		return true, union(leftPos, rightPos)
	case expr.Or:
		leftMatched, leftPos := evalNode(node.Left, tokens)
		rightMatched, rightPos := evalNode(node.Right, tokens)
		if !leftMatched && !rightMatched {
			return false, map[int]bool{}
		}
		return true, union(leftPos, rightPos)
	case expr.Group:
		return evalNode(node.Inner, tokens)
	case expr.Condition:
		return evalCondition(node, tokens)
	default:
		return false, map[int]bool{}
	}
}

func evalCondition(cond expr.Condition, tokens []token.Token) (bool, map[int]bool) {
	positions := make(map[int]bool)
	for _, tok := range tokens {
		if tok.Separator {
			continue
		}
		for _, v := range tok.Values[cond.Selector.Variable] {
			candidate := v
			if cond.Selector.Function != "" {
				projected, ok := applyFunction(cond.Selector.Function, v)
				if !ok {
					continue
				}
				candidate = projected
			}
			if matches(cond.Comparator, candidate, cond.Literal) {
				positions[tok.Position] = true
			}
		}
	}
	return len(positions) > 0, positions
}

func union(a, b map[int]bool) map[int]bool {
	u := make(map[int]bool, len(a)+len(b))
	for p := range a {
		u[p] = true
	}
	for p := range b {
		u[p] = true
	}
	return u
}
