// Package expr implements the expression grammar: a recursive-descent
// parser that turns an expression string into an AST, proving at parse
// time that every condition's (selector, comparator, literal-kind)
// triple is one the evaluator knows how to run.
package expr

import "github.com/qpanda/semfilter/value"

// Node is one of And, Or, Group, or Condition.
type Node interface {
	node()
}

type And struct {
	Left, Right Node
}

type Or struct {
	Left, Right Node
}

// Group marks an explicitly parenthesized sub-expression. It carries no
// semantics of its own beyond what its Inner node already has; it exists
// so a parenthesized "and" sequence and a parenthesized "or" sequence can
// be combined with the opposite operator one level up without violating
// the flat-grammar precedence rule.
type Group struct {
	Inner Node
}

// Condition is a single comparison: a selector (bare variable, or a
// function applied to one), a comparator, and a pre-parsed literal.
type Condition struct {
	Selector   Selector
	Comparator Comparator
	Literal    value.Value
}

func (And) node()       {}
func (Or) node()        {}
func (Group) node()     {}
func (Condition) node() {}

// Selector is either a bare variable placeholder ($kind) or a function
// applied to one (function($kind)). Variable is the kind named in the
// expression text; ResultKind is the kind the selector ultimately
// produces values of — equal to Variable for a bare selector, or the
// function's output kind for a projected one.
type Selector struct {
	Function   string
	Variable   value.Kind
	ResultKind value.Kind
}

func (s Selector) String() string {
	name := "$" + variableNameByKind[s.Variable]
	if s.Function == "" {
		return name
	}
	return s.Function + "(" + name + ")"
}

// Comparator is a relational operator recognised by the grammar.
type Comparator string

const (
	Eq         Comparator = "=="
	Ne         Comparator = "!="
	Gt         Comparator = ">"
	Ge         Comparator = ">="
	Lt         Comparator = "<"
	Le         Comparator = "<="
	Contains   Comparator = "contains"
	StartsWith Comparator = "starts-with"
	EndsWith   Comparator = "ends-with"
	In         Comparator = "in"
	NotIn      Comparator = "not in"
	Matches    Comparator = "matches"
)

// IsBasic reports whether c is one of the six ordering/equality
// comparators available to every Comparable kind.
func (c Comparator) IsBasic() bool {
	switch c {
	case Eq, Ne, Gt, Ge, Lt, Le:
		return true
	default:
		return false
	}
}
