package expr_test

import (
	"testing"

	"github.com/qpanda/semfilter/expr"
	"github.com/qpanda/semfilter/value"
)

func defaultFormats(t *testing.T) value.Formats {
	t.Helper()
	formats, err := value.DefaultFormats()
	if err != nil {
		t.Fatalf("DefaultFormats() error: %v", err)
	}
	return formats
}

func TestParseSimpleCondition(t *testing.T) {
	node, err := expr.Parse("$id == qpanda", defaultFormats(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cond, ok := node.(expr.Condition)
	if !ok {
		t.Fatalf("got %T, want expr.Condition", node)
	}
	if cond.Selector.Variable != value.KindID {
		t.Errorf("selector variable = %v, want %v", cond.Selector.Variable, value.KindID)
	}
	if cond.Comparator != expr.Eq {
		t.Errorf("comparator = %v, want ==", cond.Comparator)
	}
	if cond.Literal.(value.ID).Val != "qpanda" {
		t.Errorf("literal = %v, want qpanda", cond.Literal)
	}
}

func TestParseAndOr(t *testing.T) {
	node, err := expr.Parse("$id == qpanda and $ipv4Address == 10.10.0.7", defaultFormats(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if _, ok := node.(expr.And); !ok {
		t.Fatalf("got %T, want expr.And", node)
	}
}

func TestParseMixedAndOrRequiresParens(t *testing.T) {
	_, err := expr.Parse("$id == a and $id == b or $id == c", defaultFormats(t))
	if err == nil {
		t.Fatal("expected an error for mixed and/or without grouping")
	}
}

func TestParseMixedAndOrWithGroupingSucceeds(t *testing.T) {
	_, err := expr.Parse("($id == a and $id == b) or $id == c", defaultFormats(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
}

func TestParseFunctionSelector(t *testing.T) {
	node, err := expr.Parse("port($ipv4SocketAddress) == 8080", defaultFormats(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cond := node.(expr.Condition)
	if cond.Selector.Function != "port" {
		t.Errorf("function = %q, want port", cond.Selector.Function)
	}
	if cond.Selector.ResultKind != value.KindPort {
		t.Errorf("result kind = %v, want %v", cond.Selector.ResultKind, value.KindPort)
	}
	if cond.Literal.(value.Port).Val != 8080 {
		t.Errorf("literal = %v, want 8080", cond.Literal)
	}
}

func TestParseUnknownFunctionIsSyntaxError(t *testing.T) {
	_, err := expr.Parse("nope($id) == a", defaultFormats(t))
	if err == nil {
		t.Fatal("expected an error for an unknown function")
	}
	if _, ok := err.(*expr.SyntaxError); !ok {
		t.Fatalf("got %T, want *expr.SyntaxError", err)
	}
}

func TestParseComparatorNotInDispatchTableIsTypeError(t *testing.T) {
	_, err := expr.Parse("$integer contains 1", defaultFormats(t))
	if err == nil {
		t.Fatal("expected a type error: $integer has no 'contains' comparator")
	}
	if _, ok := err.(*expr.TypeError); !ok {
		t.Fatalf("got %T, want *expr.TypeError", err)
	}
}

func TestParseMalformedLiteralIsLiteralFormatError(t *testing.T) {
	_, err := expr.Parse("$integer == notanumber", defaultFormats(t))
	if _, ok := err.(*expr.LiteralFormatError); !ok {
		t.Fatalf("got %T (%v), want *expr.LiteralFormatError", err, err)
	}
}

func TestParseUnbalancedParens(t *testing.T) {
	_, err := expr.Parse("($id == a", defaultFormats(t))
	if err == nil {
		t.Fatal("expected an error for an unbalanced '('")
	}
}

func TestParseNotIn(t *testing.T) {
	node, err := expr.Parse("$ipv4Address not in 10.0.0.0/8", defaultFormats(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cond := node.(expr.Condition)
	if cond.Comparator != expr.NotIn {
		t.Errorf("comparator = %v, want 'not in'", cond.Comparator)
	}
}
