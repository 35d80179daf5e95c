package expr

import "github.com/pkg/errors"

// SyntaxError reports a grammar violation: unbalanced parentheses, mixed
// and/or without grouping, an empty condition, or an unrecognised
// variable/function/comparator word.
type SyntaxError struct {
	Message string
	Column  int
	cause   error
}

func (e *SyntaxError) Error() string {
	return errors.Wrapf(e.cause, "column %d: %s", e.Column, e.Message).Error()
}

func (e *SyntaxError) Cause() error { return e.cause }

func newSyntaxError(column int, message string) *SyntaxError {
	return &SyntaxError{Message: message, Column: column, cause: errors.New(message)}
}

// TypeError reports a condition whose (selector, comparator, literal
// kind) triple is not in the comparator dispatch table. A function
// applied to a variable kind outside the function dispatch table is
// reported as a SyntaxError instead.
type TypeError struct {
	Selector   Selector
	Comparator Comparator
	Column     int
	cause      error
}

func (e *TypeError) Error() string {
	return errors.Wrapf(e.cause, "column %d: %s %s is not a recognised condition", e.Column, e.Selector, e.Comparator).Error()
}

func (e *TypeError) Cause() error { return e.cause }

func newTypeError(column int, selector Selector, cmp Comparator) *TypeError {
	return &TypeError{
		Selector:   selector,
		Comparator: cmp,
		Column:     column,
		cause:      errors.Errorf("%s %s is not a recognised condition", selector, cmp),
	}
}

// LiteralFormatError reports a literal that failed to parse as the kind
// its condition requires.
type LiteralFormatError struct {
	Text   string
	Kind   string
	Column int
	cause  error
}

func (e *LiteralFormatError) Error() string {
	return errors.Wrapf(e.cause, "column %d: %q is not a valid %s literal", e.Column, e.Text, e.Kind).Error()
}

func (e *LiteralFormatError) Cause() error { return e.cause }

func newLiteralFormatError(column int, text, kind string) *LiteralFormatError {
	return &LiteralFormatError{
		Text:   text,
		Kind:   kind,
		Column: column,
		cause:  errors.Errorf("%q is not a valid %s literal", text, kind),
	}
}
