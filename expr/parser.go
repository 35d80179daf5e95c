package expr

import (
	"fmt"
	"strings"

	"github.com/qpanda/semfilter/value"
)

// Parse builds the AST for expression, proving at parse time that every
// condition is type-consistent under the dispatch tables. Literal values
// are parsed eagerly under formats, which governs how temporal literals
// are recognised. The tokenizer that later recognises line tokens must
// share this same Formats value, or literals and tokens can disagree on
// what counts as a valid Date/Time/DateTime/LocalDateTime.
func Parse(expression string, formats value.Formats) (Node, error) {
	words := lex(expression)
	if len(words) == 0 {
		return nil, newSyntaxError(0, "empty expression")
	}
	p := &parser{words: words, formats: formats}
	node, err := p.parseConditions()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		w := p.peek()
		return nil, newSyntaxError(w.column, fmt.Sprintf("unexpected %q", w.text))
	}
	return node, nil
}

type parser struct {
	words   []word
	pos     int
	formats value.Formats
}

func (p *parser) peek() word {
	if p.pos >= len(p.words) {
		return word{kind: wordEOF}
	}
	return p.words[p.pos]
}

func (p *parser) next() word {
	w := p.peek()
	if p.pos < len(p.words) {
		p.pos++
	}
	return w
}

func (p *parser) atEOF() bool { return p.pos >= len(p.words) }

// parseConditions implements the flat conditions := condition |
// conditions operator conditions rule: every operator within one
// (unparenthesized) sequence must be the same "and" or "or", left
// associative. A switch in operator without an intervening group is a
// SyntaxError, per the mandatory-parens-to-mix rule.
func (p *parser) parseConditions() (Node, error) {
	left, err := p.parseConditionOrGroup()
	if err != nil {
		return nil, err
	}
	operator := ""
	for {
		w := p.peek()
		if w.kind != wordPlain || (w.text != "and" && w.text != "or") {
			break
		}
		if operator == "" {
			operator = w.text
		} else if operator != w.text {
			return nil, newSyntaxError(w.column, "mixing 'and' and 'or' requires parentheses")
		}
		p.next()
		right, err := p.parseConditionOrGroup()
		if err != nil {
			return nil, err
		}
		if operator == "and" {
			left = And{Left: left, Right: right}
		} else {
			left = Or{Left: left, Right: right}
		}
	}
	return left, nil
}

func (p *parser) parseConditionOrGroup() (Node, error) {
	w := p.peek()
	if w.kind == wordLParen {
		p.next()
		inner, err := p.parseConditions()
		if err != nil {
			return nil, err
		}
		closing := p.peek()
		if closing.kind != wordRParen {
			return nil, newSyntaxError(closing.column, "expected closing ')'")
		}
		p.next()
		return Group{Inner: inner}, nil
	}
	return p.parseCondition()
}

func (p *parser) parseCondition() (Node, error) {
	if p.peek().kind != wordPlain {
		return nil, newSyntaxError(p.peek().column, "expected a condition")
	}
	selector, err := p.parseSelector()
	if err != nil {
		return nil, err
	}
	cmpColumn := p.peek().column
	cmp, err := p.parseComparator()
	if err != nil {
		return nil, err
	}
	literalWord := p.peek()
	if literalWord.kind != wordPlain {
		return nil, newSyntaxError(literalWord.column, "expected a literal value")
	}
	p.next()

	literalKind, ok := literalKindFor(selector.ResultKind, cmp)
	if !ok {
		return nil, newTypeError(cmpColumn, selector, cmp)
	}
	literal, ok := parseLiteral(literalKind, literalWord.text, p.formats)
	if !ok {
		return nil, newLiteralFormatError(literalWord.column, literalWord.text, literalKind.String())
	}
	return Condition{Selector: selector, Comparator: cmp, Literal: literal}, nil
}

func (p *parser) parseSelector() (Selector, error) {
	w := p.next()
	if strings.HasPrefix(w.text, "$") {
		kind, ok := variableKindByName[strings.TrimPrefix(w.text, "$")]
		if !ok {
			return Selector{}, newSyntaxError(w.column, fmt.Sprintf("unknown variable %q", w.text))
		}
		return Selector{Variable: kind, ResultKind: kind}, nil
	}

	name := w.text
	if p.peek().kind != wordLParen {
		return Selector{}, newSyntaxError(w.column, fmt.Sprintf("unknown variable %q", w.text))
	}
	p.next()

	varWord := p.peek()
	if varWord.kind != wordPlain || !strings.HasPrefix(varWord.text, "$") {
		return Selector{}, newSyntaxError(varWord.column, "expected a variable inside function call")
	}
	p.next()
	kind, ok := variableKindByName[strings.TrimPrefix(varWord.text, "$")]
	if !ok {
		return Selector{}, newSyntaxError(varWord.column, fmt.Sprintf("unknown variable %q", varWord.text))
	}

	closing := p.peek()
	if closing.kind != wordRParen {
		return Selector{}, newSyntaxError(closing.column, "expected closing ')'")
	}
	p.next()

	result, ok := functionResultKind(name, kind)
	if !ok {
		return Selector{}, newSyntaxError(w.column, fmt.Sprintf("unknown function %q for %s", name, varWord.text))
	}
	return Selector{Function: name, Variable: kind, ResultKind: result}, nil
}

func (p *parser) parseComparator() (Comparator, error) {
	w := p.next()
	if w.kind != wordPlain {
		return "", newSyntaxError(w.column, "expected a comparator")
	}
	switch w.text {
	case "==":
		return Eq, nil
	case "!=":
		return Ne, nil
	case ">":
		return Gt, nil
	case ">=":
		return Ge, nil
	case "<":
		return Lt, nil
	case "<=":
		return Le, nil
	case "contains":
		return Contains, nil
	case "starts-with":
		return StartsWith, nil
	case "ends-with":
		return EndsWith, nil
	case "matches":
		return Matches, nil
	case "in":
		return In, nil
	case "not":
		n := p.peek()
		if n.kind != wordPlain || n.text != "in" {
			return "", newSyntaxError(w.column, "expected 'in' after 'not'")
		}
		p.next()
		return NotIn, nil
	default:
		return "", newSyntaxError(w.column, fmt.Sprintf("unknown comparator %q", w.text))
	}
}

// parseLiteral recognises text as a value of kind, using formats for the
// four temporal kinds and the dedicated recognisers for the two
// parser-only kinds.
func parseLiteral(kind value.Kind, text string, formats value.Formats) (value.Value, bool) {
	switch kind {
	case value.KindDate:
		return value.RecogniseDate(text, formats.Date)
	case value.KindTime:
		return value.RecogniseTime(text, formats.Time)
	case value.KindDateTime:
		return value.RecogniseDateTime(text, formats.DateTime)
	case value.KindLocalDateTime:
		return value.RecogniseLocalDateTime(text, formats.LocalDateTime)
	case value.KindSemanticVersionRequirement:
		return value.RecogniseSemanticVersionRequirement(text)
	case value.KindPort:
		return value.RecognisePort(text)
	default:
		return value.Recognise(kind, text)
	}
}
