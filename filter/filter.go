// Package filter orchestrates the tokenizer, parser, and evaluator
// across a line-oriented stream: it owns the configured Settings, parses
// the expression once, and then evaluates it against every line,
// dispatching output per Mode.
package filter

import (
	"bufio"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/qpanda/semfilter/eval"
	"github.com/qpanda/semfilter/expr"
	"github.com/qpanda/semfilter/token"
)

// HighlightColors is the ANSI styling applied to a matched token in
// highlight/filter-and-highlight mode.
var HighlightColors = text.Colors{text.FgHiRed, text.Bold}

// Lines reports how many lines a Filter run processed and how many
// matched, both monotone counters with no accumulation of line content.
type Lines struct {
	Processed uint64
	Matched   uint64
}

// Filter pairs a parsed AST with the Settings it was validated against.
type Filter struct {
	ast       expr.Node
	settings  Settings
	tokenizer token.Tokenizer
}

// New parses expression under settings.Formats, validates it against
// settings' separators (§ConfigError), and runs it once against an
// empty token list as a smoke test — mirroring the original
// implementation's eager validation, which catches a parser or
// evaluator defect before a single line of input is read.
func New(expression string, settings Settings) (*Filter, error) {
	ast, err := expr.Parse(expression, settings.Formats)
	if err != nil {
		return nil, err
	}
	if err := Validate(ast, settings); err != nil {
		return nil, err
	}
	_ = eval.Evaluate(ast, nil)
	return &Filter{
		ast:       ast,
		settings:  settings,
		tokenizer: token.NewTokenizer(settings.Separators, settings.Formats),
	}, nil
}

// Run reads newline-terminated lines from r and writes the lines
// selected by f.settings.Mode to w, preserving each line's original
// terminator and input order.
func (f *Filter) Run(r io.Reader, w io.Writer) (Lines, error) {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)
	var lines Lines

	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return lines, newIoError(readErr)
		}
		if raw == "" && readErr != nil {
			break
		}
		content, terminator := splitTerminator(raw)

		tokens := f.tokenizer.Tokenize(content)
		result := eval.Evaluate(f.ast, tokens)
		lines.Processed++
		if result.Matched {
			lines.Matched++
		}

		if out, ok := f.outputLine(content, tokens, result); ok {
			if _, err := writer.WriteString(out); err != nil {
				return lines, newIoError(err)
			}
			if _, err := writer.WriteString(terminator); err != nil {
				return lines, newIoError(err)
			}
		}

		if readErr != nil {
			break
		}
	}
	if err := writer.Flush(); err != nil {
		return lines, newIoError(err)
	}
	return lines, nil
}

// splitTerminator separates a line's trailing "\n" or "\r\n" from its
// content, so the content handed to the tokenizer never carries it but
// the original terminator is still reproduced verbatim on output.
func splitTerminator(raw string) (content, terminator string) {
	if strings.HasSuffix(raw, "\r\n") {
		return raw[:len(raw)-2], raw[len(raw)-2:]
	}
	if strings.HasSuffix(raw, "\n") {
		return raw[:len(raw)-1], raw[len(raw)-1:]
	}
	return raw, ""
}

func (f *Filter) outputLine(content string, tokens []token.Token, result eval.Result) (string, bool) {
	switch f.settings.Mode {
	case ModeFilter:
		return content, result.Matched
	case ModeHighlight:
		if result.Matched {
			return highlightLine(tokens, result.Positions, f.settings.Color), true
		}
		return content, true
	case ModeFilterHighlight:
		if !result.Matched {
			return "", false
		}
		return highlightLine(tokens, result.Positions, f.settings.Color), true
	default:
		return content, result.Matched
	}
}

func highlightLine(tokens []token.Token, positions map[int]bool, color bool) string {
	var b strings.Builder
	for _, t := range tokens {
		if color && !t.Separator && positions[t.Position] {
			b.WriteString(HighlightColors.Sprint(t.Text))
		} else {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}
