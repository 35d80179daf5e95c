package filter

import (
	"strings"

	"github.com/qpanda/semfilter/expr"
	"github.com/qpanda/semfilter/token"
	"github.com/qpanda/semfilter/value"
)

// Settings bundles everything decided once at startup and held
// read-only for the rest of the run: the temporal formats, the active
// separator set, the output mode, and whether the count summary and
// ANSI coloring are enabled.
type Settings struct {
	Formats    value.Formats
	Separators []token.Separator
	Mode       Mode
	Count      bool
	Color      bool
}

// DefaultSettings returns the spec's defaults: %F/%T/%+/%Y-%m-%dT%H:%M:%S%.f,
// whitespace splitting, filter mode, no count summary, no color.
func DefaultSettings() (Settings, error) {
	formats, err := value.DefaultFormats()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Formats:    formats,
		Separators: []token.Separator{token.Whitespace},
		Mode:       ModeFilter,
	}, nil
}

// separatorChars is the literal byte each single-character separator
// matches. Whitespace is absent: it matches any Unicode space rune, and
// by construction neither a format string nor a kind's required
// character set is ever a space character, so it can never collide.
var separatorChars = map[token.Separator]byte{
	token.Space:     ' ',
	token.Comma:     ',',
	token.Semicolon: ';',
	token.Pipe:      '|',
	token.Slash:     '/',
}

// kindRequiredChars lists, per variable kind, the literal characters its
// canonical text form always needs in order to be recognised at all
// (e.g. an IPv4 address needs '.', a socket address needs ':'). A
// configured separator that matches one of these characters would slice
// every token of that kind into unrecognisable fragments.
var kindRequiredChars = map[value.Kind]string{
	value.KindFloat:             ".",
	value.KindIPv4Address:       ".",
	value.KindIPv6Address:       ":",
	value.KindIPAddress:         ".:",
	value.KindIPv4SocketAddress: ".:",
	value.KindIPv6SocketAddress: ":[]",
	value.KindIPSocketAddress:   ".:[]",
	value.KindIPv4Network:       "./",
	value.KindIPv6Network:       ":/",
	value.KindIPNetwork:         ".:/",
	value.KindSemanticVersion:   ".-+",
}

// Validate checks the settings against a parsed expression: every
// configured separator character must not collide with a character a
// referenced variable kind's syntax requires, nor with a literal
// character inside any of the four temporal format strings. Both rules
// are ports of the original CLI's Validator::validate_class_separators
// and validate_format_separators.
func Validate(ast expr.Node, settings Settings) error {
	for _, sep := range settings.Separators {
		ch, ok := separatorChars[sep]
		if !ok {
			continue // Whitespace: never a literal collision, see separatorChars.
		}
		for kind := range collectVariableKinds(ast) {
			if strings.IndexByte(kindRequiredChars[kind], ch) >= 0 {
				return newConfigError("separator %q collides with a character %s values require", string(ch), kind)
			}
		}
		for name, pattern := range map[string]string{
			"date format":            settings.Formats.Date.Pattern,
			"time format":            settings.Formats.Time.Pattern,
			"date-time format":       settings.Formats.DateTime.Pattern,
			"local date-time format": settings.Formats.LocalDateTime.Pattern,
		} {
			if strings.ContainsRune(literalRunes(pattern), rune(ch)) {
				return newConfigError("separator %q collides with a literal character in the %s %q", string(ch), name, pattern)
			}
		}
	}
	return nil
}

// literalRunes strips every "%x" strftime directive out of pattern,
// leaving only the characters the formatted text carries verbatim.
func literalRunes(pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '%' && i+1 < len(runes) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func collectVariableKinds(n expr.Node) map[value.Kind]bool {
	kinds := make(map[value.Kind]bool)
	walkNode(n, func(c expr.Condition) {
		kinds[c.Selector.Variable] = true
	})
	return kinds
}

func walkNode(n expr.Node, visit func(expr.Condition)) {
	switch node := n.(type) {
	case expr.And:
		walkNode(node.Left, visit)
		walkNode(node.Right, visit)
	case expr.Or:
		walkNode(node.Left, visit)
		walkNode(node.Right, visit)
	case expr.Group:
		walkNode(node.Inner, visit)
	case expr.Condition:
		visit(node)
	}
}
