// Package value defines the closed set of typed values semfilter
// recognises on a line and parses out of a literal in an expression.
//
// Every Kind has exactly one concrete Go type implementing Value, and a
// Recognise function (see the per-kind files) that decides whether a raw
// token renders that kind. The tokenizer and the expression parser share
// these same Recognise functions so that a literal in an expression and a
// token on a line are always type-compatible by construction.
package value

import "fmt"

// Kind identifies one of the typed value variants.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindID
	KindDate
	KindTime
	KindDateTime
	KindLocalDateTime
	KindIPAddress
	KindIPv4Address
	KindIPv6Address
	KindIPSocketAddress
	KindIPv4SocketAddress
	KindIPv6SocketAddress
	KindIPNetwork
	KindIPv4Network
	KindIPv6Network
	KindSemanticVersion
	// KindSemanticVersionRequirement and KindPort are parser-only: no
	// variable placeholder ranges over them, they only ever appear as a
	// literal on the right-hand side of a condition or as a function
	// result.
	KindSemanticVersionRequirement
	KindPort
)

var kindNames = [...]string{
	KindInteger:                     "integer",
	KindFloat:                       "float",
	KindID:                          "id",
	KindDate:                        "date",
	KindTime:                        "time",
	KindDateTime:                    "dateTime",
	KindLocalDateTime:                "localDateTime",
	KindIPAddress:                   "ipAddress",
	KindIPv4Address:                 "ipv4Address",
	KindIPv6Address:                 "ipv6Address",
	KindIPSocketAddress:             "ipSocketAddress",
	KindIPv4SocketAddress:           "ipv4SocketAddress",
	KindIPv6SocketAddress:           "ipv6SocketAddress",
	KindIPNetwork:                   "ipNetwork",
	KindIPv4Network:                 "ipv4Network",
	KindIPv6Network:                 "ipv6Network",
	KindSemanticVersion:             "semanticVersion",
	KindSemanticVersionRequirement:  "semanticVersionRequirement",
	KindPort:                        "port",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is implemented by every recognised typed value.
type Value interface {
	// Kind reports which variant this value is.
	Kind() Kind
	// String renders the value's canonical text form.
	String() string
}

// Recognise runs the recogniser for kind k against raw token text.
// It reports ok=false if k does not support recognition from raw text
// alone (the four temporal kinds, which need a TemporalFormat and have
// their own Recognise functions, the two parser-only kinds, or an
// unknown kind).
func Recognise(k Kind, text string) (Value, bool) {
	switch k {
	case KindInteger:
		return RecogniseInteger(text)
	case KindFloat:
		return RecogniseFloat(text)
	case KindID:
		return RecogniseID(text)
	case KindIPAddress:
		return RecogniseIPAddress(text)
	case KindIPv4Address:
		return RecogniseIPv4Address(text)
	case KindIPv6Address:
		return RecogniseIPv6Address(text)
	case KindIPSocketAddress:
		return RecogniseIPSocketAddress(text)
	case KindIPv4SocketAddress:
		return RecogniseIPv4SocketAddress(text)
	case KindIPv6SocketAddress:
		return RecogniseIPv6SocketAddress(text)
	case KindIPNetwork:
		return RecogniseIPNetwork(text)
	case KindIPv4Network:
		return RecogniseIPv4Network(text)
	case KindIPv6Network:
		return RecogniseIPv6Network(text)
	case KindSemanticVersion:
		return RecogniseSemanticVersion(text)
	default:
		return nil, false
	}
}

// Comparable is implemented by kinds that support the basic ordering
// comparators (== != > >= < <=). CompareTo reports -1, 0, or 1; it must
// only ever be called with another value of the same Kind.
type Comparable interface {
	Value
	CompareTo(other Value) int
}
