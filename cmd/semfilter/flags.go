package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/qpanda/semfilter/token"
)

func errUnknownSeparator(v string) error {
	return errors.Errorf("unknown separator %q (want one of space, comma, semicolon, pipe, slash, whitespace)", v)
}

// separatorList collects repeated -s/--separator flag occurrences into
// an ordered list, implementing flag.Value.
type separatorList struct {
	names []string
	value []token.Separator
}

func (s *separatorList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.names, ",")
}

func (s *separatorList) Set(v string) error {
	sep, ok := token.ParseSeparator(v)
	if !ok {
		return errUnknownSeparator(v)
	}
	s.names = append(s.names, v)
	s.value = append(s.value, sep)
	return nil
}
