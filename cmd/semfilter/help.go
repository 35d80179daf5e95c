package main

import (
	"strings"

	"github.com/Delta456/box-cli-maker/v2"
	"github.com/alexeyco/simpletable"
)

const shortUsage = `usage: semfilter [FLAGS] [OPTIONS] <expression>

Try 'semfilter --help' for the full expression grammar.`

const grammar = `expression  := conditions
conditions  := condition
             | conditions operator conditions
             | '(' conditions ')'
operator    := 'and' | 'or'
condition   := selector comparator value
selector    := variable | function '(' variable ')'

Precedence is explicit-parenthesis-only: an unparenthesised sequence of
mixed 'and'/'or' is rejected. Within a run of the same operator,
association is left-to-right.

Functions: port(<ipSocketAddress-like>) -> port, ip(<ipSocketAddress-like>) -> matching ipAddress family.`

func variableKindsTable() *simpletable.Table {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Variable"},
			{Align: simpletable.AlignCenter, Text: "Basic"},
			{Align: simpletable.AlignCenter, Text: "Extended"},
		},
	}
	rows := [][3]string{
		{"$integer", "== != > >= < <=", ""},
		{"$float", "== != > >= < <=", ""},
		{"$id", "== != > >= < <=", "contains, starts-with, ends-with"},
		{"$date, $time, $dateTime, $localDateTime", "== != > >= < <=", ""},
		{"$ipAddress, $ipv4Address, $ipv6Address", "== != > >= < <=", "in, not in (against matching network)"},
		{"$ipSocketAddress, $ipv4SocketAddress, $ipv6SocketAddress", "== != > >= < <=", ""},
		{"$ipNetwork, $ipv4Network, $ipv6Network", "== != > >= < <=", ""},
		{"$semanticVersion", "== != > >= < <=", "matches"},
	}
	for _, r := range rows {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: r[0]}, {Text: r[1]}, {Text: r[2]},
		})
	}
	table.SetStyle(simpletable.StyleUnicode)
	return table
}

func longHelp() string {
	b := strings.Builder{}
	b.WriteString("Grammar:\n--------\n")
	b.WriteString(grammar)
	b.WriteString("\n\nVariable kinds:\n---------------\n")
	b.WriteString(variableKindsTable().String())
	b.WriteString("\n\nOptions:\n--------\n")
	b.WriteString(optionsTable().String())

	box := box.New(box.Config{Px: 2, Py: 1, Type: "Double", Color: "Cyan", TitlePos: "Top", ContentAlign: "Left"})
	return box.String("SEMFILTER", b.String())
}

func optionsTable() *simpletable.Table {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Option"},
			{Align: simpletable.AlignCenter, Text: "Effect"},
		},
	}
	rows := [][2]string{
		{"-c", "print processed/matched line counts to stderr on exit"},
		{"-i, --input-file <path>", "read input from <path> instead of standard input"},
		{"-o, --output-file <path>", "write output to <path> instead of standard output"},
		{"-s, --separator <sep>", "repeatable; space, comma, semicolon, pipe, slash, whitespace (default)"},
		{"-m, --mode <mode>", "filter (default), highlight, filter-and-highlight"},
		{"--date-format <fmt>", "strftime pattern for $date (default %F)"},
		{"--time-format <fmt>", "strftime pattern for $time (default %T)"},
		{"--date-time-format <fmt>", "strftime pattern for $dateTime (default %+)"},
		{"--local-date-time-format <fmt>", "strftime pattern for $localDateTime (default %Y-%m-%dT%H:%M:%S%.f)"},
		{"-h", "short usage"},
		{"--help", "this help"},
	}
	for _, r := range rows {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: r[0]}, {Text: r[1]},
		})
	}
	table.SetStyle(simpletable.StyleUnicode)
	return table
}
