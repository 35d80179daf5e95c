package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/qpanda/semfilter/filter"
	"github.com/qpanda/semfilter/token"
	"github.com/qpanda/semfilter/value"
)

func main() {
	if err := run(os.Stdout, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "semfilter: %s\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer, args []string) error {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprintln(stdout, shortUsage) }

	var (
		count                bool
		inputFile            string
		outputFile           string
		dateFormat           string
		timeFormat           string
		dateTimeFormat       string
		localDateTimeFormat  string
		mode                 string
		shortHelp            bool
		longHelpFlag         bool
		separators           separatorList
	)

	flags.BoolVar(&count, "c", false, "print processed/matched line counts to stderr on exit")
	flags.StringVar(&inputFile, "i", "", "read input from <path> instead of standard input")
	flags.StringVar(&inputFile, "input-file", "", "read input from <path> instead of standard input")
	flags.StringVar(&outputFile, "o", "", "write output to <path> instead of standard output")
	flags.StringVar(&outputFile, "output-file", "", "write output to <path> instead of standard output")
	flags.StringVar(&dateFormat, "date-format", "%F", "strftime pattern for $date")
	flags.StringVar(&timeFormat, "time-format", "%T", "strftime pattern for $time")
	flags.StringVar(&dateTimeFormat, "date-time-format", "%+", "strftime pattern for $dateTime")
	flags.StringVar(&localDateTimeFormat, "local-date-time-format", "%Y-%m-%dT%H:%M:%S%.f", "strftime pattern for $localDateTime")
	flags.StringVar(&mode, "m", "filter", "filter, highlight, or filter-and-highlight")
	flags.StringVar(&mode, "mode", "filter", "filter, highlight, or filter-and-highlight")
	flags.Var(&separators, "s", "repeatable; space, comma, semicolon, pipe, slash, whitespace")
	flags.Var(&separators, "separator", "repeatable; space, comma, semicolon, pipe, slash, whitespace")
	flags.BoolVar(&shortHelp, "h", false, "short usage")
	flags.BoolVar(&longHelpFlag, "help", false, "long help with expression grammar")

	if err := flags.Parse(args[1:]); err != nil {
		return filter.NewConfigError(err)
	}

	if shortHelp {
		fmt.Fprintln(stdout, shortUsage)
		return nil
	}
	if longHelpFlag {
		fmt.Fprintln(stdout, longHelp())
		return nil
	}

	remaining := flags.Args()
	if len(remaining) == 0 {
		return errors.New("missing expression")
	}
	expression := strings.Join(remaining, " ")

	settings, err := buildSettings(dateFormat, timeFormat, dateTimeFormat, localDateTimeFormat, mode, count, outputFile, separators.value)
	if err != nil {
		return err
	}

	f, err := filter.New(expression, settings)
	if err != nil {
		return err
	}

	input, closeInput, err := openInput(inputFile)
	if err != nil {
		return err
	}
	defer closeInput()

	output, closeOutput, err := openOutput(stdout, outputFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	lines, err := f.Run(input, output)
	if err != nil {
		return err
	}

	if count {
		fmt.Fprintf(os.Stderr, "processed: %s, matched: %s\n",
			humanize.Comma(int64(lines.Processed)), humanize.Comma(int64(lines.Matched)))
	}
	return nil
}

func buildSettings(dateFormat, timeFormat, dateTimeFormat, localDateTimeFormat, mode string, count bool, outputFile string, separators []token.Separator) (filter.Settings, error) {
	date, err := value.NewTemporalFormat(dateFormat)
	if err != nil {
		return filter.Settings{}, filter.NewConfigError(err)
	}
	tm, err := value.NewTemporalFormat(timeFormat)
	if err != nil {
		return filter.Settings{}, filter.NewConfigError(err)
	}
	dt, err := value.NewTemporalFormat(dateTimeFormat)
	if err != nil {
		return filter.Settings{}, filter.NewConfigError(err)
	}
	ldt, err := value.NewTemporalFormat(localDateTimeFormat)
	if err != nil {
		return filter.Settings{}, filter.NewConfigError(err)
	}

	m, ok := filter.ParseMode(mode)
	if !ok {
		return filter.Settings{}, filter.NewConfigError(errors.Errorf("unknown mode %q", mode))
	}

	if len(separators) == 0 {
		separators = []token.Separator{token.Whitespace}
	}

	return filter.Settings{
		Formats: value.Formats{
			Date:          date,
			Time:          tm,
			DateTime:      dt,
			LocalDateTime: ldt,
		},
		Separators: separators,
		Mode:       m,
		Count:      count,
		Color:      outputFile == "" && isatty.IsTerminal(os.Stdout.Fd()),
	}, nil
}
