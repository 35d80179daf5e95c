package filter_test

import (
	"strings"
	"testing"

	"github.com/qpanda/semfilter/filter"
	"github.com/qpanda/semfilter/token"
	"github.com/qpanda/semfilter/value"
)

func defaultSettings(t *testing.T) filter.Settings {
	t.Helper()
	settings, err := filter.DefaultSettings()
	if err != nil {
		t.Fatalf("DefaultSettings() error: %v", err)
	}
	return settings
}

func runFilter(t *testing.T, expression string, settings filter.Settings, input string) string {
	t.Helper()
	f, err := filter.New(expression, settings)
	if err != nil {
		t.Fatalf("New(%q) error: %v", expression, err)
	}
	var out strings.Builder
	if _, err := f.Run(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return out.String()
}

// Scenario 1: git tags.
func TestScenarioGitTags(t *testing.T) {
	input := "0.1.0\n0.2.0\n0.3.0\n0.4.0\n"
	got := runFilter(t, "$semanticVersion >= 0.2.0", defaultSettings(t), input)
	want := "0.2.0\n0.3.0\n0.4.0\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 2: w output.
func TestScenarioWOutput(t *testing.T) {
	line := "qpanda    pts/1    10.10.0.7   20:01    7.00s  0.00s  0.00s zsh\n"
	got := runFilter(t, "$id == qpanda and $ipv4Address == 10.10.0.7", defaultSettings(t), line)
	if got != line {
		t.Errorf("expected the line to be selected, got %q", got)
	}

	got = runFilter(t, "$id == root", defaultSettings(t), line)
	if got != "" {
		t.Errorf("expected no match, got %q", got)
	}
}

// Scenario 3: time with a non-default format.
func TestScenarioTimeFormat(t *testing.T) {
	settings := defaultSettings(t)
	format, err := value.NewTemporalFormat("%R")
	if err != nil {
		t.Fatalf("NewTemporalFormat(%%R) error: %v", err)
	}
	settings.Formats.Time = format

	line := "qpanda    pts/1    10.10.0.8   21:41    7.00s  0.00s  0.00s zsh\n"
	got := runFilter(t, "$id == qpanda and $time > 21:00", settings, line)
	if got != line {
		t.Errorf("expected $time > 21:00 to match, got %q", got)
	}

	got = runFilter(t, "$id == qpanda and $time > 22:00", settings, line)
	if got != "" {
		t.Errorf("expected $time > 22:00 to not match, got %q", got)
	}
}

// Scenario 4: netstat CIDR.
func TestScenarioNetstatCIDR(t *testing.T) {
	line := "tcp        1      0 109.74.193.253:25       193.32.160.143:41356    ESTABLISHED\n"
	got := runFilter(t, "$id == ESTABLISHED and ip($ipv4SocketAddress) in 193.32.160.0/24", defaultSettings(t), line)
	if got != line {
		t.Errorf("expected the line to be selected, got %q", got)
	}

	got = runFilter(t, "$id == ESTABLISHED and ip($ipv4SocketAddress) in 193.32.161.0/24", defaultSettings(t), line)
	if got != "" {
		t.Errorf("expected no match against 193.32.161.0/24, got %q", got)
	}
}

// Scenario 5: port function.
func TestScenarioPortFunction(t *testing.T) {
	line := "tcp 0 0 10.10.0.7:8080 0.0.0.0:* LISTEN\n"
	got := runFilter(t, "port($ipv4SocketAddress) == 8080", defaultSettings(t), line)
	if got != line {
		t.Errorf("expected port == 8080 to match, got %q", got)
	}

	got = runFilter(t, "port($ipv4SocketAddress) > 9000", defaultSettings(t), line)
	if got != "" {
		t.Errorf("expected port > 9000 to not match, got %q", got)
	}
}

// Scenario 6: empty token set.
func TestScenarioEmptyTokenSet(t *testing.T) {
	line := "hello world\n"
	got := runFilter(t, "$integer > 0", defaultSettings(t), line)
	if got != "" {
		t.Errorf("expected no match: no token of kind integer, got %q", got)
	}

	got = runFilter(t, "$id contains hell", defaultSettings(t), line)
	if got != line {
		t.Errorf("expected $id contains hell to match, got %q", got)
	}
}

func TestOrderPreservation(t *testing.T) {
	input := "a1\nskip\na2\na3\nskip\n"
	got := runFilter(t, "$id starts-with a", defaultSettings(t), input)
	want := "a1\na2\na3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestModeHighlight(t *testing.T) {
	settings := defaultSettings(t)
	settings.Mode = filter.ModeHighlight
	settings.Color = true
	got := runFilter(t, "$id == qpanda", settings, "qpanda pts/1\nroot pts/2\n")
	if !strings.Contains(got, "qpanda") || !strings.Contains(got, "\x1b[") {
		t.Errorf("expected highlighted output to contain ANSI codes, got %q", got)
	}
	if !strings.Contains(got, "root pts/2\n") {
		t.Errorf("expected the non-matching line to still be emitted verbatim in highlight mode, got %q", got)
	}
}

func TestModeFilterAndHighlight(t *testing.T) {
	settings := defaultSettings(t)
	settings.Mode = filter.ModeFilterHighlight
	settings.Color = true
	got := runFilter(t, "$id == qpanda", settings, "qpanda pts/1\nroot pts/2\n")
	if strings.Contains(got, "root") {
		t.Errorf("expected the non-matching line to be dropped in filter-and-highlight mode, got %q", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected the matching line to be highlighted, got %q", got)
	}
}

func TestCustomSeparator(t *testing.T) {
	settings := defaultSettings(t)
	settings.Separators = []token.Separator{token.Comma}
	got := runFilter(t, "$id == b", settings, "a,b,c\n")
	if got != "a,b,c\n" {
		t.Errorf("got %q, want the full csv line selected", got)
	}
}

func TestValidateRejectsColludingSeparator(t *testing.T) {
	settings := defaultSettings(t)
	settings.Separators = []token.Separator{token.Slash}
	_, err := filter.New("$ipv4Network == 10.0.0.0/8", settings)
	if err == nil {
		t.Fatal("expected a ConfigError: '/' collides with the ipv4Network syntax")
	}
}

func TestPreservesTerminators(t *testing.T) {
	got := runFilter(t, "$id == a", defaultSettings(t), "a\r\nb\r\n")
	if got != "a\r\n" {
		t.Errorf("got %q, want CRLF preserved", got)
	}
}
