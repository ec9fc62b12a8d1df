package logger

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

type testGate struct {
	*logGate
	out    *bytes.Buffer
	errOut *bytes.Buffer
	clears int
}

// newTestGate builds a gate with buffer sinks and a counting clear
// primitive so tests control clear permission directly.
func newTestGate(level LogLevel, canClear bool) *testGate {
	tg := &testGate{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	tg.logGate = &logGate{
		level:    level,
		prefix:   DefaultPrefix,
		canClear: canClear,
		sinks: map[LogLevel]io.Writer{
			LevelInfo:  tg.out,
			LevelWarn:  tg.errOut,
			LevelError: tg.errOut,
		},
		clear:        func(io.Writer) { tg.clears++ },
		warnedOnce:   make(map[string]struct{}),
		loggedErrors: make(map[error]struct{}),
	}
	return tg
}

func (tg *testGate) lines() []string {
	combined := tg.out.String() + tg.errOut.String()
	return strings.Split(strings.TrimSuffix(combined, "\n"), "\n")
}

func TestSeverityGating(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		threshold LogLevel
		wantInfo  bool
		wantWarn  bool
		wantError bool
	}{
		{LevelSilent, false, false, false},
		{LevelError, false, false, true},
		{LevelWarn, false, true, true},
		{LevelInfo, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.threshold.String(), func(t *testing.T) {
			tg := newTestGate(tt.threshold, false)
			tg.Info("i")
			tg.Warn("w")
			tg.Error("e")

			out := tg.out.String() + tg.errOut.String()
			if got := strings.Contains(out, "i"); got != tt.wantInfo {
				t.Errorf("info printed = %v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(out, "w"); got != tt.wantWarn {
				t.Errorf("warn printed = %v, want %v", got, tt.wantWarn)
			}
			if got := strings.Contains(out, "e"); got != tt.wantError {
				t.Errorf("error printed = %v, want %v", got, tt.wantError)
			}
		})
	}
}

func TestRepeatCollapsing(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tg := newTestGate(LevelInfo, true)
	tg.Info("building...")
	tg.Info("building...")
	tg.Info("building...")

	lines := tg.lines()
	want := []string{"building...", "building... (x2)", "building... (x3)"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	// Each collapsed repeat clears the screen.
	if tg.clears != 2 {
		t.Errorf("clear invoked %d times, want 2", tg.clears)
	}
}

func TestRepeatCounterResetsOnNewMessage(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tg := newTestGate(LevelInfo, true)
	tg.Info("building...")
	tg.Info("building...")
	tg.Info("done")
	tg.Info("done")

	lines := tg.lines()
	last := lines[len(lines)-1]
	if last != "done (x2)" {
		t.Errorf("counter should restart at (x2) after a new message, got %q", last)
	}
}

func TestRepeatAtDifferentSeverityDoesNotCollapse(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tg := newTestGate(LevelInfo, true)
	tg.Info("hmr update")
	tg.Warn("hmr update")

	if strings.Contains(tg.errOut.String(), "(x") {
		t.Errorf("same message at a different severity must not collapse, got %q", tg.errOut.String())
	}
}

func TestNoCollapsingWithoutClearPermission(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tg := newTestGate(LevelInfo, false)
	tg.Info("building...")
	tg.Info("building...")
	tg.Info("building...")

	lines := tg.lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if line != "building..." {
			t.Errorf("line %d = %q, want plain message", i, line)
		}
	}
	if tg.clears != 0 {
		t.Errorf("clear invoked %d times, want 0", tg.clears)
	}
}

func TestClearOption(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tg := newTestGate(LevelInfo, true)
	tg.Info("restarting server...", LogOptions{Clear: true})
	if tg.clears != 1 {
		t.Errorf("clear invoked %d times, want 1", tg.clears)
	}

	// Without permission the option is ignored.
	tg = newTestGate(LevelInfo, false)
	tg.Info("restarting server...", LogOptions{Clear: true})
	if tg.clears != 0 {
		t.Errorf("clear invoked %d times without permission, want 0", tg.clears)
	}
}

func TestWarnOnce(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tg := newTestGate(LevelInfo, false)
	tg.WarnOnce("deprecated option")
	tg.WarnOnce("deprecated option")

	if got := strings.Count(tg.errOut.String(), "deprecated option"); got != 1 {
		t.Errorf("WarnOnce printed %d times, want 1", got)
	}
	if !tg.HasWarned() {
		t.Error("HasWarned() should be true after WarnOnce")
	}

	// A different message still prints.
	tg.WarnOnce("another warning")
	if !strings.Contains(tg.errOut.String(), "another warning") {
		t.Error("WarnOnce should print a message it has not seen")
	}
}

func TestHasWarnedStickiness(t *testing.T) {
	tg := newTestGate(LevelSilent, false)
	if tg.HasWarned() {
		t.Error("HasWarned() should start false")
	}

	// Set even when the threshold suppresses the output.
	tg.Warn("suppressed")
	if !tg.HasWarned() {
		t.Error("HasWarned() should be true after a suppressed warn")
	}
}

func TestHasErrorLogged(t *testing.T) {
	tg := newTestGate(LevelInfo, false)
	err := errors.New("file not found")

	if tg.HasErrorLogged(err) {
		t.Error("HasErrorLogged() should be false before the error is logged")
	}

	tg.Error("failed to load entry", LogOptions{Error: err})
	if !tg.HasErrorLogged(err) {
		t.Error("HasErrorLogged() should be true after the error is logged")
	}

	// Identity, not message equality.
	other := errors.New("file not found")
	if tg.HasErrorLogged(other) {
		t.Error("HasErrorLogged() should be false for a distinct error with the same message")
	}
}

func TestErrorRecordedEvenWhenSuppressed(t *testing.T) {
	tg := newTestGate(LevelSilent, false)
	err := errors.New("boom")

	tg.Error("boom", LogOptions{Error: err})
	if tg.out.Len() != 0 || tg.errOut.Len() != 0 {
		t.Error("silent logger should print nothing")
	}
	if !tg.HasErrorLogged(err) {
		t.Error("error identity should be recorded even when the message is suppressed")
	}
}

func TestClearScreen(t *testing.T) {
	tg := newTestGate(LevelWarn, true)

	tg.ClearScreen(LevelInfo)
	if tg.clears != 0 {
		t.Error("ClearScreen above the threshold should be a no-op")
	}

	tg.ClearScreen(LevelWarn)
	if tg.clears != 1 {
		t.Error("ClearScreen at the threshold should clear")
	}

	tg = newTestGate(LevelInfo, false)
	tg.ClearScreen(LevelInfo)
	if tg.clears != 0 {
		t.Error("ClearScreen without permission should be a no-op")
	}
}

func TestTimestampFormatting(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tg := newTestGate(LevelInfo, false)
	tg.Info("page reload", LogOptions{Timestamp: true})

	line := strings.TrimSuffix(tg.out.String(), "\n")
	if !strings.HasSuffix(line, DefaultPrefix+" page reload") {
		t.Errorf("timestamped line should end with prefix and message, got %q", line)
	}
	if line == DefaultPrefix+" page reload" {
		t.Errorf("timestamped line should start with a time of day, got %q", line)
	}
}

func TestNewReturnsCustomLogger(t *testing.T) {
	custom := newTestGate(LevelInfo, false)
	got := New(LevelSilent, Options{CustomLogger: custom})
	if got != Logger(custom) {
		t.Error("New should return the custom logger unchanged")
	}
}

func TestIndependentLoggersDoNotShareState(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	a := newTestGate(LevelInfo, true)
	b := newTestGate(LevelInfo, true)

	a.Info("building...")
	b.Info("building...")

	if strings.Contains(b.out.String(), "(x") {
		t.Errorf("repeat state leaked between loggers, got %q", b.out.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"silent", LevelSilent, false},
		{"error", LevelError, false},
		{"warn", LevelWarn, false},
		{"info", LevelInfo, false},
		{"debug", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
