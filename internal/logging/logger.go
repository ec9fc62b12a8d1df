package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/libmw/vite/internal/terminal"
	"github.com/libmw/vite/internal/ui"
)

// LogLevel is the severity of a message, and doubles as the logger
// threshold. A message prints only when the logger level is at or above
// the message severity.
type LogLevel int

const (
	LevelSilent LogLevel = iota
	LevelError
	LevelWarn
	LevelInfo
)

// String returns the level name as accepted by ParseLevel.
func (l LogLevel) String() string {
	switch l {
	case LevelSilent:
		return "silent"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLevel converts a level name into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch s {
	case "silent":
		return LevelSilent, nil
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// DefaultPrefix is prepended to timestamped log lines.
const DefaultPrefix = "[vite]"

// LogOptions adjusts a single log call.
type LogOptions struct {
	// Clear clears the screen before printing.
	Clear bool
	// Timestamp prepends the time of day and the logger prefix tag.
	Timestamp bool
	// Error associates an error with this message so that
	// HasErrorLogged can later answer whether it was surfaced.
	Error error
}

// Logger prints developer-facing messages with severity gating and,
// on interactive terminals, collapsing of consecutive repeats.
type Logger interface {
	Info(msg string, opts ...LogOptions)
	Warn(msg string, opts ...LogOptions)
	WarnOnce(msg string, opts ...LogOptions)
	Error(msg string, opts ...LogOptions)

	// ClearScreen clears the terminal if the given severity passes the
	// logger threshold and clearing is permitted.
	ClearScreen(level LogLevel)

	// HasErrorLogged reports whether this exact error value was
	// previously attached to an Error or Warn call. Membership is by
	// identity, not by message.
	HasErrorLogged(err error) bool

	// HasWarned reports whether any warning or error was ever issued.
	HasWarned() bool
}

// Options configures New.
type Options struct {
	// Prefix replaces DefaultPrefix on timestamped lines.
	Prefix string
	// NoClearScreen disables screen clearing and with it the
	// repeat-collapsing behavior. Clearing is additionally disabled
	// when stdout is not a terminal or the process runs in CI.
	NoClearScreen bool
	// CustomLogger, when set, is returned by New unchanged and all
	// other options are ignored.
	CustomLogger Logger
}

type logGate struct {
	mu     sync.Mutex
	level  LogLevel
	prefix string

	// canClear is fixed at construction: explicit opt-in, stdout is a
	// TTY, and not running under CI. Collapsing is only active when
	// clearing is.
	canClear bool

	sinks map[LogLevel]io.Writer
	clear func(io.Writer)

	lastType  LogLevel
	lastMsg   string
	sameCount int

	warnedOnce   map[string]struct{}
	loggedErrors map[error]struct{}
	hasWarned    bool
}

// New builds a Logger filtering below the given level. When
// opts.CustomLogger is set it is returned as-is.
func New(level LogLevel, opts Options) Logger {
	if opts.CustomLogger != nil {
		return opts.CustomLogger
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &logGate{
		level:    level,
		prefix:   prefix,
		canClear: !opts.NoClearScreen && terminal.IsTTY(os.Stdout) && !terminal.InCI(),
		sinks: map[LogLevel]io.Writer{
			LevelInfo:  os.Stdout,
			LevelWarn:  os.Stderr,
			LevelError: os.Stderr,
		},
		clear:        defaultClear,
		warnedOnce:   make(map[string]struct{}),
		loggedErrors: make(map[error]struct{}),
	}
}

func defaultClear(w io.Writer) {
	terminal.Clear(w, terminal.Rows(os.Stdout))
}

func (l *logGate) Info(msg string, opts ...LogOptions) {
	l.output(LevelInfo, msg, first(opts))
}

func (l *logGate) Warn(msg string, opts ...LogOptions) {
	l.output(LevelWarn, msg, first(opts))
}

func (l *logGate) Error(msg string, opts ...LogOptions) {
	l.output(LevelError, msg, first(opts))
}

func (l *logGate) WarnOnce(msg string, opts ...LogOptions) {
	l.mu.Lock()
	if _, seen := l.warnedOnce[msg]; seen {
		l.mu.Unlock()
		return
	}
	l.warnedOnce[msg] = struct{}{}
	l.mu.Unlock()

	l.output(LevelWarn, msg, first(opts))
}

// output is the single gate/collapse decision point. It runs under the
// mutex as one atomic step: the collapse decision reads and then writes
// lastType, lastMsg and sameCount together.
func (l *logGate) output(t LogLevel, msg string, o LogOptions) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Bookkeeping happens even for messages the threshold drops.
	if t == LevelWarn || t == LevelError {
		l.hasWarned = true
	}
	if o.Error != nil {
		l.loggedErrors[o.Error] = struct{}{}
	}

	if l.level < t {
		return
	}
	w := l.sinks[t]

	if !l.canClear {
		fmt.Fprintln(w, l.format(t, msg, o))
		return
	}

	if t == l.lastType && msg == l.lastMsg {
		l.sameCount++
		l.clear(w)
		fmt.Fprintln(w, l.format(t, msg, o)+" "+ui.Repeat.Sprintf("(x%d)", l.sameCount+1))
		return
	}

	l.sameCount = 0
	l.lastType, l.lastMsg = t, msg
	if o.Clear {
		l.clear(w)
	}
	fmt.Fprintln(w, l.format(t, msg, o))
}

func (l *logGate) format(t LogLevel, msg string, o LogOptions) string {
	if !o.Timestamp {
		return msg
	}
	var tag ui.Formatter
	switch t {
	case LevelWarn:
		tag = ui.TagWarn
	case LevelError:
		tag = ui.TagError
	default:
		tag = ui.TagInfo
	}
	// Fixed 12-hour rendering; Go has no locale-aware clock formatting.
	now := time.Now().Format("3:04:05 PM")
	return ui.Timestamp.Sprint(now) + " " + tag.Sprint(l.prefix) + " " + msg
}

func (l *logGate) ClearScreen(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < level || !l.canClear {
		return
	}
	l.clear(l.sinks[LevelInfo])
}

func (l *logGate) HasErrorLogged(err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.loggedErrors[err]
	return ok
}

func (l *logGate) HasWarned() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasWarned
}

func first(opts []LogOptions) LogOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return LogOptions{}
}
