package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Level is the verbosity threshold shared by every named logger.
type Level int

const (
	// Debug logs every message, including per-feature apply details.
	Debug Level = iota
	// Info adds toggle and upscaling changes.
	Info
	// Notice logs startup and mode messages. It is the default.
	Notice
	// Warning logs recoverable failures only.
	Warning
	// Error logs configuration problems such as missing effect overrides.
	Error
)

// levels maps each Level to its config name and go-logging level.
var levels = [...]struct {
	name    string
	backend logging.Level
}{
	Debug:   {"debug", logging.DEBUG},
	Info:    {"info", logging.INFO},
	Notice:  {"notice", logging.NOTICE},
	Warning: {"warning", logging.WARNING},
	Error:   {"error", logging.ERROR},
}

// String returns the level's config name.
func (l Level) String() string {
	if l >= Debug && l <= Error {
		return levels[l].name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// state is the process-wide backend. SetSink rebuilds the backend and must keep
// the level chosen by SetLevel.
var state = struct {
	mu      sync.Mutex
	backend logging.LeveledBackend
	level   Level
}{level: Notice}

// Logger is the leveled logging interface used across the engine.
// Values returned by New satisfy it.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module. The module name is printed with every message.
//
// Parameters:
//   - name: the module name, e.g. "raytracing"
//
// Returns:
//   - Logger: the named logger
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects every logger to the given writer, keeping the current level.
// The terminal front end uses it to keep log lines off the HUD.
//
// Parameters:
//   - sink: the writer receiving formatted log lines
func SetSink(sink io.Writer) {
	state.mu.Lock()
	defer state.mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	state.backend = logging.AddModuleLevel(formatted)
	state.backend.SetLevel(levels[state.level].backend, "")
	logging.SetBackend(state.backend)
}

// SetLevel sets the verbosity of every logger. Unknown levels fall back to Error.
//
// Parameters:
//   - level: the minimum level that is printed
func SetLevel(level Level) {
	if level < Debug || level > Error {
		level = Error
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	state.level = level
	state.backend.SetLevel(levels[level].backend, "")
}

// CurrentLevel returns the level last set with SetLevel.
//
// Returns:
//   - Level: the active verbosity
func CurrentLevel() Level {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.level
}

// ParseLevel maps a config level name to a Level. Matching ignores case and
// surrounding space; an empty name selects Notice and "warn" is accepted for Warning.
//
// Parameters:
//   - name: the level name, e.g. "debug"
//
// Returns:
//   - Level: the parsed level
//   - error: error if the name is not a known level
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return Notice, nil
	case "warn":
		return Warning, nil
	}
	for l := Debug; l <= Error; l++ {
		if levels[l].name == name {
			return l, nil
		}
	}
	return Notice, fmt.Errorf("unknown log level %q", name)
}

func init() {
	SetSink(os.Stdout)
}
