// Package log hands out one named go-logging logger per engine subsystem and lets the
// verbosity of each subsystem be tuned on its own.
package log

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Level is the minimum severity a logger emits.
type Level int

// Levels in increasing severity.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelNames = [...]string{"debug", "info", "notice", "warning", "error"}

var backendLevels = [...]logging.Level{logging.DEBUG, logging.INFO, logging.NOTICE, logging.WARNING, logging.ERROR}

func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

func (l Level) backend() logging.Level {
	if l < Debug || l > Error {
		return logging.NOTICE
	}
	return backendLevels[l]
}

// ParseLevel converts a level name such as "debug" or "WARNING" into a Level.
func ParseLevel(name string) (Level, error) {
	for i, n := range levelNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Level(i), nil
		}
	}
	return Notice, fmt.Errorf("log: unknown level '%s'", name)
}

// Module names a subsystem. Each module logs under its own tag and can carry its own level.
type Module string

// Engine subsystems.
const (
	Loader   Module = "loader"
	Renderer Module = "renderer"
	Device   Module = "opengl"
	Engine   Module = "engine"
	Profiler Module = "profiler"
	CLI      Module = "oxyview"
	Example  Module = "example"
)

// Modules lists every subsystem in the order they are reported.
var Modules = []Module{Loader, Renderer, Device, Engine, Profiler, CLI, Example}

// Logger is the leveled logger used by every engine package.
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

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// Guarded by mu. The leveled backend is rebuilt from these on every change.
var (
	mu           sync.Mutex
	formatted    logging.Backend
	defaultLevel = Notice
	moduleLevels = map[Module]Level{}
)

// For returns the logger for a subsystem.
func For(module Module) Logger {
	return logging.MustGetLogger(string(module))
}

// SetSink redirects every logger to sink. Configured levels are kept.
func SetSink(sink io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted = logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	applyLevels()
}

// SetLevel sets the level of every module that has no level of its own.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	defaultLevel = level
	applyLevels()
}

// SetModuleLevel overrides the level of one module.
func SetModuleLevel(module Module, level Level) {
	mu.Lock()
	defer mu.Unlock()

	moduleLevels[module] = level
	applyLevels()
}

// ResetModuleLevels drops all per-module overrides.
func ResetModuleLevels() {
	mu.Lock()
	defer mu.Unlock()

	moduleLevels = map[Module]Level{}
	applyLevels()
}

// LevelOf reports the level in effect for module.
func LevelOf(module Module) Level {
	mu.Lock()
	defer mu.Unlock()

	if level, ok := moduleLevels[module]; ok {
		return level
	}
	return defaultLevel
}

// ParseModuleLevels applies a comma separated list of module=level pairs, for example
// "renderer=debug,opengl=warning". A bare level sets the default.
//
// Parameters:
//   - list: the pairs to apply
//
// Returns:
//   - error: error naming the first malformed entry; earlier entries stay applied
func ParseModuleLevels(list string) error {
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, levelName, scoped := strings.Cut(entry, "=")
		if !scoped {
			level, err := ParseLevel(name)
			if err != nil {
				return err
			}
			SetLevel(level)
			continue
		}
		level, err := ParseLevel(levelName)
		if err != nil {
			return err
		}
		module := Module(strings.ToLower(strings.TrimSpace(name)))
		if !slices.Contains(Modules, module) {
			return fmt.Errorf("log: unknown module '%s'", name)
		}
		SetModuleLevel(module, level)
	}
	return nil
}

func applyLevels() {
	if formatted == nil {
		return
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(defaultLevel.backend(), "")
	for module, level := range moduleLevels {
		leveled.SetLevel(level.backend(), string(module))
	}
	logging.SetBackend(leveled)
}

func init() {
	SetSink(os.Stderr)
}
