// Package logging configures the zerolog logger shared by the viewmatrix commands.
package logging

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levels = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level returns the zerolog level named by s, ignoring case.
// Unknown names are InfoLevel.
func Level(s string) zerolog.Level {
	if l, ok := levels[strings.ToUpper(s)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// New returns a logger writing to w at the named level.
// When w is a terminal the output is formatted for people;
// otherwise it is one JSON object per line.
func New(w io.Writer, level string) zerolog.Logger {
	if isTerminal(w) {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "2006-01-02 15:04:05",
		}
	}
	return zerolog.New(w).Level(Level(level)).With().Timestamp().Logger()
}

// Setup points the global logger at standard error.
func Setup(level string) {
	log.Logger = New(os.Stderr, level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || runtime.GOOS == "windows" {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
