package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var levelNames = map[Level]string{
	LevelDebug:   "debug",
	LevelInfo:    "info",
	LevelWarning: "warning",
	LevelError:   "error",
	LevelNone:    "none",
}

func (l Level) String() string {
	s, ok := levelNames[l]
	if !ok {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return s
}

var (
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger

	out   io.Writer = os.Stderr
	level           = LevelWarning
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(io.Discard, "D ", flags)
	info = log.New(io.Discard, "I ", flags)
	warning = log.New(io.Discard, "W ", flags)
	error = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// ParseLevel converts a level name (case-insensitive) to a Level.
// "warn" is accepted as an alias for "warning".
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warning", "warn":
		return LevelWarning, true
	case "error":
		return LevelError, true
	case "none", "off":
		return LevelNone, true
	}
	return LevelNone, false
}

// SetLevel enables all loggers at or above the given level
// and silences the others.
func SetLevel(l Level) {
	level = l
	apply()
}

// SetOutput redirects the enabled loggers to w.
func SetOutput(w io.Writer) {
	out = w
	apply()
}

func apply() {
	loggers := []*log.Logger{debug, info, warning, error}
	for i, lg := range loggers {
		if Level(i) >= level {
			lg.SetOutput(out)
		} else {
			lg.SetOutput(io.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	error.Printf(msg, v...)
}
