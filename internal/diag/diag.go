// Package diag provides the generator's verbose diagnostics: a small,
// level-gated wrapper over the standard library's log.Logger writing to
// stderr, matching the original fftGen tool's "-v can be specified more
// than once, level one writes the chosen options to stderr" behavior.
package diag

import (
	"io"
	"log"
)

// Logger prints diagnostics to an underlying log.Logger only when the
// configured level is at or above the level a message was logged at.
type Logger struct {
	level int
	log   *log.Logger
}

// New returns a Logger writing to w, gated at level (0 = silent).
func New(w io.Writer, level int) *Logger {
	return &Logger{level: level, log: log.New(w, "", 0)}
}

// Printf emits a message at the given level if the logger's level is at
// least that high.
func (l *Logger) Printf(level int, format string, args ...interface{}) {
	if l == nil || level > l.level {
		return
	}
	l.log.Printf(format, args...)
}

// Enabled reports whether diagnostics at level would be printed.
func (l *Logger) Enabled(level int) bool {
	return l != nil && level <= l.level
}
