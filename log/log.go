package log

import (
	"fmt"
	"io"
	"log"
)

// Logger wraps a standard library logger with a switch for debug output.
// Debug lines are dropped unless the logger is verbose.
type Logger struct {
	l       *log.Logger
	verbose bool
}

// The standard logger discards everything until SetOutput points it
// somewhere.
var std = New(io.Discard, "hexdump: ", 0, false)

// Default returns the standard logger used by the package-level output functions.
func Default() *Logger { return std }

func New(out io.Writer, prefix string, flag int, verbose bool) *Logger {
	return &Logger{l: log.New(out, prefix, flag), verbose: verbose}
}

// Verbose reports whether debug lines are written.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// SetVerbose turns debug lines on or off.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// SetOutput sets the output destination for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.l.SetOutput(w)
}

// Writer returns the output destination for the logger.
func (l *Logger) Writer() io.Writer {
	return l.l.Writer()
}

// Printf calls l.Output to print to the logger.
// Arguments are handled in the manner of [fmt.Printf].
func (l *Logger) Printf(format string, v ...any) {
	l.l.Output(2, fmt.Sprintf(format, v...))
}

// Debugf is like Printf but only prints when the logger is verbose.
func (l *Logger) Debugf(format string, v ...any) {
	if !l.verbose {
		return
	}
	l.l.Output(2, fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination for the standard logger.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetVerbose turns debug lines of the standard logger on or off.
func SetVerbose(verbose bool) {
	std.SetVerbose(verbose)
}

// Debugf writes to the standard logger if it is verbose.
func Debugf(format string, v ...any) {
	std.Debugf(format, v...)
}
