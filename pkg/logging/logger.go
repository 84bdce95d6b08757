package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is built on the standard
// log package, so it respects any flags set for loggers created by that
// package. It is safe for concurrent usage.
type Logger struct {
	// level is the maximum level at which messages are emitted.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// logger is the underlying log implementation.
	logger *log.Logger
}

// NewLogger creates a new logger that emits messages at or below the
// specified level to the specified stream.
func NewLogger(level Level, stream io.Writer) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(stream, "", log.LstdFlags),
	}
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		logger: l.logger,
	}
}

// output is the internal logging method.
func (l *Logger) output(level Level, line string) {
	// Filter by level.
	if l == nil || level > l.level {
		return
	}

	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	l.logger.Output(3, line)
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	l.output(LevelError, color.RedString("Error: %v", err))
}

// Errorf logs information at error level with semantics equivalent to
// fmt.Printf.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(LevelError, color.RedString("Error: "+format, v...))
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	l.output(LevelWarn, color.YellowString("Warning: %v", err))
}

// Warnf logs information at warning level with semantics equivalent to
// fmt.Printf.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(LevelWarn, color.YellowString("Warning: "+format, v...))
}

// Info logs information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	l.output(LevelInfo, fmt.Sprint(v...))
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(LevelInfo, fmt.Sprintf(format, v...))
}

// Debug logs debugging information with semantics equivalent to fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	l.output(LevelDebug, fmt.Sprint(v...))
}

// Debugf logs debugging information with semantics equivalent to fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(LevelDebug, fmt.Sprintf(format, v...))
}
