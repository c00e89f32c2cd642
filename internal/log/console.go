package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"advclock/internal/clock"
)

// ConsoleLogger is a simple, leveled, line-oriented logging engine. Each line carries the wall
// clock time, the process uptime measured on a monotonic epoch, and the level.
type ConsoleLogger struct {
	level  Level
	output io.Writer
	epoch  *clock.Epoch
	mutex  sync.Mutex
}

// NewConsoleLogger creates a standard output logger limited to the specified level. Only log
// messages that are less verbose than the specified level are logged. Uptime is measured from the
// process-wide default epoch.
func NewConsoleLogger(level Level) Logger {
	return NewWriterLogger(level, os.Stdout, clock.DefaultEpoch())
}

// NewWriterLogger creates a logger limited to the specified level that writes to an arbitrary
// output, stamping lines with the uptime since the specified epoch.
func NewWriterLogger(level Level, output io.Writer, epoch *clock.Epoch) Logger {
	return &ConsoleLogger{
		level:  level,
		output: output,
		epoch:  epoch,
	}
}

// Debug logs a debug message, if permitted by the current level.
func (l *ConsoleLogger) Debug(format string, v ...interface{}) {
	l.log(Debug, format, v...)
}

// Info logs an informational message, if permitted by the current level.
func (l *ConsoleLogger) Info(format string, v ...interface{}) {
	l.log(Info, format, v...)
}

// Warn logs a warning message, if permitted by the current level.
func (l *ConsoleLogger) Warn(format string, v ...interface{}) {
	l.log(Warn, format, v...)
}

// Error logs an error message, if permitted by the current level.
func (l *ConsoleLogger) Error(format string, v ...interface{}) {
	l.log(Error, format, v...)
}

// Level reads the current logging level.
func (l *ConsoleLogger) Level() Level {
	return l.level
}

// log writes a single message line, if permitted by the current level.
func (l *ConsoleLogger) log(level Level, format string, v ...interface{}) {
	if !l.level.Enables(level) {
		return
	}

	uptime := clock.Convert(l.epoch.Uptime(), clock.Seconds)

	l.mutex.Lock()
	defer l.mutex.Unlock()

	fmt.Fprintf(
		l.output,
		"%s [+%.6fs] %s\t%s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		uptime,
		level,
		fmt.Sprintf(format, v...),
	)
}
