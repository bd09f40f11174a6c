package glob

import (
	"log"
	"os"
)

// Logger receives debug output from Compile, which logs each compiled
// sub-pattern with its regex source. It is the same stub/full split the
// teacher uses for its request handler, moved here and switched by
// SetDebugLogging instead of an HTTP handler.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type stubLogger struct{}

func (stubLogger) Debugf(string, ...interface{}) {}

type fullLogger struct {
	l *log.Logger
}

func (f fullLogger) Debugf(format string, args ...interface{}) {
	f.l.Printf(format, args...)
}

// newLogger is a hack to enable/disable trace logging quickly without
// putting the logic throughout the compiler.
func newLogger(debug bool) Logger {
	if debug {
		return fullLogger{l: log.New(os.Stderr, "glob: ", 0)}
	}
	return stubLogger{}
}

// pkgLogger receives Compile's debug output; it is off by default.
var pkgLogger Logger = stubLogger{}

// SetDebugLogging turns Compile's debug logging on or off for the whole
// process. This is a debugging aid only; it has no effect on
// compiled regex output.
func SetDebugLogging(enabled bool) {
	pkgLogger = newLogger(enabled)
}
