package client

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lni/dragonboat/v4/logger"
)

var (
	// Logger is the package level logger for the client core
	Logger = logger.GetLogger("etcdc")

	// TransportLogger is used by the default HTTP transport
	TransportLogger = logger.GetLogger("etcdc/transport")
)

// --------------------------------------------------------------------------
// Custom Logger (implements dragonboats logger.ILogger)
// --------------------------------------------------------------------------

// etcdcLogger implements the ILogger interface. All levels share one
// filtered write path; panics are never filtered, since a library that
// swallows its own panics based on a log level hides bugs from the
// embedding application.
type etcdcLogger struct {
	pkg   string
	level logger.LogLevel
	out   *log.Logger
}

func (l *etcdcLogger) SetLevel(level logger.LogLevel) {
	l.level = level
}

func (l *etcdcLogger) Debugf(format string, args ...interface{}) {
	l.write(logger.DEBUG, "DEBUG", format, args...)
}

func (l *etcdcLogger) Infof(format string, args ...interface{}) {
	l.write(logger.INFO, "INFO", format, args...)
}

func (l *etcdcLogger) Warningf(format string, args ...interface{}) {
	l.write(logger.WARNING, "WARN", format, args...)
}

func (l *etcdcLogger) Errorf(format string, args ...interface{}) {
	l.write(logger.ERROR, "ERROR", format, args...)
}

func (l *etcdcLogger) Panicf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.out.Printf("%-5s | %-15s | %s", "PANIC", l.pkg, message)
	panic(message)
}

// write emits one message if the logger's level admits it
func (l *etcdcLogger) write(level logger.LogLevel, tag string, format string, args ...interface{}) {
	if l.level < level {
		return
	}
	l.out.Printf("%-5s | %-15s | %s", tag, l.pkg, fmt.Sprintf(format, args...))
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// CreateLogger implements the dragonboat logger factory interface
func CreateLogger(pkgName string) logger.ILogger {
	return &etcdcLogger{
		pkg:   pkgName,
		level: logger.INFO,
		out:   log.New(os.Stderr, "", log.Ldate|log.Ltime),
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// parseLogLevel converts a string level to logger.LogLevel. Unknown values
// fall back to INFO so that a typo in a config file degrades logging
// instead of taking the application down.
func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG
	case "warning", "warn":
		return logger.WARNING
	case "error":
		return logger.ERROR
	default:
		return logger.INFO
	}
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

// InitLoggers installs the custom format and applies the configured log level
// to all loggers of the library
func InitLoggers(config ClientConfig) {
	// Set as the global logger factory
	logger.SetLoggerFactory(CreateLogger)

	level := parseLogLevel(config.LogLevel)
	logger.GetLogger("etcdc").SetLevel(level)
	logger.GetLogger("etcdc/transport").SetLevel(level)
}
