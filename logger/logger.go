package logger

import (
	"fmt"
	"log"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
	"github.com/xy-planning-network/qparams"
)

const (
	callerTmpl  = "%s:%d"
	knownFrames = 2
)

var qparamsPathRegex = regexp.MustCompile(`qparams/.*$`)

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

func NewLogLevel(val string) LogLevel {
	switch val {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	switch ll {
	case LogLevelDebug:
		return "[DEBUG]"
	case LogLevelInfo:
		return "[INFO]"
	case LogLevelWarn:
		return "[WARN]"
	case LogLevelError:
		return "[ERROR]"
	case LogLevelFatal:
		return "[FATAL]"
	default:
		return "[UNK]"
	}
}

// EnvVarOrLogLevel gets the environment variable for the provided key,
// creates a LogLevel from the retrieved value,
// or returns the provided default LogLevel.
func EnvVarOrLogLevel(key string, def LogLevel) LogLevel {
	ll := NewLogLevel(os.Getenv(key))
	if ll == LogLevelUnk {
		return def
	}

	return ll
}

// QueryLogger implements Logger using log.
type QueryLogger struct {
	skip  int
	color bool
	env   qparams.Environment
	l    *log.Logger
	ll   LogLevel
}

// New constructs a Logger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default environment is read from ENVIRONMENT, falling back to DEVELOPMENT.
// The default log level is read from LOG_LEVEL, falling back to INFO.
// Messages are colorized unless LOG_COLOR is "false",
// or, when LOG_COLOR is unset, the environment is PRODUCTION.
//
// If SENTRY_DSN is set, the Logger returned is a *SentryLogger.
func New(opts ...LoggerOptFn) Logger {
	l := &QueryLogger{
		env: qparams.EnvVarOrEnv("ENVIRONMENT", qparams.Development),
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  EnvVarOrLogLevel("LOG_LEVEL", LogLevelInfo),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.color = qparams.EnvVarOrBool("LOG_COLOR", !l.env.IsProduction())

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, dsn)
	}

	return l
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
func (l *QueryLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *QueryLogger) Debug(msg string, ctx *LogContext) {
	l.log(color.WhiteString, LogLevelDebug, msg, ctx)
}

// Error writes an error log.
func (l *QueryLogger) Error(msg string, ctx *LogContext) {
	l.log(color.RedString, LogLevelError, msg, ctx)
}

// Fatal writes a fatal log.
// Unlike [log.Fatal], it does not exit.
func (l *QueryLogger) Fatal(msg string, ctx *LogContext) {
	l.log(color.MagentaString, LogLevelFatal, msg, ctx)
}

// Info writes an info log.
func (l *QueryLogger) Info(msg string, ctx *LogContext) {
	l.log(color.BlueString, LogLevelInfo, msg, ctx)
}

// Warn writes a warning log.
func (l *QueryLogger) Warn(msg string, ctx *LogContext) {
	l.log(color.YellowString, LogLevelWarn, msg, ctx)
}

// LogLevel returns the LogLevel set for the QueryLogger.
func (l *QueryLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *QueryLogger) Skip() int { return l.skip }

// log prints the message if level is at or above the configured LogLevel,
// including any context if available.
func (l *QueryLogger) log(colorizer func(string, ...any) string, level LogLevel, msg string, ctx *LogContext) {
	if l.ll > level {
		return
	}

	var site string
	if ctx != nil && ctx.Caller != "" {
		site = ctx.Caller
	} else {
		// NOTE: skip log itself, the exported method calling it,
		// and however many frames the QueryLogger is configured with
		_, file, line, _ := runtime.Caller(knownFrames + l.skip)
		site = fmt.Sprintf(callerTmpl, callSite(file), line)
	}

	if !l.color {
		colorizer = fmt.Sprintf
	}

	msg = colorizer("%s %s '%s'", level, site, msg)
	if ctx == nil {
		l.l.Println(msg)
		return
	}

	l.l.Println(msg, "log_context:", ctx)
}

// callSite trims file down to its path within this module,
// or the file and the directory it is in otherwise.
//
// e.g.:
// /home/dlk/my-project/main.go => my-project/main.go
// /home/dlk/my-project/internal/internal.go => internal/internal.go
func callSite(file string) string {
	if match := qparamsPathRegex.FindString(file); match != "" {
		return match
	}

	dir, name := path.Split(file)
	return path.Join(path.Base(dir), name)
}
