package logger

import (
	"log"

	"github.com/xy-planning-network/qparams"
)

// A LoggerOptFn is a functional option configuring a QueryLogger when constructing a new one.
type LoggerOptFn func(*QueryLogger)

// WithEnv sets the environment QueryLogger is operating in.
func WithEnv(env qparams.Environment) LoggerOptFn {
	return func(l *QueryLogger) {
		l.env = env
	}
}

// WithLevel sets the log level QueryLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *QueryLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger QueryLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *QueryLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *QueryLogger) {
		l.skip = skip
	}
}
