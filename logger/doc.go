/*
Package logger provides leveled logging for qparams servers by defining the required behavior in [Logger]
and providing an implementation of it with [QueryLogger].

# QueryLogger

Log messages emitted by [QueryLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [WARN] middleware/queries.go:43 'rejected query params' log_context: "{"error":"param \"q\" is missing","param":"q"}"

An implementation of Logger is initialized at a certain [LogLevel]
and only emits messages at or above that level of importance.
Messages are colorized by level with github.com/fatih/color,
except in PRODUCTION or when LOG_COLOR is "false".

# SentryLogger

When the SENTRY_DSN environment variable is set, [New] wraps the [QueryLogger] in a [SentryLogger],
which additionally ships the [LogContext.Error] of warnings, errors and fatal messages to Sentry.
*/
package logger
