/*

Package logger provides logging functionality to an app built on reply by defining
the required behavior in [Logger] and providing an implementation of it with [ReplyLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [ReplyLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*ReplyLogger.Warn], [*ReplyLogger.Error], and [*ReplyLogger.Fatal] produce messages.

# ReplyLogger

The [ReplyLogger] is the implementation of [Logger] returned by the [New] function.

Log messages emitted by [ReplyLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [DEBUG] web/dashboard_handler.go:43 'such fun!' log_context: "{"user":"{"id": 1, "email": "reply@example.com"}}"

The file, line number, and parent directory of the caller comprise the call site.
The message is the actual string passed into the [ReplyLogger] method, in this example, [*ReplyLogger.Debug].
Lastly, the log context is a JSON-encoded [*LogContext].
The last component allows for including additional data inessential to the message proper,
but provides a fuller picture of the application state at the time of logging.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.

# SentryLogger

When the SENTRY_DSN environment variable is set, [New] wraps the [ReplyLogger]
in a [SentryLogger], which additionally ships warning, error, and fatal events to Sentry.
*/
package logger
