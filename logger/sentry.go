package logger

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// flushWait bounds how long a Fatal log waits for Sentry to receive its event.
const flushWait = 2 * time.Second

// A SentryLogger writes logs through the AppLogger it wraps.
// Warn, Error and Fatal logs carrying a LogContext.Error are also reported to Sentry,
// tagged with the logger's kind, the route name and the request ID.
type SentryLogger struct {
	hub  *sentry.Hub
	kind string
	l    SkipLogger
}

// NewSentryLogger initializes Sentry with dsn and wraps tl in a SentryLogger.
// If Sentry cannot be initialized, tl returns instead.
func NewSentryLogger(tl *AppLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  tl.env,
		IgnoreErrors: []string{"write: broken pipe", "context canceled"},
	})
	if err != nil {
		tl.Error(fmt.Sprintf("unable to init Sentry: %s", err), nil)
		return tl
	}

	return NewSentryLoggerFromHub(tl, sentry.CurrentHub())
}

// NewSentryLoggerFromHub wraps tl in a SentryLogger reporting through hub.
func NewSentryLoggerFromHub(tl *AppLogger, hub *sentry.Hub) *SentryLogger {
	// NOTE: the SentryLogger method and report sit between the caller and tl
	return &SentryLogger{hub: hub, kind: tl.kind, l: tl.AddSkip(2 + tl.Skip())}
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
func (sl *SentryLogger) AddSkip(i int) SkipLogger {
	return &SentryLogger{hub: sl.hub, kind: sl.kind, l: sl.l.AddSkip(i)}
}

func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.l.Debug(msg, ctx) }
func (sl *SentryLogger) Info(msg string, ctx *LogContext)  { sl.l.Info(msg, ctx) }

func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	sl.report(LogLevelWarn, msg, ctx, sl.l.Warn)
}

func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	sl.report(LogLevelError, msg, ctx, sl.l.Error)
}

// Fatal waits for Sentry to receive the event before returning.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	sl.report(LogLevelFatal, msg, ctx, sl.l.Fatal)
}

func (sl *SentryLogger) LogLevel() LogLevel { return sl.l.LogLevel() }
func (sl *SentryLogger) Skip() int         { return sl.l.Skip() }

// report writes the log, then hands ctx.Error to Sentry.
func (sl *SentryLogger) report(level LogLevel, msg string, ctx *LogContext, write func(string, *LogContext)) {
	if sl.l.LogLevel() > level {
		return
	}

	write(msg, ctx)
	if ctx == nil || ctx.Error == nil {
		return
	}

	sl.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentryLevels[level])
		scope.SetExtra("message", msg)
		if sl.kind != "" {
			scope.SetTag("kind", sl.kind)
		}

		if ctx.Route != "" {
			scope.SetTag("route", ctx.Route)
		}

		if id, ok := ctx.Data["request_id"].(string); ok {
			scope.SetTag("request_id", id)
		}

		if ctx.Request != nil {
			scope.SetRequest(ctx.Request)
		}

		if len(ctx.Data) > 0 {
			scope.SetExtra("data", ctx.Data)
		}

		sl.hub.CaptureException(ctx.Error)
	})

	if level == LogLevelFatal {
		sl.hub.Flush(flushWait)
	}
}

var sentryLevels = map[LogLevel]sentry.Level{
	LogLevelWarn:  sentry.LevelWarning,
	LogLevelError: sentry.LevelError,
	LogLevelFatal: sentry.LevelFatal,
}
