package sentry

import (
	"fmt"
	"time"

	"warlineup/lib/env"

	"github.com/getsentry/sentry-go"
)

// Init initializes Sentry with configuration from environment variables.
// Returns false when SENTRY_DSN is not set.
func Init(appName string, debug bool) bool {
	dsn := env.SentryDSN
	if dsn == "" {
		return false
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Debug:            debug,
		Environment:      env.Environment,
		Release:          env.Release,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Tags == nil {
				event.Tags = make(map[string]string)
			}
			event.Tags["app"] = appName
			return event
		},
	}); err != nil {
		panic(err)
	}

	return true
}

func isInitialized() bool {
	hub := sentry.CurrentHub()
	return hub != nil && hub.Client() != nil
}

// SetTag attaches a tag to every event sent from the current hub.
func SetTag(key, value string) {
	if !isInitialized() {
		return
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag(key, value)
	})
}

// Recover recovers from panics and sends them to Sentry
func Recover() {
	if err := recover(); err != nil {
		if isInitialized() {
			hub := sentry.CurrentHub()
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetLevel(sentry.LevelFatal)
				scope.SetTag("panic", "true")
				if e, ok := err.(error); ok {
					hub.CaptureException(e)
				} else {
					hub.CaptureMessage(fmt.Sprintf("panic: %v", err))
				}
			})
			sentry.Flush(2 * time.Second)
		}
		panic(err) // Re-panic after capturing
	}
}

// CaptureError captures an error to Sentry
func CaptureError(level sentry.Level, logKey string, err error, fields map[string]any) {
	if !isInitialized() {
		return
	}

	sentry.CurrentHub().WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		scope.SetTag("log_key", logKey)
		for k, v := range fields {
			scope.SetExtra(k, v)
		}

		sentry.CurrentHub().CaptureException(err)
	})
}

// Flush ensures all pending events are sent before program exits
func Flush() {
	sentry.Flush(2 * time.Second)
}
