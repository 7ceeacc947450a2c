package middleware

import (
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/bookstore"
)

// ReportPanic recovers panics in the handlers it wraps, reporting them to Sentry.
//
// In development, panics surface untouched and NoopAdapter returns.
func ReportPanic(env bookstore.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
		Timeout:         2 * time.Second,
	})

	return sh.Handle
}
