package middleware

import (
	"fmt"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/logger"
)

// LogRequest logs the originating IP address, method, requested URI,
// response status, bytes written and duration of every request
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the query values [bookstore.MaskAll] knows carry secrets.
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			uri := r.URL.Path
			if q := r.URL.Query(); len(q) > 0 {
				bookstore.MaskAll(q)
				uri += "?" + q.Encode()
			}

			data := map[string]any{
				"bytes":    m.Written,
				"duration": m.Duration.String(),
				"status":   m.Code,
			}

			if id, ok := r.Context().Value(bookstore.RequestIDKey).(string); ok {
				data["request_id"] = id
			}

			msg := fmt.Sprintf("%s %s %s %d", IPAddress(r), r.Method, uri, m.Code)
			ls.Info(msg, &logger.LogContext{Data: data})
		})
	}
}
