package resp

import (
	"net/http"

	"github.com/xy-planning-network/bookstore/logger"
	"github.com/xy-planning-network/bookstore/routes"
)

// newLogContext helps structure a logger.LogContext from the provided parts.
func newLogContext(r *http.Request, err error, data any) *logger.LogContext {
	if r == nil && err == nil && data == nil {
		return nil
	}

	ctx := &logger.LogContext{Request: r, Error: err}
	if mapped, ok := data.(map[string]any); ok {
		ctx.Data = mapped
	}

	if r != nil {
		if loc, ok := routes.LocationFromContext(r.Context()); ok {
			ctx.Route = loc.Name
		}
	}

	return ctx
}
