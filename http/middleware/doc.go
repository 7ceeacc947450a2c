/*
The middleware package defines what a middleware is in bookstore and the set of middlewares the app uses.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- InjectLocation
- LogRequest
- RateLimit
- ReportPanic
- RequestID

The app assembles them like so:

	vs := middleware.NewVisitors(middleware.WithLimit(perSecond, burst))
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.ForceHTTPS(env),
		middleware.RateLimit(vs),
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(log),
	}

View routes add InjectLocation(resolver); the JSON API adds CORS(origin).
*/
package middleware
