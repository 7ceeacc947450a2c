/*
Package router defines how the bookstore HTTP server routes requests.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [*Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
the middlewares registered with OnEveryRequest and those added to the Route
are called in the order they appear.

Built client assets are served with a long-lived "Cache-Control" header
and skip the every-request stack.
*/
package router
