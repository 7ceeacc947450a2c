/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides three ways of responding to an HTTP request:
- rendering the client application's HTML shell
- rendering JSON data
- reporting an error with a bare status
*/
package resp
