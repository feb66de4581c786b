// Package http implements the HTTP transport layer of the service.
//
// It exposes route wiring, request handlers, and middleware for the
// configuration API. The handlers are deliberately thin: they validate
// transport-level input, delegate to the resolution engine, and shape the
// result into the response envelope. Cross-cutting concerns such as request
// tracing and access logging are handled in this package before requests
// reach the resolver.
package http
