// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the file handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs one structured line per request (method, path, status, latency).
//   - MimeType: Forces the Content-Type of successful responses for configured
//     extensions, ahead of the built-in extension table.
//
// RayID must be registered before RequestLog. MimeType wraps the file handler, so it is
// registered by the static feature itself.
package middleware
