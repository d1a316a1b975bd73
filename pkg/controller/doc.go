// Package controller contains HTTP middlewares and helper handlers shared by
// the checkups servers.
//
// Middlewares:
//   - WithCORS: CORS headers and OPTIONS preflight.
//   - WithLogger: request ID, request-scoped logger and access log.
//   - RateLimiter.Middleware: per client IP token buckets.
//   - WithBearerAuth: RS256 bearer token verification.
//
// Helpers:
//   - Pprof: net/http/pprof handlers.
//   - WriteJSONError: {"error": msg} responses.
package controller
