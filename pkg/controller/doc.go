// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers (wildcard or an origin allow-list) and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecover: Turns handler panics into a 500 JSON response.
//
// Provided helpers:
//   - GetClientIP: Resolves the caller IP behind a known number of proxies, used for per-client rate limiting.
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers for a private listener.
package controller
