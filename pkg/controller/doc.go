// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - CORS: Adds CORS headers for an origin allow-list (or any origin) and answers OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info,
//     including the matched chi route pattern.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers under a path prefix.
package controller
