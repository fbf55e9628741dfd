// Package controller contains HTTP middlewares and helper handlers used by the
// event API server.
//
// Middlewares:
//   - WithCORS: adds CORS headers for the configured origin and answers preflights.
//   - WithLogger: attaches a request-scoped logger and request ID, then logs access info.
//   - WithNoCache: lets handlers mark a response as uncacheable by the proxy.
//
// Helpers:
//   - PprofMux: a ServeMux exposing the net/http/pprof handlers.
package controller
