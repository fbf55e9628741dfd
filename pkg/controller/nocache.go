package controller

import (
	"context"
	"net/http"
	"purger/pkg/varnish"
	"sync"
)

// NoCacheHeader tells the proxy not to store the response.
const NoCacheHeader = varnish.NoCacheHeader

type noCacheKey struct{}

// noCacheState is shared between the middleware and handlers of one request.
type noCacheState struct {
	mu  sync.Mutex
	rec *responseRecorder
}

// WithNoCache returns a middleware that lets handlers further down the chain
// call MarkNoCache to flag the current response as uncacheable.
func WithNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := w.(*responseRecorder)
		if !ok {
			rec = &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		}
		state := &noCacheState{rec: rec}

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), noCacheKey{}, state)))
	})
}

// MarkNoCache sets the no-cache header on the response bound to ctx. It
// reports false when ctx carries no response or its headers were already sent.
func MarkNoCache(ctx context.Context) bool {
	state, _ := ctx.Value(noCacheKey{}).(*noCacheState)
	if state == nil {
		return false
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.rec.wroteHeader {
		return false
	}
	state.rec.Header().Set(NoCacheHeader, "true")

	return true
}
