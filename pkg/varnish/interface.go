// Package varnish defines the transport used to hand ban expressions to the
// caching proxy.
package varnish

import "context"

const (
	// HostKey is the object header the proxy stores the request host under.
	HostKey = "obj.http.X-Purge-Host"
	// URLKey is the object header the proxy stores the request URL under.
	URLKey = "obj.http.X-Purge-URL"

	// NoCacheHeader marks a response the proxy must not cache.
	NoCacheHeader = "X-Varnish-No-Cache"

	// PlaceholderSecret is the well-known default secret shipped with the proxy
	// configuration sample. It is rejected as a configuration error.
	PlaceholderSecret = "SECRET KEY"
)

// Client delivers a ban expression to the proxy.
//
//go:generate mockgen -package mockvarnish -source=interface.go -destination=mock/mockvarnish.go *
type Client interface {
	// Ban submits expr and returns once the proxy answered or the request
	// failed.
	Ban(ctx context.Context, expr string) error
}
