package purge

import (
	"context"
	"purger/pkg/logger"
	"purger/pkg/storage"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// DefaultHostsTTL is how long a resolved Host Set is reused.
const DefaultHostsTTL = time.Hour

const hostsCacheKey = "hosts"

// HostOptions configure Host Set resolution.
type HostOptions struct {
	// HomeHost is the canonical site hostname.
	HomeHost string
	// DomainMapping enables reading additional domains from storage.
	DomainMapping bool
	// BlogID selects the tenant whose domains are read.
	BlogID int64
	// TTL is the cache lifetime of a resolved set. Zero means DefaultHostsTTL.
	TTL time.Duration
}

// HostResolver computes the Host Set lazily and caches it until expiry. It is
// safe for concurrent use.
type HostResolver struct {
	opts  HostOptions
	site  storage.SiteStorage
	cache *gocache.Cache
}

// NewHostResolver returns a resolver; site may be nil when domain mapping is off.
func NewHostResolver(opts HostOptions, site storage.SiteStorage) *HostResolver {
	if opts.TTL <= 0 {
		opts.TTL = DefaultHostsTTL
	}

	return &HostResolver{
		opts:  opts,
		site:  site,
		cache: gocache.New(opts.TTL, 2*opts.TTL),
	}
}

// Hosts returns the Host Set. Hostnames are lower-cased, stripped of a
// leading "www." and deduplicated in first-seen order. A set assembled while
// storage was failing is returned but not cached.
func (h *HostResolver) Hosts(ctx context.Context) []string {
	if v, ok := h.cache.Get(hostsCacheKey); ok {
		if hosts, ok := v.([]string); ok {
			return append([]string(nil), hosts...)
		}
	}

	hosts := []string{h.opts.HomeHost}
	complete := true

	if h.opts.DomainMapping && h.site != nil {
		blogDomains, err := h.site.BlogDomains(ctx, h.opts.BlogID)
		if err != nil {
			logger.Warn(ctx, "could not read blog domains", zap.Int64("blogID", h.opts.BlogID), zap.Error(err))
			complete = false
		}
		hosts = append(hosts, blogDomains...)

		mapped, err := h.site.MappedDomains(ctx, h.opts.BlogID)
		if err != nil {
			logger.Warn(ctx, "could not read mapped domains", zap.Int64("blogID", h.opts.BlogID), zap.Error(err))
			complete = false
		}
		hosts = append(hosts, mapped...)
	}

	hosts = NormalizeHosts(hosts)
	if complete {
		h.cache.Set(hostsCacheKey, hosts, gocache.DefaultExpiration)
	}

	return append([]string(nil), hosts...)
}

// NormalizeHosts lower-cases, strips "www." and deduplicates hosts, dropping
// empty entries.
func NormalizeHosts(hosts []string) []string {
	seen := make(map[string]struct{}, len(hosts))
	out := make([]string, 0, len(hosts))
	for _, host := range hosts {
		host = strings.ToLower(strings.TrimSpace(host))
		host = strings.TrimPrefix(host, "www.")
		if host == "" {
			continue
		}
		if _, ok := seen[host]; ok {
			continue
		}
		seen[host] = struct{}{}
		out = append(out, host)
	}

	return out
}
