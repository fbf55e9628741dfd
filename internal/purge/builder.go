package purge

import (
	"context"
	"fmt"
	"net/url"
	"purger/internal/config"
	"purger/pkg/domain"
	"purger/pkg/logger"
	"purger/pkg/serrors"
	"purger/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Options configure a Builder. They are typically derived from application config.
type Options struct {
	// HomeURL is the site's base URL. Its host seeds the Host Set and
	// resolved content paths are made absolute against it.
	HomeURL string
	// DomainMapping enables additional hostnames from storage.
	DomainMapping bool
	// BlogID selects the tenant whose mapped domains are used.
	BlogID int64
	// HostsTTL is the Host Set cache lifetime.
	HostsTTL time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HomeURL:       cfg.Varnish.HomeURL,
		DomainMapping: cfg.Site.DomainMapping,
		BlogID:        cfg.Site.BlogID,
		HostsTTL:      cfg.Site.HostsCacheTTL,
	}
}

// Builder renders purge intents into ban expressions and hands them to a Sender.
type Builder struct {
	links     links
	hosts     *HostResolver
	content   storage.ContentStorage
	sender    Sender
	tracer    trace.Tracer
	telemetry builderTelemetry
}

var _ Purger = (*Builder)(nil)

// New constructs a Builder. site is only consulted when domain mapping is enabled.
func New(opts Options, site storage.SiteStorage, content storage.ContentStorage, sender Sender) (*Builder, error) {
	home, err := url.Parse(opts.HomeURL)
	if err != nil || home.Host == "" {
		return nil, serrors.Wrap(serrors.ErrInvalidConfig, err, "invalid home URL %q", opts.HomeURL)
	}
	if sender == nil {
		return nil, serrors.With(serrors.ErrInvalidConfig, "sender is required")
	}

	telemetry, err := newBuilderTelemetry()
	if err != nil {
		return nil, err
	}

	return &Builder{
		links: links{home: home, content: content},
		hosts: NewHostResolver(HostOptions{
			HomeHost:      home.Hostname(),
			DomainMapping: opts.DomainMapping,
			BlogID:        opts.BlogID,
			TTL:           opts.HostsTTL,
		}, site),
		content:   content,
		sender:    sender,
		tracer:    otel.Tracer(instrumentationName),
		telemetry: telemetry,
	}, nil
}

// Hosts returns the current Host Set.
func (b *Builder) Hosts(ctx context.Context) []string {
	return b.hosts.Hosts(ctx)
}

// batch remembers the expressions sent during one purge call.
type batch map[string]struct{}

func (bt batch) add(expr string) bool {
	if _, ok := bt[expr]; ok {
		return false
	}
	bt[expr] = struct{}{}

	return true
}

func (b *Builder) start(ctx context.Context, intent Intent, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := b.tracer.Start(ctx, "purge."+string(intent), trace.WithAttributes(attrs...))
	ctx = logger.WithFields(ctx, zap.String("intent", string(intent)))

	return ctx, span
}

func (b *Builder) send(ctx context.Context, bt batch, intent Intent, clauses ...string) {
	hosts := b.hosts.Hosts(ctx)
	if len(hosts) == 0 {
		logger.Warn(ctx, "empty host set, skipping purge")
		b.telemetry.skip(ctx, intent, skipNoHosts)

		return
	}

	expr := Expression(hosts, clauses...)
	if !bt.add(expr) {
		b.telemetry.skip(ctx, intent, skipDuplicate)

		return
	}

	logger.Debug(ctx, "sending ban", zap.String("expr", expr))
	b.telemetry.requested(ctx, intent)
	b.sender.Send(ctx, expr)
}

// PurgeHome invalidates the root page only.
func (b *Builder) PurgeHome(ctx context.Context) {
	ctx, span := b.start(ctx, IntentHome)
	defer span.End()

	b.purgeHome(ctx, batch{})
}

func (b *Builder) purgeHome(ctx context.Context, bt batch) {
	b.send(ctx, bt, IntentHome, homeClauses()...)
}

// PurgeURL invalidates every URL whose path starts with rawURL's path.
func (b *Builder) PurgeURL(ctx context.Context, rawURL string) {
	ctx, span := b.start(ctx, IntentURL, attribute.String("url", rawURL))
	defer span.End()

	b.purgeURL(ctx, batch{}, IntentURL, rawURL)
}

func (b *Builder) purgeURL(ctx context.Context, bt batch, intent Intent, rawURL string) {
	path, err := urlPath(rawURL)
	if err != nil {
		logger.Debug(ctx, "skipping purge of unparsable URL", zap.String("url", rawURL), zap.Error(err))
		b.telemetry.skip(ctx, intent, skipUnresolved)

		return
	}

	b.send(ctx, bt, intent, urlClauses(path)...)
}

// urlPath returns the escaped path of rawURL; an empty path is the root.
func urlPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}
	path := u.EscapedPath()
	if path == "" {
		path = rootPath
	}

	return path, nil
}

// PurgePost invalidates a post and every listing it appears on: its post type
// archive, its terms' listings and the feed. Blog posts also invalidate the
// date archives and the home page. Nothing is sent when the post has no
// permalink.
func (b *Builder) PurgePost(ctx context.Context, id domain.PostID) {
	ctx, span := b.start(ctx, IntentPost, attribute.Int64("post.id", int64(id)))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.Int64("postID", int64(id)))

	post, err := b.content.PostByID(ctx, id)
	if err != nil {
		logger.Warn(ctx, "could not resolve post", zap.Error(err))
		b.telemetry.skip(ctx, IntentPost, skipStorage)

		return
	}
	permalink, ok := b.links.permalink(post)
	if !ok {
		logger.Debug(ctx, "post has no permalink, skipping purge")
		b.telemetry.skip(ctx, IntentPost, skipUnresolved)

		return
	}

	bt := batch{}
	b.purgeURL(ctx, bt, IntentPost, permalink)
	b.purgePostTypeArchive(ctx, bt, post.Type)
	b.purgePostTerms(ctx, bt, post)
	b.purgeRSS(ctx, bt)

	if post.Type == domain.DefaultPostType {
		b.purgeTimeArchive(ctx, bt)
		b.purgeHome(ctx, bt)
	}
}

func (b *Builder) purgePostTerms(ctx context.Context, bt batch, post *domain.Post) {
	taxonomies, err := b.content.TaxonomiesForType(ctx, post.Type)
	if err != nil {
		logger.Warn(ctx, "could not resolve taxonomies", zap.String("postType", string(post.Type)), zap.Error(err))
		b.telemetry.skip(ctx, IntentTerm, skipStorage)

		return
	}

	seenTaxonomies := make(map[domain.Taxonomy]struct{}, len(taxonomies))
	for _, taxonomy := range taxonomies {
		if _, ok := seenTaxonomies[taxonomy]; ok {
			continue
		}
		seenTaxonomies[taxonomy] = struct{}{}

		ids, err := b.content.PostTermIDs(ctx, post.ID, taxonomy)
		if err != nil {
			logger.Warn(ctx, "could not resolve post terms", zap.String("taxonomy", string(taxonomy)), zap.Error(err))
			b.telemetry.skip(ctx, IntentTerm, skipStorage)

			continue
		}
		for _, id := range ids {
			b.purgeTerm(ctx, bt, id, taxonomy)
		}
	}
}

// PurgeTerm invalidates a term listing.
func (b *Builder) PurgeTerm(ctx context.Context, id domain.TermID, taxonomy domain.Taxonomy) {
	ctx, span := b.start(ctx, IntentTerm,
		attribute.Int64("term.id", int64(id)),
		attribute.String("term.taxonomy", string(taxonomy)))
	defer span.End()

	b.purgeTerm(ctx, batch{}, id, taxonomy)
}

func (b *Builder) purgeTerm(ctx context.Context, bt batch, id domain.TermID, taxonomy domain.Taxonomy) {
	link, ok, err := b.links.termLink(ctx, id, taxonomy)
	if err != nil {
		logger.Warn(ctx, "could not resolve term link",
			zap.Int64("termID", int64(id)), zap.String("taxonomy", string(taxonomy)), zap.Error(err))
		b.telemetry.skip(ctx, IntentTerm, skipStorage)

		return
	}
	if !ok {
		b.telemetry.skip(ctx, IntentTerm, skipUnresolved)

		return
	}

	b.purgeURL(ctx, bt, IntentTerm, link)
}

// PurgeAJAX invalidates AJAX responses for action, narrowed by params.
func (b *Builder) PurgeAJAX(ctx context.Context, action string, params domain.Params) {
	ctx, span := b.start(ctx, IntentAJAX, attribute.String("ajax.action", action))
	defer span.End()

	b.send(ctx, batch{}, IntentAJAX, ajaxClauses(action, params)...)
}

// PurgePostTypeArchive invalidates the listing page of a post type.
func (b *Builder) PurgePostTypeArchive(ctx context.Context, postType domain.PostType) {
	ctx, span := b.start(ctx, IntentPostTypeArchive, attribute.String("post.type", string(postType)))
	defer span.End()

	b.purgePostTypeArchive(ctx, batch{}, postType)
}

func (b *Builder) purgePostTypeArchive(ctx context.Context, bt batch, postType domain.PostType) {
	link, ok, err := b.links.archiveLink(ctx, postType)
	if err != nil {
		logger.Warn(ctx, "could not resolve archive link", zap.String("postType", string(postType)), zap.Error(err))
		b.telemetry.skip(ctx, IntentPostTypeArchive, skipStorage)

		return
	}
	if !ok {
		b.telemetry.skip(ctx, IntentPostTypeArchive, skipUnresolved)

		return
	}

	b.purgeURL(ctx, bt, IntentPostTypeArchive, link)
}

// PurgeTimeArchive invalidates the date-based archives.
func (b *Builder) PurgeTimeArchive(ctx context.Context) {
	ctx, span := b.start(ctx, IntentTimeArchive)
	defer span.End()

	b.purgeTimeArchive(ctx, batch{})
}

func (b *Builder) purgeTimeArchive(ctx context.Context, bt batch) {
	b.send(ctx, bt, IntentTimeArchive, timeArchiveClauses()...)
}

// PurgeRSS invalidates the feeds.
func (b *Builder) PurgeRSS(ctx context.Context) {
	ctx, span := b.start(ctx, IntentRSS)
	defer span.End()

	b.purgeRSS(ctx, batch{})
}

func (b *Builder) purgeRSS(ctx context.Context, bt batch) {
	b.send(ctx, bt, IntentRSS, rssClauses()...)
}

// PurgeAll invalidates every cached object of the site.
func (b *Builder) PurgeAll(ctx context.Context) {
	ctx, span := b.start(ctx, IntentAll)
	defer span.End()

	b.send(ctx, batch{}, IntentAll, allClauses()...)
}
