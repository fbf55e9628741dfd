package events

import (
	"context"
	"purger/internal/purge"
	"purger/pkg/controller"
	"purger/pkg/logger"
)

// Event names understood by Bind.
const (
	FlushURL             = "varnish_flush_url"
	FlushHome            = "varnish_flush_home"
	FlushPost            = "varnish_flush_post"
	FlushTerm            = "varnish_flush_term"
	FlushAJAX            = "varnish_flush_ajax"
	FlushPostTypeArchive = "varnish_flush_post_type_archive"
	FlushTimeArchive     = "varnish_flush_time_archive"
	FlushRSS             = "varnish_flush_rss"
	FlushAll             = "varnish_flush_all"
	NoCache              = "varnish_no_cache"
	// SavePost is the platform's own signal emitted whenever a post is saved.
	SavePost = "save_post"
)

// Bind subscribes the purge handlers, the no-cache handler and the default
// save_post binding on bus.
func Bind(bus *Bus, purger purge.Purger) {
	bus.Subscribe(FlushURL, urlHandler{purger})
	bus.Subscribe(FlushHome, HandlerFunc(func(ctx context.Context, _ Payload) { purger.PurgeHome(ctx) }))
	bus.Subscribe(FlushPost, postHandler{purger})
	bus.Subscribe(FlushTerm, termHandler{purger})
	bus.Subscribe(FlushAJAX, ajaxHandler{purger})
	bus.Subscribe(FlushPostTypeArchive, postTypeArchiveHandler{purger})
	bus.Subscribe(FlushTimeArchive, HandlerFunc(func(ctx context.Context, _ Payload) { purger.PurgeTimeArchive(ctx) }))
	bus.Subscribe(FlushRSS, HandlerFunc(func(ctx context.Context, _ Payload) { purger.PurgeRSS(ctx) }))
	bus.Subscribe(FlushAll, HandlerFunc(func(ctx context.Context, _ Payload) { purger.PurgeAll(ctx) }))
	bus.Subscribe(NoCache, HandlerFunc(noCache))
	bus.Subscribe(SavePost, postHandler{purger})
}

type urlHandler struct{ purger purge.Purger }

func (h urlHandler) Handle(ctx context.Context, p Payload) {
	if p.URL == "" {
		logger.Debug(ctx, "ignoring url flush without url")

		return
	}
	h.purger.PurgeURL(ctx, p.URL)
}

type postHandler struct{ purger purge.Purger }

func (h postHandler) Handle(ctx context.Context, p Payload) {
	if p.PostID == 0 {
		logger.Debug(ctx, "ignoring post flush without post id")

		return
	}
	h.purger.PurgePost(ctx, p.PostID)
}

type termHandler struct{ purger purge.Purger }

func (h termHandler) Handle(ctx context.Context, p Payload) {
	if p.TermID == 0 || p.Taxonomy == "" {
		logger.Debug(ctx, "ignoring term flush without term id or taxonomy")

		return
	}
	h.purger.PurgeTerm(ctx, p.TermID, p.Taxonomy)
}

type ajaxHandler struct{ purger purge.Purger }

func (h ajaxHandler) Handle(ctx context.Context, p Payload) {
	if p.Action == "" {
		logger.Debug(ctx, "ignoring ajax flush without action")

		return
	}
	h.purger.PurgeAJAX(ctx, p.Action, p.Params)
}

type postTypeArchiveHandler struct{ purger purge.Purger }

func (h postTypeArchiveHandler) Handle(ctx context.Context, p Payload) {
	if p.PostType == "" {
		logger.Debug(ctx, "ignoring archive flush without post type")

		return
	}
	h.purger.PurgePostTypeArchive(ctx, p.PostType)
}

func noCache(ctx context.Context, _ Payload) {
	if !controller.MarkNoCache(ctx) {
		logger.Debug(ctx, "response headers already sent, no-cache ignored")
	}
}
