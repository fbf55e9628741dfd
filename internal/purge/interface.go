// Package purge turns content changes into ban expressions for the caching
// proxy and hands them to a Sender for fire-and-forget delivery.
//
// Every expression has the form
//
//	obj.http.X-Purge-Host ~ (^(www\.)?example\.com$|...) && obj.http.X-Purge-URL <op> <pattern>[ && ...]
//
// where the host clause covers the site's Host Set and the remaining clauses
// describe the invalidated URLs.
package purge

import (
	"context"
	"purger/pkg/domain"
)

// Purger exposes one operation per purge intent. Operations never return
// errors: unresolvable content and missing parameters are skipped, delivery
// failures are observed by the Sender only.
//
//go:generate mockgen -package mockpurge -source=interface.go -destination=mock/mockpurge.go *
type Purger interface {
	PurgeHome(ctx context.Context)
	PurgeURL(ctx context.Context, rawURL string)
	PurgePost(ctx context.Context, id domain.PostID)
	PurgeTerm(ctx context.Context, id domain.TermID, taxonomy domain.Taxonomy)
	PurgeAJAX(ctx context.Context, action string, params domain.Params)
	PurgePostTypeArchive(ctx context.Context, postType domain.PostType)
	PurgeTimeArchive(ctx context.Context)
	PurgeRSS(ctx context.Context)
	PurgeAll(ctx context.Context)
}

// Sender delivers a ban expression without blocking the caller on the
// proxy's answer.
type Sender interface {
	Send(ctx context.Context, expr string)
}

// Intent labels the purge operation an expression originates from.
type Intent string

const (
	IntentHome            Intent = "home"
	IntentURL             Intent = "url"
	IntentPost            Intent = "post"
	IntentTerm            Intent = "term"
	IntentAJAX            Intent = "ajax"
	IntentPostTypeArchive Intent = "post_type_archive"
	IntentTimeArchive     Intent = "time_archive"
	IntentRSS             Intent = "rss"
	IntentAll             Intent = "all"
)
