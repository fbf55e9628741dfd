// Package storage defines the persistence interfaces the purge service relies
// on. The content-management platform owns the data; this service only reads
// what it needs to turn a post or term id into URLs and to know which
// hostnames belong to the site.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"purger/pkg/domain"
)

// SiteStorage resolves the hostnames a site (blog) is reachable under.
type SiteStorage interface {
	// BlogDomains returns the domains recorded on the blog's primary record.
	BlogDomains(ctx context.Context, blogID int64) ([]string, error)
	// MappedDomains returns the active domains from the domain mapping table
	// for the blog.
	MappedDomains(ctx context.Context, blogID int64) ([]string, error)
}

// ContentStorage reads the content records needed to resolve purge URLs.
// Lookups return nil without error when the record does not exist.
type ContentStorage interface {
	// PostByID returns the post with the given id.
	PostByID(ctx context.Context, id domain.PostID) (*domain.Post, error)
	// PostTypeByName returns the registered post type.
	PostTypeByName(ctx context.Context, name domain.PostType) (*domain.PostTypeInfo, error)
	// TaxonomiesForType returns the taxonomies registered for a post type.
	TaxonomiesForType(ctx context.Context, postType domain.PostType) ([]domain.Taxonomy, error)
	// PostTermIDs returns the ids of the terms of taxonomy attached to the post.
	PostTermIDs(ctx context.Context, postID domain.PostID, taxonomy domain.Taxonomy) ([]domain.TermID, error)
	// TermByID returns the term with the given id within taxonomy.
	TermByID(ctx context.Context, id domain.TermID, taxonomy domain.Taxonomy) (*domain.Term, error)
}

// AllStorage groups every domain-specific capability.
type AllStorage interface {
	SiteStorage
	ContentStorage
	JobStorage
}

// Storage is a storage handle with lifecycle management.
type Storage interface {
	AllStorage

	// Close releases the underlying resources (e.g. the connection pool).
	Close() error
}
