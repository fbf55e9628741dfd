package purge

import (
	"context"
	"fmt"
	"net/url"
	"purger/pkg/domain"
	"purger/pkg/storage"
	"strings"
)

// links turns content records into absolute URLs on the home site.
type links struct {
	home    *url.URL
	content storage.ContentStorage
}

func (l links) absolute(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := url.URL{Scheme: l.home.Scheme, Host: l.home.Host, Path: path}

	return u.String()
}

// permalink returns the public URL of a post. Unpublished posts have none.
func (l links) permalink(post *domain.Post) (string, bool) {
	if post == nil || !post.IsPublished() || post.Path == "" {
		return "", false
	}

	return l.absolute(post.Path), true
}

// termLink returns the listing URL of a term.
func (l links) termLink(ctx context.Context, id domain.TermID, taxonomy domain.Taxonomy) (string, bool, error) {
	term, err := l.content.TermByID(ctx, id, taxonomy)
	if err != nil {
		return "", false, fmt.Errorf("could not resolve term: %w", err)
	}
	if term == nil || term.Path == "" {
		return "", false, nil
	}

	return l.absolute(term.Path), true, nil
}

// archiveLink returns the listing URL of a post type.
func (l links) archiveLink(ctx context.Context, postType domain.PostType) (string, bool, error) {
	info, err := l.content.PostTypeByName(ctx, postType)
	if err != nil {
		return "", false, fmt.Errorf("could not resolve post type: %w", err)
	}
	if info == nil || !info.HasArchive || info.ArchivePath == "" {
		return "", false, nil
	}

	return l.absolute(info.ArchivePath), true, nil
}
