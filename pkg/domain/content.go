package domain

// PostID identifies a piece of content.
type PostID int64

// TermID identifies a taxonomy term.
type TermID int64

// PostType names a content type such as "post", "page" or "product".
type PostType string

// Taxonomy names a term classification such as "category" or "post_tag".
type Taxonomy string

// PostStatus is the publication state of a post.
type PostStatus string

const (
	// DefaultPostType is the blog post type. Changes to it also affect the
	// date-based archives and the home page.
	DefaultPostType PostType = "post"

	// PostStatusPublish marks publicly visible content. Only published posts
	// have a permalink.
	PostStatusPublish PostStatus = "publish"
	// PostStatusDraft marks unpublished content.
	PostStatusDraft PostStatus = "draft"
)

// Post is a content item as seen by the purge service.
type Post struct {
	ID     PostID
	Type   PostType
	Status PostStatus
	// Path is the site-relative permalink path, e.g. "/2024/05/hello-world/".
	Path string
}

// IsPublished reports whether the post is publicly reachable.
func (p Post) IsPublished() bool {
	return p.Status == PostStatusPublish
}

// Term is a taxonomy term with a listing page.
type Term struct {
	ID       TermID
	Taxonomy Taxonomy
	Slug     string
	// Path is the site-relative listing path, e.g. "/category/news/".
	Path string
}

// PostTypeInfo describes a registered content type.
type PostTypeInfo struct {
	Name PostType
	// HasArchive is true when the type exposes a listing page at ArchivePath.
	HasArchive  bool
	ArchivePath string
}
