package postgres

import (
	"purger/pkg/domain"
)

type PgPost struct {
	ID       int64  `db:"id"`
	PostType string `db:"post_type"`
	Status   string `db:"status"`
	Path     string `db:"path"`
}

func (p *PgPost) ToDomain() *domain.Post {
	return &domain.Post{
		ID:     domain.PostID(p.ID),
		Type:   domain.PostType(p.PostType),
		Status: domain.PostStatus(p.Status),
		Path:   p.Path,
	}
}

type PgPostType struct {
	Name        string `db:"name"`
	HasArchive  bool   `db:"has_archive"`
	ArchivePath string `db:"archive_path"`
}

func (p *PgPostType) ToDomain() *domain.PostTypeInfo {
	return &domain.PostTypeInfo{
		Name:        domain.PostType(p.Name),
		HasArchive:  p.HasArchive,
		ArchivePath: p.ArchivePath,
	}
}

type PgTerm struct {
	ID       int64  `db:"id"`
	Taxonomy string `db:"taxonomy"`
	Slug     string `db:"slug"`
	Path     string `db:"path"`
}

func (p *PgTerm) ToDomain() *domain.Term {
	return &domain.Term{
		ID:       domain.TermID(p.ID),
		Taxonomy: domain.Taxonomy(p.Taxonomy),
		Slug:     p.Slug,
		Path:     p.Path,
	}
}
