package postgres

import (
	"context"
	"fmt"
	"purger/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	postsTable             = "posts"
	postTypesTable         = "post_types"
	taxonomiesTable        = "taxonomies"
	termsTable             = "terms"
	termRelationshipsTable = "term_relationships"
)

// PostByID returns a post by id, or nil when it does not exist.
func (p *PgSQL) PostByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	var row PgPost
	found, err := p.Builder.From(postsTable).
		Select("id", "post_type", "status", "path").
		Where(goqu.I("id").Eq(int64(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch post by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// PostTypeByName returns a registered post type, or nil when unknown.
func (p *PgSQL) PostTypeByName(ctx context.Context, name domain.PostType) (*domain.PostTypeInfo, error) {
	var row PgPostType
	found, err := p.Builder.From(postTypesTable).
		Where(goqu.I("name").Eq(string(name))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch post type: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// TaxonomiesForType returns the taxonomies registered for postType in name order.
func (p *PgSQL) TaxonomiesForType(ctx context.Context, postType domain.PostType) ([]domain.Taxonomy, error) {
	var names []string
	if err := p.Builder.From(taxonomiesTable).
		Select("name").
		Where(goqu.I("post_type").Eq(string(postType))).
		Order(goqu.I("name").Asc()).
		ScanValsContext(ctx, &names); err != nil {
		return nil, fmt.Errorf("could not fetch taxonomies: %w", err)
	}

	out := make([]domain.Taxonomy, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Taxonomy(n))
	}

	return out, nil
}

// PostTermIDs returns the ids of the terms of taxonomy attached to postID.
func (p *PgSQL) PostTermIDs(ctx context.Context,
	postID domain.PostID,
	taxonomy domain.Taxonomy) ([]domain.TermID, error) {
	var ids []int64
	if err := p.Builder.From(goqu.T(termRelationshipsTable).As("tr")).
		Select(goqu.I("t.id")).
		Join(goqu.T(termsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("tr.term_id")))).
		Where(
			goqu.I("tr.post_id").Eq(int64(postID)),
			goqu.I("t.taxonomy").Eq(string(taxonomy)),
		).
		Order(goqu.I("t.id").Asc()).
		ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch post terms: %w", err)
	}

	out := make([]domain.TermID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.TermID(id))
	}

	return out, nil
}

// TermByID returns a term of taxonomy by id, or nil when it does not exist.
func (p *PgSQL) TermByID(ctx context.Context, id domain.TermID, taxonomy domain.Taxonomy) (*domain.Term, error) {
	var row PgTerm
	found, err := p.Builder.From(termsTable).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("taxonomy").Eq(string(taxonomy)),
		).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch term by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
