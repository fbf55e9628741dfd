package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	blogsTable         = "blogs"
	domainMappingTable = "domain_mapping"
)

// BlogDomains returns the domain of the blog's primary record.
func (p *PgSQL) BlogDomains(ctx context.Context, blogID int64) ([]string, error) {
	var domains []string
	if err := p.Builder.From(blogsTable).
		Select("domain").
		Where(goqu.I("blog_id").Eq(blogID)).
		ScanValsContext(ctx, &domains); err != nil {
		return nil, fmt.Errorf("could not fetch blog domains from pg: %w", err)
	}

	return domains, nil
}

// MappedDomains returns the active mapped domains of the blog ordered by id,
// so that the first mapping created comes first.
func (p *PgSQL) MappedDomains(ctx context.Context, blogID int64) ([]string, error) {
	var domains []string
	if err := p.Builder.From(domainMappingTable).
		Select("domain").
		Where(
			goqu.I("blog_id").Eq(blogID),
			goqu.I("active").IsTrue(),
		).
		Order(goqu.I("id").Asc()).
		ScanValsContext(ctx, &domains); err != nil {
		return nil, fmt.Errorf("could not fetch mapped domains from pg: %w", err)
	}

	return domains, nil
}
