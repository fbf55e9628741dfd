package domain_test

import (
	"purger/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamsKeepsInsertionOrder(t *testing.T) {
	var p domain.Params
	p.Set("page", "2")
	p.Set("category", "news")
	p.Set("author", "7")
	p.Set("page", "3")

	require.Equal(t, 3, p.Len())
	require.Equal(t, []string{"page", "category", "author"}, p.Keys())

	v, ok := p.Get("page")
	require.True(t, ok)
	require.Equal(t, "3", v)

	var got []string
	p.Each(func(k, v string) { got = append(got, k+"="+v) })
	require.Equal(t, []string{"page=3", "category=news", "author=7"}, got)
}

func TestNewParams(t *testing.T) {
	p := domain.NewParams("b", "1", "a", "2", "dangling")
	require.Equal(t, []string{"b", "a"}, p.Keys())

	var zero domain.Params
	require.Zero(t, zero.Len())
	_, ok := zero.Get("missing")
	require.False(t, ok)
}

func TestPostIsPublished(t *testing.T) {
	require.True(t, domain.Post{Status: domain.PostStatusPublish}.IsPublished())
	require.False(t, domain.Post{Status: domain.PostStatusDraft}.IsPublished())
}
