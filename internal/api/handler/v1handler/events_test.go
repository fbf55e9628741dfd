package v1handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"purger/internal/api/handler/v1handler"
	"purger/internal/events"
	"purger/pkg/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	p, err := v1handler.DecodePayload([]byte(`{
		"post_id": 42,
		"term_id": 7,
		"taxonomy": "category",
		"url": "https://example.com/a/",
		"action": "load_more",
		"post_type": "product",
		"params": {"page": 2, "cat": "news", "sticky": true},
		"unknown": {"nested": [1, 2]}
	}`))
	require.NoError(t, err)

	require.Equal(t, domain.PostID(42), p.PostID)
	require.Equal(t, domain.TermID(7), p.TermID)
	require.Equal(t, domain.Taxonomy("category"), p.Taxonomy)
	require.Equal(t, "https://example.com/a/", p.URL)
	require.Equal(t, "load_more", p.Action)
	require.Equal(t, domain.PostType("product"), p.PostType)
	require.Equal(t, []string{"page", "cat", "sticky"}, p.Params.Keys())
	v, _ := p.Params.Get("page")
	require.Equal(t, "2", v)
	v, _ = p.Params.Get("sticky")
	require.Equal(t, "true", v)
}

func TestDecodePayload_Empty(t *testing.T) {
	for _, body := range []string{"", "  ", "{}", `{"params": null}`} {
		p, err := v1handler.DecodePayload([]byte(body))
		require.NoError(t, err, body)
		require.Zero(t, p.PostID)
		require.Zero(t, p.Params.Len())
	}
}

func TestDecodePayload_Invalid(t *testing.T) {
	for _, body := range []string{
		`[]`,
		`{"post_id": "x"}`,
		`{"url": 1}`,
		`{"params": {"a": {"b": 1}}}`,
		`{"params": [1]}`,
		`{"post_id": 1`,
	} {
		_, err := v1handler.DecodePayload([]byte(body))
		require.Error(t, err, body)
	}
}

func newEventServer(t *testing.T) (*http.ServeMux, *[]events.Payload) {
	t.Helper()

	var got []events.Payload
	bus := events.NewBus()
	bus.Subscribe(events.FlushPost, events.HandlerFunc(func(_ context.Context, p events.Payload) {
		got = append(got, p)
	}))

	h := v1handler.New(v1handler.Deps{Bus: bus})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/events/{name}", h.PublishEvent)

	return mux, &got
}

func TestPublishEvent(t *testing.T) {
	mux, got := newEventServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/events/varnish_flush_post", strings.NewReader(`{"post_id": 42}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"event":"varnish_flush_post","handlers":1}`, rec.Body.String())
	require.Len(t, *got, 1)
	require.Equal(t, domain.PostID(42), (*got)[0].PostID)
}

func TestPublishEvent_UnknownEvent(t *testing.T) {
	mux, got := newEventServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/events/nope", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"unknown event \"nope\""}`, rec.Body.String())
	require.Empty(t, *got)
}

func TestPublishEvent_MalformedBody(t *testing.T) {
	mux, got := newEventServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/events/varnish_flush_post", strings.NewReader(`{"post_id":`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`)
	require.Empty(t, *got)
}

func TestPublishEvent_TooLarge(t *testing.T) {
	mux, _ := newEventServer(t)

	body := `{"url":"` + strings.Repeat("a", v1handler.MaxEventBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/events/varnish_flush_post", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
