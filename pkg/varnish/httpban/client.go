// Package httpban provides a varnish.Client that posts ban expressions to the
// site's own base URL. The proxy intercepts these requests and interprets the
// form body as a ban directive instead of forwarding it to the origin.
package httpban

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"purger/pkg/serrors"
	"purger/pkg/varnish"
	"strings"
)

const (
	// RegexField carries the ban expression.
	RegexField = "regex"
	// SecretField carries the shared secret.
	SecretField = "secret"

	maxErrorBody = 512
)

// Client posts ban expressions to a fixed endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	secret     string
}

// Ensure Client conforms to the varnish.Client interface at compile time.
var _ varnish.Client = (*Client)(nil)

// ValidateSecret rejects an empty secret and the placeholder secret.
func ValidateSecret(secret string) error {
	switch strings.TrimSpace(secret) {
	case "":
		return serrors.With(serrors.ErrInvalidConfig, "purge secret is empty")
	case varnish.PlaceholderSecret:
		return serrors.With(serrors.ErrInvalidConfig, "purge secret is still the placeholder value")
	}

	return nil
}

// New constructs a Client posting to endpoint (the site's home URL).
func New(httpClient *http.Client, endpoint, secret string) (*Client, error) {
	if err := ValidateSecret(secret); err != nil {
		return nil, err
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return nil, serrors.Wrap(serrors.ErrInvalidConfig, err, "invalid purge endpoint %q", endpoint)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		secret:     secret,
	}, nil
}

// Ban submits expr together with the shared secret.
func (c *Client) Ban(ctx context.Context, expr string) error {
	form := url.Values{}
	form.Set(RegexField, expr)
	form.Set(SecretField, c.secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return serrors.Wrap(serrors.ErrTimeout, err, "ban request timed out")
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send ban request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return serrors.With(serrors.ErrUnavailable,
			"ban rejected with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
