// Package suggest calls the external genre-suggestion backend. The
// upstream is an opaque AI service; this client only extracts the
// suggested genre string from its response.
package suggest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrUnavailable covers every upstream failure: not configured, network
// error, non-200 status or an unusable body. The handler maps it to one
// fixed retry message, so no finer taxonomy is needed.
var ErrUnavailable = errors.New("suggestion backend unavailable")

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New returns a suggestion client. An empty baseURL yields a client whose
// calls always fail with ErrUnavailable, which keeps the wiring in main
// unconditional.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SuggestGenre asks the upstream for a genre fitting the given title.
// The response is searched for the fields the known backends use: a bare
// "suggestion" string or an OpenAI-style choices array.
func (c *Client) SuggestGenre(ctx context.Context, title string) (string, error) {
	if c.baseURL == "" {
		return "", ErrUnavailable
	}

	u := c.baseURL + "/suggest?title=" + url.QueryEscape(title)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrUnavailable
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", ErrUnavailable
	}

	for _, path := range []string{"suggestion", "choices.0.message.content"} {
		if v := gjson.GetBytes(body, path); v.Exists() {
			if s := strings.TrimSpace(v.String()); s != "" {
				return s, nil
			}
		}
	}
	// Some backends answer with a bare JSON string.
	if v := gjson.ParseBytes(body); v.Type == gjson.String {
		if s := strings.TrimSpace(v.String()); s != "" {
			return s, nil
		}
	}
	return "", ErrUnavailable
}
