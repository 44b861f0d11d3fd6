// Package client is a typed Go client for the movie watchlist API. Each
// entity gets its own service; expected business failures (400/409) carry
// the backend's message verbatim as an *APIError so callers can show it
// to the user unchanged.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	httpc   *http.Client

	Movies     *MoviesService
	Genres     *GenresService
	Users      *UsersService
	Watchlists *WatchlistsService
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to adjust the
// timeout or inject a test transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// New returns a client rooted at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Movies = &MoviesService{c: c}
	c.Genres = &GenresService{c: c}
	c.Users = &UsersService{c: c}
	c.Watchlists = &WatchlistsService{c: c}
	return c
}

// do performs one JSON round trip. A nil out discards the response body;
// a non-2xx status is translated into *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rd io.Reader
	contentType := ""
	if body != nil {
		if s, ok := body.(rawText); ok {
			rd = strings.NewReader(string(s))
			contentType = "text/plain"
		} else {
			bs, err := json.Marshal(body)
			if err != nil {
				return err
			}
			rd = bytes.NewReader(bs)
			contentType = "application/json"
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return apiErrorFrom(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// rawText marks a request body that goes out as text/plain instead of JSON.
type rawText string
