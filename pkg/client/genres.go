package client

import (
	"context"
	"net/http"
	"net/url"
)

type GenresService struct{ c *Client }

// List fetches the full genre taxonomy.
func (s *GenresService) List(ctx context.Context) ([]Genre, error) {
	var out []Genre
	err := s.c.do(ctx, http.MethodGet, "/api/genres", nil, nil, &out)
	return out, err
}

// Create adds a genre by name. Creation is idempotent: posting an
// existing name returns that genre.
func (s *GenresService) Create(ctx context.Context, name string) (Genre, error) {
	var out Genre
	err := s.c.do(ctx, http.MethodPost, "/api/genres/create", nil, rawText(name), &out)
	return out, err
}

// Suggest asks the AI backend for a genre fitting the title.
func (s *GenresService) Suggest(ctx context.Context, title string) (string, error) {
	var out string
	err := s.c.do(ctx, http.MethodGet, "/api/genres/suggest/"+url.PathEscape(title), nil, nil, &out)
	return out, err
}
