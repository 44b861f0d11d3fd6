package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type WatchlistsService struct{ c *Client }

// GetAll fetches every watchlist group (category).
func (s *WatchlistsService) GetAll(ctx context.Context) ([]WatchlistGroup, error) {
	var out []WatchlistGroup
	err := s.c.do(ctx, http.MethodGet, "/api/watchlists/get-all", nil, nil, &out)
	return out, err
}

// MoviesByGroup fetches the user's movies that belong to the group.
func (s *WatchlistsService) MoviesByGroup(ctx context.Context, userID, groupID int64) ([]Movie, error) {
	var out []Movie
	err := s.c.do(ctx, http.MethodGet,
		fmt.Sprintf("/api/watchlists/movies-by-group/%d/%d", userID, groupID), nil, nil, &out)
	return out, err
}

// Add creates a new group. A duplicate name comes back as an *APIError
// with status 409 carrying the backend message.
func (s *WatchlistsService) Add(ctx context.Context, name string) (WatchlistGroup, error) {
	q := url.Values{}
	q.Set("name", name)
	var out WatchlistGroup
	err := s.c.do(ctx, http.MethodPost, "/api/watchlists/add-directly", q, nil, &out)
	return out, err
}

// Rename changes a group's name.
func (s *WatchlistsService) Rename(ctx context.Context, groupID int64, newName string) error {
	q := url.Values{}
	q.Set("newName", newName)
	return s.c.do(ctx, http.MethodPut,
		fmt.Sprintf("/api/watchlists/edit/%d", groupID), q, nil, nil)
}

// Delete removes a group. With deleteMovies the member movies are
// deleted too; otherwise they only lose the membership.
func (s *WatchlistsService) Delete(ctx context.Context, groupID int64, deleteMovies bool) error {
	q := url.Values{}
	q.Set("deleteMovies", strconv.FormatBool(deleteMovies))
	return s.c.do(ctx, http.MethodDelete,
		fmt.Sprintf("/api/watchlists/delete/%d", groupID), q, nil, nil)
}
