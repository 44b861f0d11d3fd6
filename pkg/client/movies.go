package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type MoviesService struct{ c *Client }

// AddMovieRequest mirrors the body of movie add and edit calls.
type AddMovieRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	WatchlistOrder      string   `json:"watchlistOrder"`
	GenreName           string   `json:"genreName"`
	WatchlistGroupNames []string `json:"watchlistGroupNames"`
}

// MovieFilter narrows the filtered fetch. Zero fields are omitted from
// the query string entirely rather than sent as empty values.
type MovieFilter struct {
	Genre          string
	Status         string
	WatchlistOrder string
	Sort           string
	CategoryID     int64
}

func (f MovieFilter) values() url.Values {
	q := url.Values{}
	if f.Genre != "" {
		q.Set("genre", f.Genre)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.WatchlistOrder != "" {
		q.Set("watchlistOrder", f.WatchlistOrder)
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	if f.CategoryID != 0 {
		q.Set("categoryId", strconv.FormatInt(f.CategoryID, 10))
	}
	return q
}

// GetAll fetches every movie of the user, alphabetical by title.
func (s *MoviesService) GetAll(ctx context.Context, userID int64) ([]Movie, error) {
	var out []Movie
	err := s.c.do(ctx, http.MethodGet,
		fmt.Sprintf("/api/movies/get-all/user/%d", userID), nil, nil, &out)
	return out, err
}

// Filter fetches the user's movies narrowed by the given filter.
func (s *MoviesService) Filter(ctx context.Context, userID int64, f MovieFilter) ([]Movie, error) {
	var out []Movie
	err := s.c.do(ctx, http.MethodGet,
		fmt.Sprintf("/api/movies/filter/user/%d", userID), f.values(), nil, &out)
	return out, err
}

// Add creates a movie for the user and returns the stored record.
func (s *MoviesService) Add(ctx context.Context, userID int64, req AddMovieRequest) (Movie, error) {
	var out Movie
	err := s.c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/movies/add/user/%d", userID), nil, req, &out)
	return out, err
}

// Edit rewrites a movie's fields and group memberships.
func (s *MoviesService) Edit(ctx context.Context, movieID int64, req AddMovieRequest) (Movie, error) {
	var out Movie
	err := s.c.do(ctx, http.MethodPut,
		fmt.Sprintf("/api/movies/edit/%d", movieID), nil, req, &out)
	return out, err
}

// Delete removes a movie.
func (s *MoviesService) Delete(ctx context.Context, movieID int64) error {
	return s.c.do(ctx, http.MethodDelete,
		fmt.Sprintf("/api/movies/delete/%d", movieID), nil, nil, nil)
}

// MarkWatched transitions the movie to "Watched" and returns the backend
// confirmation message. A movie that is already watched is rejected
// locally with ErrAlreadyWatched; no request is issued.
func (s *MoviesService) MarkWatched(ctx context.Context, movie Movie) (string, error) {
	if movie.Status == StatusWatched {
		return "", ErrAlreadyWatched
	}
	var msg string
	err := s.c.do(ctx, http.MethodPut,
		fmt.Sprintf("/api/movies/mark-watched/%d/%d", movie.User.UserID, movie.MovieID),
		nil, nil, &msg)
	return msg, err
}
