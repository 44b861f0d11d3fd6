package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestLoginDecodesBareID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/login", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"alice@example.com"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, "42")
	})

	id, err := c.Users.Login(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestGetAllDecodesWirePayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies/get-all/user/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{
			"movieId": 7,
			"title": "Dune",
			"description": "Spice and sand",
			"status": "To Watch",
			"watchlistOrder": "Next Up",
			"genre": {"genreId": 2, "name": "Sci-Fi"},
			"user": {"userId": 42, "email": "user@example.com", "emailEnabled": true},
			"watchlistGroupNames": ["Favorites"]
		}]`)
	})

	movies, err := c.Movies.GetAll(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, Movie{
		MovieID:             7,
		Title:               "Dune",
		Description:         "Spice and sand",
		Status:              StatusToWatch,
		WatchlistOrder:      OrderNextUp,
		Genre:               Genre{GenreID: 2, Name: "Sci-Fi"},
		User:                User{UserID: 42, Email: "user@example.com", EmailEnabled: true},
		WatchlistGroupNames: []string{"Favorites"},
	}, movies[0])
}

func TestFilterOmitsZeroFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Sci-Fi", q.Get("genre"))
		assert.False(t, q.Has("status"))
		assert.False(t, q.Has("watchlistOrder"))
		assert.False(t, q.Has("sort"))
		assert.False(t, q.Has("categoryId"))
		io.WriteString(w, "[]")
	})

	_, err := c.Movies.Filter(context.Background(), 42, MovieFilter{Genre: "Sci-Fi"})
	require.NoError(t, err)
}

func TestMarkWatchedGuardSkipsRequest(t *testing.T) {
	requests := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	watched := Movie{MovieID: 1, Status: StatusWatched}
	_, err := c.Movies.MarkWatched(context.Background(), watched)
	assert.ErrorIs(t, err, ErrAlreadyWatched)
	assert.Zero(t, requests)
}

func TestMarkWatchedReturnsConfirmation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies/mark-watched/42/7", r.URL.Path)
		io.WriteString(w, `"Movie marked as watched"`)
	})

	movie := Movie{
		MovieID: 7,
		Status:  StatusToWatch,
		User:    User{UserID: 42},
	}
	msg, err := c.Movies.MarkWatched(context.Background(), movie)
	require.NoError(t, err)
	assert.Equal(t, "Movie marked as watched", msg)
}

func TestDuplicateCategoryCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"message":"A category with this name already exists"}`)
	})

	_, err := c.Watchlists.Add(context.Background(), "Favorites")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "A category with this name already exists", apiErr.Message)
	assert.True(t, apiErr.IsBusiness())
}

func TestCreateGenrePostsPlainText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "Horror", string(body))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"genreId":7,"name":"Horror"}`)
	})

	genre, err := c.Genres.Create(context.Background(), "Horror")
	require.NoError(t, err)
	assert.Equal(t, Genre{GenreID: 7, Name: "Horror"}, genre)
}

func TestSuggestEscapesTitle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/genres/suggest/2001:%20A%20Space%20Odyssey", r.URL.EscapedPath())
		io.WriteString(w, `"Sci-Fi"`)
	})

	got, err := c.Genres.Suggest(context.Background(), "2001: A Space Odyssey")
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi", got)
}
