package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mertozler/movie-watchlist/internal/model"
	"github.com/mertozler/movie-watchlist/internal/repository"
)

type mockWatchlistStore struct{ mock.Mock }

func (m *mockWatchlistStore) List(ctx context.Context) ([]model.WatchlistGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.WatchlistGroup), args.Error(1)
}

func (m *mockWatchlistStore) Create(ctx context.Context, name string) (model.WatchlistGroup, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.WatchlistGroup), args.Error(1)
}

func (m *mockWatchlistStore) Rename(ctx context.Context, id int64, newName string) error {
	args := m.Called(ctx, id, newName)
	return args.Error(0)
}

func (m *mockWatchlistStore) Delete(ctx context.Context, id int64, deleteMovies bool) error {
	args := m.Called(ctx, id, deleteMovies)
	return args.Error(0)
}

type mockGroupMovieLister struct{ mock.Mock }

func (m *mockGroupMovieLister) ListByGroup(ctx context.Context, userID, groupID int64) ([]model.Movie, error) {
	args := m.Called(ctx, userID, groupID)
	return args.Get(0).([]model.Movie), args.Error(1)
}

func newWatchlistHandler(groups WatchlistStore, movies GroupMovieLister) *WatchlistHandler {
	return NewWatchlistHandler(groups, movies, nil, zap.NewNop())
}

func TestListWatchlistGroups(t *testing.T) {
	groups := new(mockWatchlistStore)
	groups.On("List", mock.Anything).
		Return([]model.WatchlistGroup{{ID: 1, Name: "Favorites"}}, nil)

	c, rec := newContext(http.MethodGet, "/", "")

	require.NoError(t, newWatchlistHandler(groups, nil).List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Favorites")
}

func TestAddWatchlistGroupDuplicate(t *testing.T) {
	groups := new(mockWatchlistStore)
	groups.On("Create", mock.Anything, "Favorites").
		Return(model.WatchlistGroup{}, repository.ErrDuplicate)

	c, rec := newContext(http.MethodPost, "/?name=Favorites", "")

	require.NoError(t, newWatchlistHandler(groups, nil).Add(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "A category with this name already exists")
}

func TestAddWatchlistGroupRequiresName(t *testing.T) {
	groups := new(mockWatchlistStore)

	c, rec := newContext(http.MethodPost, "/?name=", "")

	require.NoError(t, newWatchlistHandler(groups, nil).Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	groups.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteWatchlistGroupKeepsMovies(t *testing.T) {
	groups := new(mockWatchlistStore)
	// deleteMovies defaults to false: member movies must survive.
	groups.On("Delete", mock.Anything, int64(3), false).Return(nil).Once()

	c, rec := newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, newWatchlistHandler(groups, nil).Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	groups.AssertExpectations(t)
}

func TestDeleteWatchlistGroupCascades(t *testing.T) {
	groups := new(mockWatchlistStore)
	groups.On("Delete", mock.Anything, int64(3), true).Return(nil).Once()

	c, rec := newContext(http.MethodDelete, "/?deleteMovies=true", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, newWatchlistHandler(groups, nil).Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	groups.AssertExpectations(t)
}

func TestDeleteWatchlistGroupNotFound(t *testing.T) {
	groups := new(mockWatchlistStore)
	groups.On("Delete", mock.Anything, int64(9), false).
		Return(repository.ErrNotFound)

	c, rec := newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, newWatchlistHandler(groups, nil).Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category not found")
}

func TestRenameWatchlistGroup(t *testing.T) {
	groups := new(mockWatchlistStore)
	groups.On("Rename", mock.Anything, int64(3), "Classics").Return(nil)

	c, rec := newContext(http.MethodPut, "/?newName=Classics", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, newWatchlistHandler(groups, nil).Edit(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	groups.AssertExpectations(t)
}

func TestMoviesByGroup(t *testing.T) {
	movies := new(mockGroupMovieLister)
	movies.On("ListByGroup", mock.Anything, int64(42), int64(3)).
		Return([]model.Movie{sampleMovie()}, nil)

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("userId", "groupId")
	c.SetParamValues("42", "3")

	require.NoError(t, newWatchlistHandler(nil, movies).MoviesByGroup(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune")
	movies.AssertExpectations(t)
}
