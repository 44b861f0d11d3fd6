package handler

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/mertozler/movie-watchlist/internal/model"
)

// AddMovieDTO is the body of movie add and edit requests. Genre and
// groups are referenced by name; the backend creates missing ones.
type AddMovieDTO struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	WatchlistOrder      string   `json:"watchlistOrder"`
	GenreName           string   `json:"genreName"`
	WatchlistGroupNames []string `json:"watchlistGroupNames"`
}

// Normalize trims the text fields and defaults the status of a new movie
// to "To Watch" when the client omits it.
func (d *AddMovieDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Status = strings.TrimSpace(d.Status)
	d.WatchlistOrder = strings.TrimSpace(d.WatchlistOrder)
	d.GenreName = strings.TrimSpace(d.GenreName)
	if d.Status == "" {
		d.Status = model.StatusToWatch
	}
}

// Validate checks the required fields and enum membership. Fields are
// checked one at a time so the returned error is a single bare message
// the frontend shows inline (e.g. "Description is required").
func (d AddMovieDTO) Validate() error {
	if err := validation.Validate(d.Title,
		validation.Required.Error("Title is required")); err != nil {
		return err
	}
	if err := validation.Validate(d.Description,
		validation.Required.Error("Description is required")); err != nil {
		return err
	}
	if err := validation.Validate(d.GenreName,
		validation.Required.Error("Genre is required")); err != nil {
		return err
	}
	if err := validation.Validate(d.WatchlistOrder,
		validation.Required.Error("Watchlist order is required")); err != nil {
		return err
	}
	if err := validation.Validate(d.Status,
		validation.In(model.StatusToWatch, model.StatusWatched).
			Error("Status must be one of: To Watch, Watched")); err != nil {
		return err
	}
	if err := validation.Validate(d.WatchlistOrder,
		validation.In(model.OrderNextUp, model.OrderWhenFree, model.OrderSomeday).
			Error("Watchlist order must be one of: Next Up, When I have time, Someday")); err != nil {
		return err
	}
	return nil
}

// LoginDTO is the body of the login request.
type LoginDTO struct {
	Email string `json:"email"`
}

func (d *LoginDTO) Normalize() {
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
}

func (d LoginDTO) Validate() error {
	if err := validation.Validate(d.Email,
		validation.Required.Error("Email is required")); err != nil {
		return err
	}
	if err := validation.Validate(d.Email,
		is.EmailFormat.Error("Email is not valid")); err != nil {
		return err
	}
	return nil
}
