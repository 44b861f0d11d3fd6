package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the backend. Message holds the
// human-readable text from the response body so callers can surface
// business errors (400/409) to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsBusiness reports whether the error is an expected business rejection
// whose message is meant for the user, as opposed to an unexpected
// failure that should show a generic "try again".
func (e *APIError) IsBusiness() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusConflict
}

// ErrAlreadyWatched is returned by MoviesService.MarkWatched before any
// request is made when the movie is already in the "Watched" status.
var ErrAlreadyWatched = errors.New("movie is already marked as watched")

func apiErrorFrom(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}
