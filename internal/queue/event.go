// Package queue defines message payloads exchanged over the message broker.
package queue

// Email event kinds.
const (
	KindMovieAdded   = "movie_added"
	KindMovieWatched = "movie_watched"
	KindDigest       = "watchlist_digest"
)

// EmailEvent is published whenever something email-worthy happens for a
// user with notifications enabled. It carries enough information for the
// mailer to compose the message without querying the primary database.
type EmailEvent struct {
	Kind         string `json:"kind"`
	UserID       int64  `json:"user_id"`
	Email        string `json:"email"`
	MovieTitle   string `json:"movie_title,omitempty"`
	Genre        string `json:"genre,omitempty"`
	ToWatchCount int64  `json:"to_watch_count,omitempty"`
	OccurredAt   string `json:"occurred_at"`
}
