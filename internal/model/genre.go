package model

// Genre is a row in the `genres` table.  Genres form a shared taxonomy
// referenced by movies; they are created by name on demand and never owned
// by a single user.
type Genre struct {
	GenreID int64  `json:"genreId"` // genres.id
	Name    string `json:"name"`    // genres.name (unique)
}
