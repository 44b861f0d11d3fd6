package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mertozler/movie-watchlist/internal/model"
)

// MovieInput carries the fields of an add or edit request after
// validation. Genre and groups are referenced by name and resolved
// (create-or-get) inside the repository transaction.
type MovieInput struct {
	Title          string
	Description    string
	Status         string
	WatchlistOrder string
	GenreName      string
	GroupNames     []string
}

type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

// movieSelect joins a movie row with its genre, owner and group names.
// Group names come back as a single comma separated string per movie.
const movieSelect = `SELECT
		m.id, m.title, m.description, m.status, m.watchlist_order, m.created_at, m.updated_at,
		g.id, g.name,
		u.id, u.email, u.email_enabled,
		COALESCE(GROUP_CONCAT(DISTINCT wg.name ORDER BY wg.name SEPARATOR ','), '')
	FROM movies m
	JOIN genres g ON g.id = m.genre_id
	JOIN users  u ON u.id = m.user_id
	LEFT JOIN movie_watchlist_groups mg ON mg.movie_id = m.id
	LEFT JOIN watchlist_groups wg ON wg.id = mg.group_id`

const movieGroupBy = " GROUP BY m.id, m.title, m.description, m.status, m.watchlist_order, m.created_at, m.updated_at, g.id, g.name, u.id, u.email, u.email_enabled"

func scanMovie(rows interface{ Scan(...any) error }) (model.Movie, error) {
	var m model.Movie
	var groups string
	err := rows.Scan(
		&m.MovieID, &m.Title, &m.Description, &m.Status, &m.WatchlistOrder, &m.CreatedAt, &m.UpdatedAt,
		&m.Genre.GenreID, &m.Genre.Name,
		&m.User.UserID, &m.User.Email, &m.User.EmailEnabled,
		&groups)
	if err != nil {
		return model.Movie{}, err
	}
	m.WatchlistGroupNames = []string{}
	if groups != "" {
		m.WatchlistGroupNames = strings.Split(groups, ",")
	}
	return m, nil
}

func (r *MovieRepo) queryMovies(ctx context.Context, where string, orderBy string, args ...any) ([]model.Movie, error) {
	q := movieSelect + " WHERE " + where + movieGroupBy + " ORDER BY " + orderBy
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListByUser returns every movie owned by the user, alphabetical by title.
func (r *MovieRepo) ListByUser(ctx context.Context, userID int64) ([]model.Movie, error) {
	return r.queryMovies(ctx, "m.user_id = ?", "m.title ASC", userID)
}

// Filter returns the user's movies narrowed by the given filter.
func (r *MovieRepo) Filter(ctx context.Context, userID int64, f MovieFilter) ([]model.Movie, error) {
	where, args := f.buildWhere(userID)
	return r.queryMovies(ctx, where, f.orderBy(), args...)
}

// ListByGroup returns the user's movies that belong to the given group.
func (r *MovieRepo) ListByGroup(ctx context.Context, userID, groupID int64) ([]model.Movie, error) {
	return r.queryMovies(ctx,
		"m.user_id = ? AND m.id IN (SELECT movie_id FROM movie_watchlist_groups WHERE group_id = ?)",
		"m.title ASC", userID, groupID)
}

// GetByID fetches a single movie with its genre, owner and group names.
func (r *MovieRepo) GetByID(ctx context.Context, movieID int64) (model.Movie, error) {
	q := movieSelect + " WHERE m.id = ?" + movieGroupBy
	m, err := scanMovie(r.DB.QueryRowContext(ctx, q, movieID))
	if err == sql.ErrNoRows {
		return model.Movie{}, ErrNotFound
	}
	return m, err
}

// Create inserts a movie for the user, resolving genre and groups by name
// inside a single transaction, and returns the stored movie.
func (r *MovieRepo) Create(ctx context.Context, userID int64, in MovieInput) (model.Movie, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Movie{}, err
	}
	defer tx.Rollback()

	genreID, err := ensureGenre(ctx, tx, in.GenreName)
	if err != nil {
		return model.Movie{}, err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO movies (user_id, genre_id, title, description, status, watchlist_order) VALUES (?,?,?,?,?,?)",
		userID, genreID, in.Title, in.Description, in.Status, in.WatchlistOrder)
	if err != nil {
		return model.Movie{}, err
	}
	movieID, err := res.LastInsertId()
	if err != nil {
		return model.Movie{}, err
	}

	if err := replaceMemberships(ctx, tx, movieID, in.GroupNames); err != nil {
		return model.Movie{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Movie{}, err
	}
	return r.GetByID(ctx, movieID)
}

// Update rewrites the editable fields of a movie and replaces its group
// memberships wholesale. Returns ErrNotFound when the movie id is unknown.
func (r *MovieRepo) Update(ctx context.Context, movieID int64, in MovieInput) (model.Movie, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Movie{}, err
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM movies WHERE id=? FOR UPDATE", movieID).Scan(&exists)
	if err == sql.ErrNoRows {
		return model.Movie{}, ErrNotFound
	}
	if err != nil {
		return model.Movie{}, err
	}

	genreID, err := ensureGenre(ctx, tx, in.GenreName)
	if err != nil {
		return model.Movie{}, err
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE movies SET title=?, description=?, status=?, watchlist_order=?, genre_id=? WHERE id=?",
		in.Title, in.Description, in.Status, in.WatchlistOrder, genreID, movieID)
	if err != nil {
		return model.Movie{}, err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM movie_watchlist_groups WHERE movie_id=?", movieID); err != nil {
		return model.Movie{}, err
	}
	if err := replaceMemberships(ctx, tx, movieID, in.GroupNames); err != nil {
		return model.Movie{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Movie{}, err
	}
	return r.GetByID(ctx, movieID)
}

// Delete removes a movie; memberships are dropped by the foreign key.
func (r *MovieRepo) Delete(ctx context.Context, movieID int64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM movies WHERE id=?", movieID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkWatched transitions a movie owned by the user to "Watched".
// The current status is read under lock so a double mark is rejected
// with ErrAlreadyWatched regardless of request interleaving.
func (r *MovieRepo) MarkWatched(ctx context.Context, userID, movieID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx,
		"SELECT status FROM movies WHERE id=? AND user_id=? FOR UPDATE",
		movieID, userID).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if status == model.StatusWatched {
		return ErrAlreadyWatched
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE movies SET status=? WHERE id=?", model.StatusWatched, movieID); err != nil {
		return err
	}
	return tx.Commit()
}

// CountToWatch returns how many movies the user still has in "To Watch".
func (r *MovieRepo) CountToWatch(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM movies WHERE user_id=? AND status=?",
		userID, model.StatusToWatch).Scan(&n)
	return n, err
}

// ensureGenre resolves a genre name to its id inside the transaction,
// inserting the row when missing. LAST_INSERT_ID(id) makes the insert
// return the existing id on a duplicate name.
func ensureGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO genres (name) VALUES (?) ON DUPLICATE KEY UPDATE id=LAST_INSERT_ID(id)",
		strings.TrimSpace(name))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// replaceMemberships inserts one membership row per named group, creating
// groups that do not exist yet. Empty and duplicate names are skipped.
func replaceMemberships(ctx context.Context, tx *sql.Tx, movieID int64, names []string) error {
	seen := map[string]bool{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		res, err := tx.ExecContext(ctx,
			"INSERT INTO watchlist_groups (name) VALUES (?) ON DUPLICATE KEY UPDATE id=LAST_INSERT_ID(id)",
			name)
		if err != nil {
			return err
		}
		groupID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO movie_watchlist_groups (movie_id, group_id) VALUES (?,?)",
			movieID, groupID); err != nil {
			return err
		}
	}
	return nil
}
