package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mertozler/movie-watchlist/internal/model"
)

type WatchlistRepo struct{ DB *sql.DB }

func NewWatchlistRepo(db *sql.DB) *WatchlistRepo { return &WatchlistRepo{DB: db} }

// List returns all watchlist groups ordered by name.
func (r *WatchlistRepo) List(ctx context.Context) ([]model.WatchlistGroup, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id,name FROM watchlist_groups ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.WatchlistGroup{}
	for rows.Next() {
		var g model.WatchlistGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Create inserts a new group. Group names are unique; duplicates are
// rejected with ErrDuplicate so the frontend can tell the user the name
// is taken.
func (r *WatchlistRepo) Create(ctx context.Context, name string) (model.WatchlistGroup, error) {
	name = strings.TrimSpace(name)
	res, err := r.DB.ExecContext(ctx, "INSERT INTO watchlist_groups (name) VALUES (?)", name)
	if err != nil {
		if isDuplicateKey(err) {
			return model.WatchlistGroup{}, ErrDuplicate
		}
		return model.WatchlistGroup{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.WatchlistGroup{}, err
	}
	return model.WatchlistGroup{ID: id, Name: name}, nil
}

// Rename changes a group's name. ErrNotFound when the id is unknown,
// ErrDuplicate when the new name is taken.
func (r *WatchlistRepo) Rename(ctx context.Context, id int64, newName string) error {
	newName = strings.TrimSpace(newName)
	res, err := r.DB.ExecContext(ctx, "UPDATE watchlist_groups SET name=? WHERE id=?", newName, id)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the id is unknown or the name did not change; only the
		// former is an error.
		var exists int64
		if err := r.DB.QueryRowContext(ctx,
			"SELECT id FROM watchlist_groups WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a group. With deleteMovies the member movies are deleted
// too; otherwise only the memberships go away and the movies survive.
func (r *WatchlistRepo) Delete(ctx context.Context, id int64, deleteMovies bool) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM watchlist_groups WHERE id=? FOR UPDATE", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if deleteMovies {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM movies WHERE id IN (SELECT movie_id FROM movie_watchlist_groups WHERE group_id=?)",
			id); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM movie_watchlist_groups WHERE group_id=?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM watchlist_groups WHERE id=?", id); err != nil {
		return err
	}
	return tx.Commit()
}
