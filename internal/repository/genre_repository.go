package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mertozler/movie-watchlist/internal/model"
)

type GenreRepo struct{ DB *sql.DB }

func NewGenreRepo(db *sql.DB) *GenreRepo { return &GenreRepo{DB: db} }

// List returns the full genre taxonomy ordered by name.
func (r *GenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id,name FROM genres ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Genre{}
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.GenreID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// GetOrCreate returns the genre with the given name, inserting it when it
// does not exist yet. Genre creation is idempotent so that movie add/edit
// can reference genres by name without a prior lookup.
func (r *GenreRepo) GetOrCreate(ctx context.Context, name string) (model.Genre, error) {
	name = strings.TrimSpace(name)

	var g model.Genre
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name FROM genres WHERE name=? LIMIT 1", name).
		Scan(&g.GenreID, &g.Name)
	if err == nil {
		return g, nil
	}
	if err != sql.ErrNoRows {
		return model.Genre{}, err
	}

	res, err := r.DB.ExecContext(ctx, "INSERT INTO genres (name) VALUES (?)", name)
	if err != nil {
		if isDuplicateKey(err) {
			// Concurrent insert of the same name; read it back.
			err = r.DB.QueryRowContext(ctx,
				"SELECT id,name FROM genres WHERE name=? LIMIT 1", name).
				Scan(&g.GenreID, &g.Name)
			return g, err
		}
		return model.Genre{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Genre{}, err
	}
	return model.Genre{GenreID: id, Name: name}, nil
}
