package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mertozler/movie-watchlist/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// GetOrCreateByEmail looks up a user by normalized email, inserting a new
// row on first sight. Login is email-only, so this is the whole signup.
func (r *UserRepo) GetOrCreateByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := r.getByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if err != sql.ErrNoRows {
		return model.User{}, err
	}

	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, email_enabled) VALUES (?, 1)", email)
	if err != nil {
		// Lost a race with a concurrent login for the same email.
		if isDuplicateKey(err) {
			return r.getByEmail(ctx, email)
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return model.User{UserID: id, Email: email, EmailEnabled: true}, nil
}

// GetByID fetches a user by id. Returns ErrNotFound when no row matches.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,email_enabled,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.UserID, &u.Email, &u.EmailEnabled, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// ToggleNotification flips the email_enabled flag and returns the new value.
func (r *UserRepo) ToggleNotification(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET email_enabled = NOT email_enabled WHERE id=?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, ErrNotFound
	}
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return u.EmailEnabled, nil
}

// ListEmailEnabled returns every user that has notifications switched on.
// Used by the reminder scheduler to build digest events.
func (r *UserRepo) ListEmailEnabled(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,email,email_enabled,created_at,updated_at FROM users WHERE email_enabled=1")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Email, &u.EmailEnabled, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepo) getByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,email_enabled,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.UserID, &u.Email, &u.EmailEnabled, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
