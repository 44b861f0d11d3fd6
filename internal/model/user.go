package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Users are created implicitly the first time an email logs in;
// there is no password.  EmailEnabled controls whether notification
// events are published for this user.
//
// Fields:
//
//	UserID       – primary key identifier of the user.
//	Email        – unique, lower-cased email address.
//	EmailEnabled – whether email notifications are on.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	UserID       int64     `json:"userId"`       // users.id
	Email        string    `json:"email"`        // users.email
	EmailEnabled bool      `json:"emailEnabled"` // users.email_enabled
	CreatedAt    time.Time `json:"-"`            // users.created_at
	UpdatedAt    time.Time `json:"-"`            // users.updated_at
}
