package client

import (
	"context"
	"fmt"
	"net/http"
)

type UsersService struct{ c *Client }

type loginRequest struct {
	Email string `json:"email"`
}

type notificationStatus struct {
	EmailEnabled bool `json:"emailEnabled"`
}

// Login signs the email in, creating the user on first sight, and
// returns the numeric user id that scopes all other calls.
func (s *UsersService) Login(ctx context.Context, email string) (int64, error) {
	var id int64
	err := s.c.do(ctx, http.MethodPost, "/api/users/login", nil, loginRequest{Email: email}, &id)
	return id, err
}

// NotificationStatus reports whether email notifications are on.
func (s *UsersService) NotificationStatus(ctx context.Context, userID int64) (bool, error) {
	var out notificationStatus
	err := s.c.do(ctx, http.MethodGet,
		fmt.Sprintf("/api/users/notification-status/%d", userID), nil, nil, &out)
	return out.EmailEnabled, err
}

// ToggleNotifications flips the flag and returns its new value.
func (s *UsersService) ToggleNotifications(ctx context.Context, userID int64) (bool, error) {
	var out notificationStatus
	err := s.c.do(ctx, http.MethodPut,
		fmt.Sprintf("/api/users/change-notification-status/%d", userID), nil, nil, &out)
	return out.EmailEnabled, err
}
