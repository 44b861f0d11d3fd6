// Package scheduler runs the periodic watchlist reminder job: every
// opted-in user gets a digest event with their current "To Watch" count,
// which the notification consumer turns into an email.
package scheduler

import (
	"context"
	"time"

	"github.com/jasonlvhit/gocron"
	"go.uber.org/zap"

	"github.com/mertozler/movie-watchlist/internal/model"
	"github.com/mertozler/movie-watchlist/internal/queue"
	queue_publisher "github.com/mertozler/movie-watchlist/internal/service"
)

// Users yields the recipients of the digest.
type Users interface {
	ListEmailEnabled(ctx context.Context) ([]model.User, error)
}

// Movies counts what is left on a user's watchlist.
type Movies interface {
	CountToWatch(ctx context.Context, userID int64) (int64, error)
}

type Reminder struct {
	users  Users
	movies Movies
	logger *zap.Logger
}

func NewReminder(users Users, movies Movies, logger *zap.Logger) *Reminder {
	return &Reminder{users: users, movies: movies, logger: logger}
}

// Start schedules the digest every everyHours hours and blocks serving
// the schedule. Call it from a goroutine; everyHours <= 0 disables the
// job entirely.
func (r *Reminder) Start(everyHours int) {
	if everyHours <= 0 {
		return
	}
	if err := gocron.Every(uint64(everyHours)).Hours().Do(r.Run); err != nil {
		r.logger.Error("reminder: schedule failed", zap.Error(err))
		return
	}
	<-gocron.Start()
}

// Run publishes one digest event per opted-in user. Exported so an
// operator endpoint or test can trigger a digest outside the schedule.
func (r *Reminder) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := r.users.ListEmailEnabled(ctx)
	if err != nil {
		r.logger.Error("reminder: list users failed", zap.Error(err))
		return
	}
	for _, u := range users {
		count, err := r.movies.CountToWatch(ctx, u.UserID)
		if err != nil {
			r.logger.Warn("reminder: count failed",
				zap.Int64("user_id", u.UserID), zap.Error(err))
			continue
		}
		if count == 0 {
			continue // nothing to remind about
		}
		_ = queue_publisher.PublishEmail(ctx, queue.EmailEvent{
			Kind:         queue.KindDigest,
			UserID:       u.UserID,
			Email:        u.Email,
			ToWatchCount: count,
		})
	}
	r.logger.Info("reminder: digest published", zap.Int("users", len(users)))
}
