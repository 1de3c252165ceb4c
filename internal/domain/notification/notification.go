// Package notification holds the domain model for per-user notifications.
package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a denormalized summary of a comment event, owned by the
// recipient user. Only its owner may flip the read flag or delete it.
type Notification struct {
	ID              uuid.UUID
	IsRead          bool
	CreatedAt       time.Time
	CommentUsername string
	CommentText     string
	MovieID         uuid.UUID
	MovieTitle      string
}

// NewNotification builds an unread notification for a comment on a movie.
func NewNotification(commentUsername, commentText string, movieID uuid.UUID, movieTitle string) Notification {
	return Notification{
		ID:              uuid.New(),
		CreatedAt:       time.Now().UTC(),
		CommentUsername: commentUsername,
		CommentText:     commentText,
		MovieID:         movieID,
		MovieTitle:      movieTitle,
	}
}
