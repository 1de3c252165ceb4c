package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
)

// Repository defines the persistence operations for notifications.
//
// Every single-item mutation first confirms the notification belongs to the
// requesting user and reports NotFound otherwise. That ownership check is
// the authorization boundary for notifications.
type Repository interface {
	// Create attaches a notification to the recipient user.
	// Status is RelatedEntityDoesNotExists when the recipient is missing.
	Create(ctx context.Context, recipientID string, n Notification) (result.Result[Notification], error)

	// GetPage returns one recency-ordered page of the user's notifications.
	GetPage(ctx context.Context, userID string, page, size int) (result.Page[Notification], error)

	// CountUnread returns how many of the user's notifications are unread.
	CountUnread(ctx context.Context, userID string) (int64, error)

	// MarkRead flips the read flag on one notification owned by userID.
	MarkRead(ctx context.Context, userID string, id uuid.UUID) (result.Status, error)

	// MarkAllRead flips the read flag on every notification owned by userID.
	MarkAllRead(ctx context.Context, userID string) (result.Status, error)

	// Delete removes one notification owned by userID.
	Delete(ctx context.Context, userID string, id uuid.UUID) (result.Status, error)

	// DeleteAll removes every notification owned by userID.
	DeleteAll(ctx context.Context, userID string) (result.Status, error)
}
