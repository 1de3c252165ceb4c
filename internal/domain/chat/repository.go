package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
)

// Repository defines the persistence operations for chat messages.
//
// Business outcomes come back as result statuses; a non-nil error means an
// infrastructure fault and the operation may not have run at all.
type Repository interface {
	// Create persists a new message under the given author and returns the
	// stored message with the author's display name resolved.
	// Status is NotFound when the author does not exist.
	Create(ctx context.Context, authorID, content string) (result.Result[Message], error)

	// GetRecent returns the most recent messages, newest first, up to the
	// fixed RecentWindow. An empty slice when none exist.
	GetRecent(ctx context.Context) ([]Message, error)

	// Update replaces the content of a message owned by authorID and flags
	// it as edited. Status is NotFound when the message does not exist or
	// belongs to someone else.
	Update(ctx context.Context, id uuid.UUID, authorID, content string) (result.Result[Message], error)

	// Delete removes a message owned by authorID.
	// Status is NotFound when the message does not exist or belongs to
	// someone else.
	Delete(ctx context.Context, id uuid.UUID, authorID string) (result.Status, error)
}
