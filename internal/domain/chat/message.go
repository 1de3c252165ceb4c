// Package chat holds the domain model and invariants for chat messages.
package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxContentLength is the maximum allowed length for message content.
	MaxContentLength = 512

	// RecentWindow is the fixed number of messages returned by GetRecent.
	RecentWindow = 50
)

var (
	// ErrEmptyContent is returned when the message body is empty.
	ErrEmptyContent = errors.New("message content is required")
	// ErrContentTooLong is returned when the message body exceeds MaxContentLength.
	ErrContentTooLong = errors.New("message content exceeds maximum length")
)

// Message is a single chat message authored by a user.
// Once persisted it changes only through the authenticated edit and delete
// paths; the retention job removes messages older than seven days.
type Message struct {
	ID         uuid.UUID
	AuthorID   string
	AuthorName string
	Content    string
	CreatedAt  time.Time
	IsEdited   bool
}

// NewMessage constructs a message for the given author and enforces the
// content rules shared by the create and edit paths.
func NewMessage(authorID, content string) (*Message, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	return &Message{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}, nil
}
