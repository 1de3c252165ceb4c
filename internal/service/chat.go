package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/chat"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
)

// ChatService exposes the chat feature to the HTTP layer. New messages only
// ever arrive through the real-time gateway; HTTP covers reads plus the
// authenticated edit and delete paths.
type ChatService interface {
	GetRecent(ctx context.Context) ([]chat.Message, error)
	Update(ctx context.Context, userID string, id uuid.UUID, content string) (result.Result[chat.Message], error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (result.Status, error)
}

type chatService struct {
	repo chat.Repository
}

// NewChatService creates a chat service over the message repository.
func NewChatService(repo chat.Repository) ChatService {
	return &chatService{repo: repo}
}

func (s *chatService) GetRecent(ctx context.Context) ([]chat.Message, error) {
	messages, err := s.repo.GetRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recent messages: %w", err)
	}
	return messages, nil
}

// Update rewrites a message owned by userID. A message owned by someone else
// is indistinguishable from a missing one and comes back as NotFound.
func (s *chatService) Update(ctx context.Context, userID string, id uuid.UUID, content string) (result.Result[chat.Message], error) {
	return s.repo.Update(ctx, id, userID, content)
}

func (s *chatService) Delete(ctx context.Context, userID string, id uuid.UUID) (result.Status, error) {
	return s.repo.Delete(ctx, id, userID)
}
