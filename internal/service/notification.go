package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/cache"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/notification"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/tasks"
)

// unreadCountTTL bounds staleness of the cached unread counter when an
// invalidation is missed.
const unreadCountTTL = 10 * time.Minute

// NotificationService exposes the notification operations consumed by the
// HTTP layer, plus the comment fan-out used by the review feature.
type NotificationService interface {
	List(ctx context.Context, userID string, page, size int) (result.Page[notification.Notification], error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) (result.Status, error)
	MarkAllRead(ctx context.Context, userID string) (result.Status, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (result.Status, error)
	DeleteAll(ctx context.Context, userID string) (result.Status, error)

	// NotifyComment fans a comment event out to the given recipients as a
	// background task. The caller does not await completion; failures are
	// logged, never surfaced.
	NotifyComment(recipientIDs []string, n notification.Notification)
}

type notificationService struct {
	repo      notification.Repository
	cache     cache.Cache
	submitter tasks.Submitter
}

// NewNotificationService creates a notification service with the given
// repository, cache and background-task submitter.
func NewNotificationService(repo notification.Repository, c cache.Cache, submitter tasks.Submitter) NotificationService {
	return &notificationService{repo: repo, cache: c, submitter: submitter}
}

func (s *notificationService) List(ctx context.Context, userID string, page, size int) (result.Page[notification.Notification], error) {
	return s.repo.GetPage(ctx, userID, page, size)
}

// UnreadCount serves the counter from cache when possible and falls back to
// the store, repopulating the cache on the way out.
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	key := cache.UnreadNotifications.Key(userID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, strconv.FormatInt(count, 10), unreadCountTTL); err != nil {
			log.Printf("[Service] Failed to cache unread count for %s: %v", userID, err)
		}
	}

	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, id uuid.UUID) (result.Status, error) {
	status, err := s.repo.MarkRead(ctx, userID, id)
	s.invalidateUnread(ctx, userID, status)
	return status, err
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (result.Status, error) {
	status, err := s.repo.MarkAllRead(ctx, userID)
	s.invalidateUnread(ctx, userID, status)
	return status, err
}

func (s *notificationService) Delete(ctx context.Context, userID string, id uuid.UUID) (result.Status, error) {
	status, err := s.repo.Delete(ctx, userID, id)
	s.invalidateUnread(ctx, userID, status)
	return status, err
}

func (s *notificationService) DeleteAll(ctx context.Context, userID string) (result.Status, error) {
	status, err := s.repo.DeleteAll(ctx, userID)
	s.invalidateUnread(ctx, userID, status)
	return status, err
}

// NotifyComment submits one background create per recipient.
func (s *notificationService) NotifyComment(recipientIDs []string, n notification.Notification) {
	for _, recipientID := range recipientIDs {
		recipientID := recipientID

		s.submitter.Submit("notify comment", func(ctx context.Context) error {
			// Each recipient gets their own notification node.
			own := n
			own.ID = uuid.New()

			res, err := s.repo.Create(ctx, recipientID, own)
			if err != nil {
				return fmt.Errorf("create notification for %s: %w", recipientID, err)
			}
			if !res.IsCompleted() {
				return fmt.Errorf("create notification for %s: %s", recipientID, res.Status)
			}

			s.invalidateUnread(ctx, recipientID, result.Completed)
			return nil
		})
	}
}

// invalidateUnread drops the cached counter after a successful mutation.
func (s *notificationService) invalidateUnread(ctx context.Context, userID string, status result.Status) {
	if s.cache == nil || status != result.Completed {
		return
	}
	if err := s.cache.Del(ctx, cache.UnreadNotifications.Key(userID)); err != nil {
		log.Printf("[Service] Failed to invalidate unread count for %s: %v", userID, err)
	}
}
