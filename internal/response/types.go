package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/chat"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/notification"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// MessageDTO is the public-facing representation of a chat message.
type MessageDTO struct {
	ID                string    `json:"id"`
	AuthorDisplayName string    `json:"authorDisplayName"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"createdAt"`
	IsEdited          bool      `json:"isEdited"`
}

type RecentMessagesPayload struct {
	Items []MessageDTO `json:"items"`
}

type RecentMessagesResponse struct {
	Success   bool                  `json:"success"`
	Data      RecentMessagesPayload `json:"data"`
	Timestamp string                `json:"timestamp"`
}

type MessageResponse struct {
	Success   bool       `json:"success"`
	Data      MessageDTO `json:"data"`
	Timestamp string     `json:"timestamp"`
}

// NotificationDTO is the public-facing representation of a notification.
type NotificationDTO struct {
	ID              string    `json:"id"`
	IsRead          bool      `json:"isRead"`
	CreatedAt       time.Time `json:"createdAt"`
	CommentUsername string    `json:"commentUsername"`
	CommentText     string    `json:"commentText"`
	MovieID         string    `json:"movieId"`
	MovieTitle      string    `json:"movieTitle"`
}

type NotificationsPayload struct {
	Items      []NotificationDTO `json:"items"`
	TotalCount int64             `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type NotificationsResponse struct {
	Success   bool                 `json:"success"`
	Data      NotificationsPayload `json:"data"`
	Timestamp string               `json:"timestamp"`
}

type UnreadCountPayload struct {
	Count int64 `json:"count"`
}

type UnreadCountResponse struct {
	Success   bool               `json:"success"`
	Data      UnreadCountPayload `json:"data"`
	Timestamp string             `json:"timestamp"`
}

// FromDomainMessage converts a single domain chat message into its DTO.
func FromDomainMessage(m chat.Message) MessageDTO {
	return MessageDTO{
		ID:                m.ID.String(),
		AuthorDisplayName: m.AuthorName,
		Content:           m.Content,
		CreatedAt:         m.CreatedAt,
		IsEdited:          m.IsEdited,
	}
}

// FromDomainMessages converts domain chat messages into DTOs.
func FromDomainMessages(msgs []chat.Message) []MessageDTO {
	return lo.Map(msgs, func(m chat.Message, _ int) MessageDTO {
		return FromDomainMessage(m)
	})
}

// FromNotificationPage converts a domain notification page into the wire payload.
func FromNotificationPage(page result.Page[notification.Notification]) NotificationsPayload {
	items := lo.Map(page.Items, func(n notification.Notification, _ int) NotificationDTO {
		return NotificationDTO{
			ID:              n.ID.String(),
			IsRead:          n.IsRead,
			CreatedAt:       n.CreatedAt,
			CommentUsername: n.CommentUsername,
			CommentText:     n.CommentText,
			MovieID:         n.MovieID.String(),
			MovieTitle:      n.MovieTitle,
		}
	})

	return NotificationsPayload{
		Items:      items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		Limit:      page.PageSize,
	}
}
