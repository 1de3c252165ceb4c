package notificationneo4j

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/notification"
)

// notificationFromRecord maps one result record onto a domain notification.
func notificationFromRecord(rec *neo4j.Record) (notification.Notification, error) {
	rawID, _ := rec.Get("id")
	id, err := uuid.Parse(rawID.(string))
	if err != nil {
		return notification.Notification{}, fmt.Errorf("parse notification id: %w", err)
	}

	rawMovieID, _ := rec.Get("movieId")
	movieID, err := uuid.Parse(rawMovieID.(string))
	if err != nil {
		return notification.Notification{}, fmt.Errorf("parse movie id: %w", err)
	}

	isRead, _ := rec.Get("isRead")
	createdAt, _ := rec.Get("createdAt")
	commentUsername, _ := rec.Get("commentUsername")
	commentText, _ := rec.Get("commentText")
	movieTitle, _ := rec.Get("movieTitle")

	return notification.Notification{
		ID:              id,
		IsRead:          isRead.(bool),
		CreatedAt:       createdAt.(time.Time),
		CommentUsername: commentUsername.(string),
		CommentText:     commentText.(string),
		MovieID:         movieID,
		MovieTitle:      movieTitle.(string),
	}, nil
}

// notificationsFromRecords maps a collected result set onto domain notifications.
func notificationsFromRecords(records []*neo4j.Record) ([]notification.Notification, error) {
	out := make([]notification.Notification, 0, len(records))
	for _, rec := range records {
		n, err := notificationFromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
