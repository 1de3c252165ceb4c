package chatneo4j

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/chat"
)

// messageFromRecord maps one result record onto a domain message.
// The record must carry the aliases produced by the queries in repo.go.
func messageFromRecord(rec *neo4j.Record) (chat.Message, error) {
	rawID, _ := rec.Get("id")
	id, err := uuid.Parse(rawID.(string))
	if err != nil {
		return chat.Message{}, fmt.Errorf("parse message id: %w", err)
	}

	authorID, _ := rec.Get("authorId")
	authorName, _ := rec.Get("authorName")
	content, _ := rec.Get("content")
	createdAt, _ := rec.Get("createdAt")
	isEdited, _ := rec.Get("isEdited")

	return chat.Message{
		ID:         id,
		AuthorID:   authorID.(string),
		AuthorName: authorName.(string),
		Content:    content.(string),
		CreatedAt:  createdAt.(time.Time),
		IsEdited:   isEdited.(bool),
	}, nil
}

// messagesFromRecords maps a collected result set onto domain messages.
func messagesFromRecords(records []*neo4j.Record) ([]chat.Message, error) {
	out := make([]chat.Message, 0, len(records))
	for _, rec := range records {
		m, err := messageFromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
