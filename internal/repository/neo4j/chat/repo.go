package chatneo4j

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/chat"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/store"
)

// Repository is a Cypher-backed implementation of the chat.Repository
// interface. Each call runs as one transaction through the store port.
type Repository struct {
	store store.Store
}

// NewRepository constructs a chat repository using the given store port.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// Create inserts a message node under the author and resolves the author's
// display name in the same query. A missing author yields NotFound.
func (r *Repository) Create(ctx context.Context, authorID, content string) (result.Result[chat.Message], error) {
	msg, err := chat.NewMessage(authorID, content)
	if err != nil {
		return result.Fail[chat.Message](result.UnexpectedError), err
	}

	out, err := r.store.ExecuteWrite(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (u:User {id: $authorId})
			CREATE (u)-[:SENT]->(m:Message {
				id: $id, content: $content, createdAt: $createdAt, isEdited: false
			})
			RETURN m.id AS id, u.id AS authorId, u.name AS authorName,
			       m.content AS content, m.createdAt AS createdAt, m.isEdited AS isEdited`,
			map[string]any{
				"authorId":  authorID,
				"id":        msg.ID.String(),
				"content":   msg.Content,
				"createdAt": msg.CreatedAt,
			})
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return result.Fail[chat.Message](result.NotFound), nil
		}

		created, err := messageFromRecord(records[0])
		if err != nil {
			return nil, err
		}
		return result.Ok(created), nil
	})
	if err != nil {
		return result.Fail[chat.Message](result.UnexpectedError), err
	}

	return out.(result.Result[chat.Message]), nil
}

// GetRecent returns the newest messages first, bounded by chat.RecentWindow.
func (r *Repository) GetRecent(ctx context.Context) ([]chat.Message, error) {
	out, err := r.store.ExecuteRead(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (u:User)-[:SENT]->(m:Message)
			RETURN m.id AS id, u.id AS authorId, u.name AS authorName,
			       m.content AS content, m.createdAt AS createdAt, m.isEdited AS isEdited
			ORDER BY m.createdAt DESC
			LIMIT $limit`,
			map[string]any{"limit": chat.RecentWindow})
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		return messagesFromRecords(records)
	})
	if err != nil {
		return nil, err
	}

	return out.([]chat.Message), nil
}

// Update rewrites the content of a message owned by authorID and marks it
// edited. Ownership is enforced by the match itself.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, authorID, content string) (result.Result[chat.Message], error) {
	msg, err := chat.NewMessage(authorID, content)
	if err != nil {
		return result.Fail[chat.Message](result.UnexpectedError), err
	}

	out, err := r.store.ExecuteWrite(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (u:User {id: $authorId})-[:SENT]->(m:Message {id: $id})
			SET m.content = $content, m.isEdited = true
			RETURN m.id AS id, u.id AS authorId, u.name AS authorName,
			       m.content AS content, m.createdAt AS createdAt, m.isEdited AS isEdited`,
			map[string]any{
				"authorId": authorID,
				"id":       id.String(),
				"content":  msg.Content,
			})
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return result.Fail[chat.Message](result.NotFound), nil
		}

		updated, err := messageFromRecord(records[0])
		if err != nil {
			return nil, err
		}
		return result.Ok(updated), nil
	})
	if err != nil {
		return result.Fail[chat.Message](result.UnexpectedError), err
	}

	return out.(result.Result[chat.Message]), nil
}

// Delete removes a message owned by authorID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID, authorID string) (result.Status, error) {
	out, err := r.store.ExecuteWrite(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (:User {id: $authorId})-[:SENT]->(m:Message {id: $id})
			DETACH DELETE m
			RETURN count(m) AS deleted`,
			map[string]any{"authorId": authorID, "id": id.String()})
		if err != nil {
			return nil, err
		}

		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}

		deleted, _ := record.Get("deleted")
		if deleted.(int64) == 0 {
			return result.NotFound, nil
		}
		return result.Completed, nil
	})
	if err != nil {
		return result.UnexpectedError, err
	}

	return out.(result.Status), nil
}

// compile-time interface check
var _ chat.Repository = (*Repository)(nil)
