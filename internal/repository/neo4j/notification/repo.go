package notificationneo4j

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/notification"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/store"
)

// Repository is a Cypher-backed implementation of the notification.Repository
// interface. Ownership checks live inside the queries: a mutation matches the
// RECEIVED relationship from the requesting user, so a notification owned by
// anyone else simply does not match and comes back as NotFound.
type Repository struct {
	store store.Store
}

// NewRepository constructs a notification repository using the given store port.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// Create attaches a notification node to the recipient user.
func (r *Repository) Create(ctx context.Context, recipientID string, n notification.Notification) (result.Result[notification.Notification], error) {
	out, err := r.store.ExecuteWrite(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (u:User {id: $userId})
			CREATE (u)-[:RECEIVED]->(n:Notification {
				id: $id, isRead: false, createdAt: $createdAt,
				commentUsername: $commentUsername, commentText: $commentText,
				movieId: $movieId, movieTitle: $movieTitle
			})
			RETURN n.id AS id, n.isRead AS isRead, n.createdAt AS createdAt,
			       n.commentUsername AS commentUsername, n.commentText AS commentText,
			       n.movieId AS movieId, n.movieTitle AS movieTitle`,
			map[string]any{
				"userId":          recipientID,
				"id":              n.ID.String(),
				"createdAt":       n.CreatedAt,
				"commentUsername": n.CommentUsername,
				"commentText":     n.CommentText,
				"movieId":         n.MovieID.String(),
				"movieTitle":      n.MovieTitle,
			})
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return result.Fail[notification.Notification](result.RelatedEntityDoesNotExists), nil
		}

		created, err := notificationFromRecord(records[0])
		if err != nil {
			return nil, err
		}
		return result.Ok(created), nil
	})
	if err != nil {
		return result.Fail[notification.Notification](result.UnexpectedError), err
	}

	return out.(result.Result[notification.Notification]), nil
}

// GetPage returns one recency-ordered page plus totals. The count and the
// window run inside the same read transaction.
func (r *Repository) GetPage(ctx context.Context, userID string, page, size int) (result.Page[notification.Notification], error) {
	skip, limit := result.PageBounds(page, size)

	out, err := r.store.ExecuteRead(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		countRes, err := tx.Run(ctx, `
			MATCH (:User {id: $userId})-[:RECEIVED]->(n:Notification)
			RETURN count(n) AS total`,
			map[string]any{"userId": userID})
		if err != nil {
			return nil, err
		}
		countRec, err := countRes.Single(ctx)
		if err != nil {
			return nil, err
		}
		rawTotal, _ := countRec.Get("total")
		total := rawTotal.(int64)

		pageRes, err := tx.Run(ctx, `
			MATCH (:User {id: $userId})-[:RECEIVED]->(n:Notification)
			RETURN n.id AS id, n.isRead AS isRead, n.createdAt AS createdAt,
			       n.commentUsername AS commentUsername, n.commentText AS commentText,
			       n.movieId AS movieId, n.movieTitle AS movieTitle
			ORDER BY n.createdAt DESC
			SKIP $skip LIMIT $limit`,
			map[string]any{"userId": userID, "skip": skip, "limit": limit})
		if err != nil {
			return nil, err
		}

		records, err := pageRes.Collect(ctx)
		if err != nil {
			return nil, err
		}

		items, err := notificationsFromRecords(records)
		if err != nil {
			return nil, err
		}
		return result.NewPage(items, total, page, size), nil
	})
	if err != nil {
		return result.Page[notification.Notification]{}, err
	}

	return out.(result.Page[notification.Notification]), nil
}

// CountUnread returns the number of unread notifications owned by the user.
func (r *Repository) CountUnread(ctx context.Context, userID string) (int64, error) {
	out, err := r.store.ExecuteRead(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (:User {id: $userId})-[:RECEIVED]->(n:Notification {isRead: false})
			RETURN count(n) AS total`,
			map[string]any{"userId": userID})
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		total, _ := record.Get("total")
		return total.(int64), nil
	})
	if err != nil {
		return 0, err
	}

	return out.(int64), nil
}

// MarkRead flips the read flag on one owned notification.
func (r *Repository) MarkRead(ctx context.Context, userID string, id uuid.UUID) (result.Status, error) {
	return r.mutateOne(ctx, userID, id, `
		MATCH (:User {id: $userId})-[:RECEIVED]->(n:Notification {id: $id})
		SET n.isRead = true
		RETURN count(n) AS affected`)
}

// MarkAllRead flips the read flag on every owned notification.
func (r *Repository) MarkAllRead(ctx context.Context, userID string) (result.Status, error) {
	return r.mutateAll(ctx, userID, `
		MATCH (:User {id: $userId})-[:RECEIVED]->(n:Notification)
		SET n.isRead = true`)
}

// Delete removes one owned notification.
func (r *Repository) Delete(ctx context.Context, userID string, id uuid.UUID) (result.Status, error) {
	return r.mutateOne(ctx, userID, id, `
		MATCH (:User {id: $userId})-[:RECEIVED]->(n:Notification {id: $id})
		DETACH DELETE n
		RETURN count(n) AS affected`)
}

// DeleteAll removes every owned notification.
func (r *Repository) DeleteAll(ctx context.Context, userID string) (result.Status, error) {
	return r.mutateAll(ctx, userID, `
		MATCH (:User {id: $userId})-[:RECEIVED]->(n:Notification)
		DETACH DELETE n`)
}

// mutateOne runs a single-item mutation whose query reports how many nodes
// matched. Zero matches means the notification is missing or not owned by
// the requesting user, which callers must not be able to tell apart.
func (r *Repository) mutateOne(ctx context.Context, userID string, id uuid.UUID, query string) (result.Status, error) {
	out, err := r.store.ExecuteWrite(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"userId": userID, "id": id.String()})
		if err != nil {
			return nil, err
		}

		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}

		affected, _ := record.Get("affected")
		if affected.(int64) == 0 {
			return result.NotFound, nil
		}
		return result.Completed, nil
	})
	if err != nil {
		return result.UnexpectedError, err
	}

	return out.(result.Status), nil
}

// mutateAll runs a bulk mutation scoped to the user. Touching zero
// notifications is still Completed.
func (r *Repository) mutateAll(ctx context.Context, userID string, query string) (result.Status, error) {
	_, err := r.store.ExecuteWrite(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"userId": userID})
		if err != nil {
			return nil, err
		}
		_, err = res.Consume(ctx)
		return nil, err
	})
	if err != nil {
		return result.UnexpectedError, err
	}

	return result.Completed, nil
}

// compile-time interface check
var _ notification.Repository = (*Repository)(nil)
