package userneo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/user"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/store"
)

// Repository is a Cypher-backed implementation of the user.Repository interface.
type Repository struct {
	store store.Store
}

// NewRepository constructs a user repository using the given store port.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// Exists reports whether a user node with the given id is present.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	out, err := r.store.ExecuteRead(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			`MATCH (u:User {id: $id}) RETURN count(u) AS total`,
			map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		total, _ := record.Get("total")
		return total.(int64) > 0, nil
	})
	if err != nil {
		return false, err
	}

	return out.(bool), nil
}

// Create merges a user node by id so repeated seeding stays single-node.
func (r *Repository) Create(ctx context.Context, u user.User) error {
	_, err := r.store.ExecuteWrite(ctx, func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MERGE (u:User {id: $id})
			ON CREATE SET u.name = $name, u.activityScore = $activityScore`,
			map[string]any{"id": u.ID, "name": u.Name, "activityScore": u.ActivityScore})
		if err != nil {
			return nil, err
		}
		_, err = res.Consume(ctx)
		return nil, err
	})
	return err
}

// compile-time interface check
var _ user.Repository = (*Repository)(nil)
