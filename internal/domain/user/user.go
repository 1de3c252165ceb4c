// Package user carries the minimal account model the chat and notification
// paths depend on. Account management itself lives in the HTTP identity
// layer and is out of scope here.
package user

import "context"

// User is an account node in the graph.
type User struct {
	ID            string
	Name          string
	ActivityScore float64
}

// Repository defines the account operations used by seeding and tests.
type Repository interface {
	// Exists reports whether a user node with the given id is present.
	Exists(ctx context.Context, id string) (bool, error)

	// Create inserts a user node. Existing ids are merged, not duplicated.
	Create(ctx context.Context, u User) error
}
