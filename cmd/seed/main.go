package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/auth"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/config"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/user"
	userRepo "github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/repository/neo4j/user"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/store/neo4jstore"
)

// Demo token lifetime, long enough for manual testing sessions.
const demoTokenTTL = 24 * time.Hour

func main() {
	ctx := context.Background()

	// Load application configuration (store, token key, etc.) from env/.env.
	cfg := config.New()

	// Open the graph store through our adapter.
	graph, err := neo4jstore.New(cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database)
	if err != nil {
		log.Fatalf("[Seed] Failed to create store adapter: %v", err)
	}
	if err := graph.Ping(ctx); err != nil {
		log.Fatalf("[Seed] Failed to connect to store: %v", err)
	}
	defer graph.Close(ctx)

	log.Printf("[Seed] Connected to database %q", cfg.Neo4j.Database)

	// 1) Uniqueness constraints for the node labels we own.
	constraints := []string{
		"CREATE CONSTRAINT user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE",
		"CREATE CONSTRAINT message_id IF NOT EXISTS FOR (m:Message) REQUIRE m.id IS UNIQUE",
		"CREATE CONSTRAINT notification_id IF NOT EXISTS FOR (n:Notification) REQUIRE n.id IS UNIQUE",
		"CREATE CONSTRAINT movie_id IF NOT EXISTS FOR (m:Movie) REQUIRE m.id IS UNIQUE",
	}
	for _, constraint := range constraints {
		if _, err := graph.ExecuteWrite(ctx, runStatement(constraint)); err != nil {
			log.Fatalf("[Seed] Failed to create constraint: %v", err)
		}
	}
	log.Println("[Seed] Constraints are up to date.")

	// 2) Demo users.
	users := userRepo.NewRepository(graph)
	demo := []user.User{
		{ID: uuid.NewString(), Name: "alice", ActivityScore: 10},
		{ID: uuid.NewString(), Name: "bob", ActivityScore: 4},
		{ID: uuid.NewString(), Name: "carol", ActivityScore: 1},
	}
	for _, u := range demo {
		exists, err := users.Exists(ctx, u.ID)
		if err != nil {
			log.Fatalf("[Seed] Failed to check user %q: %v", u.Name, err)
		}
		if exists {
			log.Printf("[Seed] User %q already present, skipping.", u.Name)
			continue
		}

		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("[Seed] Failed to create user %q: %v", u.Name, err)
		}
		log.Printf("[Seed] Created user %q (id=%s)", u.Name, u.ID)
	}

	// 3) A couple of movies so the popularity job has something to touch.
	movies := []struct {
		title      string
		popularity int
	}{
		{"The Garden of Forking Paths", 40},
		{"Night Train to Gdansk", 25},
	}
	for _, m := range movies {
		statement := "MERGE (mv:Movie {title: $title}) ON CREATE SET mv.id = $id, mv.popularity = $popularity"
		_, err := graph.ExecuteWrite(ctx, runStatementWith(statement, map[string]any{
			"id":         uuid.NewString(),
			"title":      m.title,
			"popularity": m.popularity,
		}))
		if err != nil {
			log.Fatalf("[Seed] Failed to create movie %q: %v", m.title, err)
		}
		log.Printf("[Seed] Created movie %q", m.title)
	}

	// 4) A signed demo token for the first user, for manual chat testing.
	verifier := auth.NewTokenVerifier([]byte(cfg.Token.Key), cfg.Token.Issuer)
	token, err := verifier.Sign(demo[0].ID, demoTokenTTL)
	if err != nil {
		log.Fatalf("[Seed] Failed to sign demo token: %v", err)
	}

	fmt.Printf("\nDemo token for %q (valid %s):\n%s\n", demo[0].Name, demoTokenTTL, token)
	log.Println("[Seed] Done.")
}

// runStatement wraps a parameterless write statement as store work.
func runStatement(statement string) func(context.Context, neo4j.ManagedTransaction) (any, error) {
	return runStatementWith(statement, nil)
}

// runStatementWith wraps a parameterized write statement as store work.
func runStatementWith(statement string, params map[string]any) func(context.Context, neo4j.ManagedTransaction) (any, error) {
	return func(ctx context.Context, tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, statement, params)
		if err != nil {
			return nil, err
		}
		_, err = res.Consume(ctx)
		return nil, err
	}
}
