package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/auth"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/broker/mqtt"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/cache/redis"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/config"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/gateway"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/handler"
	chatRepo "github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/repository/neo4j/chat"
	jobsRepo "github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/repository/neo4j/jobs"
	notifRepo "github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/repository/neo4j/notification"
	routes "github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/router"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/scheduler"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/server"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/service"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/store/neo4jstore"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/tasks"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()

	// Init the graph store.
	graph, err := neo4jstore.New(cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database)
	if err != nil {
		log.Fatalf("failed to create store adapter: %v", err)
	}
	if err := graph.Ping(rootCtx); err != nil {
		log.Fatalf("failed to connect to store: %v", err)
	}

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	// Connect the broker. The client owns the connection for the process
	// lifetime and handles reconnects itself.
	brokerClient, err := mqtt.Connect(mqtt.Options{
		URL:      cfg.MQTT.URL,
		ClientID: cfg.MQTT.ClientID,
		Username: cfg.MQTT.Username,
		Password: cfg.MQTT.Password,
	})
	if err != nil {
		log.Fatalf("failed to connect to broker: %v", err)
	}

	// Init repositories, token verification and background tasks.
	messages := chatRepo.NewRepository(graph)
	notifications := notifRepo.NewRepository(graph)
	jobs := jobsRepo.NewRepository(graph)

	verifier := auth.NewTokenVerifier([]byte(cfg.Token.Key), cfg.Token.Issuer)
	runner := tasks.NewRunner(cfg.Tasks.Workers, cfg.Tasks.QueueSize)

	// Services
	chatSvc := service.NewChatService(messages)
	notifSvc := service.NewNotificationService(notifications, cache, runner)

	// Register store-side maintenance jobs before serving traffic.
	// A failure to read the current job list is fatal to boot.
	if err := scheduler.NewRegistrar(jobs).RegisterAll(rootCtx); err != nil {
		log.Fatalf("failed to register maintenance jobs: %v", err)
	}

	// Real-time gateway: subscribe to the inbound chat topic.
	gw := gateway.New(brokerClient, verifier, messages)
	if err := gw.Start(); err != nil {
		log.Fatalf("failed to subscribe to chat topic: %v", err)
	}
	log.Printf("[Main] Gateway subscribed to %s.", gateway.TopicInbound)

	// HTTP dependencies & server wiring.
	deps := routes.AppDeps{
		Home:         handler.NewHomeHandler(),
		Chat:         handler.NewChatHandler(chatSvc),
		Notification: handler.NewNotificationHandler(notifSvc),
		Verifier:     verifier,
	}

	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		log.Printf("HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	// Give components some time to shut down cleanly.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
	defer cancel()

	// Gracefully shut down the HTTP server first so no new work arrives.
	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		log.Println("[Main] HTTP server stopped.")
	}

	// Drain queued background tasks.
	log.Println("[Main] Draining background tasks...")
	runner.Close()

	// Tear down the broker connection and the store driver.
	brokerClient.Disconnect()
	if err := graph.Close(shutdownCtx); err != nil {
		log.Printf("[Main] Store driver close failed: %v", err)
	}

	log.Println("[Main] Shutdown complete.")
}
