package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host string
		Port string
	}

	Neo4j struct {
		URI      string
		Username string
		Password string
		Database string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	MQTT struct {
		URL      string
		ClientID string
		Username string
		Password string
	}

	Token struct {
		Key    string
		Issuer string
	}

	Tasks struct {
		Workers   int
		QueueSize int
	}

	Shutdown struct {
		Timeout time.Duration
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "movie-catalog")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// Neo4j
	cfg.Neo4j.URI = getEnv("NEO4J_URI", "neo4j://localhost:7687")
	cfg.Neo4j.Username = getEnv("NEO4J_USER", "neo4j")
	cfg.Neo4j.Password = getEnv("NEO4J_PASSWORD", "password")
	cfg.Neo4j.Database = getEnv("NEO4J_DATABASE", "neo4j")

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// MQTT broker
	cfg.MQTT.URL = getEnv("MQTT_URL", "ssl://localhost:8883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", cfg.App.Name+"-api")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")

	// Token verification
	cfg.Token.Key = getEnv("TOKEN_KEY", "dev-only-signing-key-change-me")
	cfg.Token.Issuer = getEnv("TOKEN_ISSUER", "movie-catalog-api")

	// Background tasks
	cfg.Tasks.Workers = getInt("TASK_WORKERS", 4)
	cfg.Tasks.QueueSize = getInt("TASK_QUEUE_SIZE", 64)

	// Shutdown
	cfg.Shutdown.Timeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	return cfg
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
