package cmd

import (
	"fmt"
	"time"
)

// Config carries all runtime settings, loaded from the environment in main.
type Config struct {
	HTTPPort string

	// DataBackend selects the order store: "postgres" (default) or
	// "memory" for dependency-free development runs.
	DataBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost             string
	KafkaOrderEventsTopic string

	RedisAddr     string
	RedisPassword string
	RedisCacheTTL time.Duration

	JWTSecret string

	// PendingMaxAge is how long an order may wait for supplier
	// confirmation before the stale-order job flags it.
	PendingMaxAge time.Duration
}

// PostgresDSN builds the connection string for the postgres backend.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// UseMemoryBackend reports whether the in-process backend is selected.
func (c Config) UseMemoryBackend() bool {
	return c.DataBackend == "memory"
}
