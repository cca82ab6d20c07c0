// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server, the database
// connection, and the outbound inventory client.
type Config struct {
	Addr             string
	DatabaseURL      string
	InventoryBaseURL string
	InventoryTimeout time.Duration
	ShutdownTimeout  time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		Addr:             ":" + getenv("APP_PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		InventoryBaseURL: getenv("INVENTORY_BASE_URL", "http://localhost:9090"),
		InventoryTimeout: durenvs("INVENTORY_TIMEOUT_SEC", 30),
		ShutdownTimeout:  durenvs("SHUTDOWN_TIMEOUT_SEC", 15),
	}
}
