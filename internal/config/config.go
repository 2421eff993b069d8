package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the API server and the CLI.
type Config struct {
	ListenAddr    string        // HTTP API listen address
	CacheTTL      time.Duration // how long a parsed notification counts as a duplicate
	MaxMessageLen int           // longest message the API accepts, in bytes

	LogLevel log.Level // logging level
}

const (
	defaultListenAddr    = ":8080"
	defaultCacheTTL      = 10 * time.Minute
	defaultMaxMessageLen = 4096
)

// parseAddress accepts "8080", ":8080" or "127.0.0.1:8080".
func parseAddress(port string) string {
	port = strings.TrimSpace(port)
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; variables already set in
// the environment win. Malformed values fall back to their defaults.
func Load() Config {
	// a missing .env is the normal case in production
	_ = godotenv.Load()

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	logLevel, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = log.InfoLevel
	}

	cacheTTL, err := time.ParseDuration(os.Getenv("CACHE_TTL"))
	if err != nil || cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	maxLen, err := strconv.Atoi(os.Getenv("MAX_MESSAGE_LEN"))
	if err != nil || maxLen <= 0 {
		maxLen = defaultMaxMessageLen
	}

	return Config{
		ListenAddr:    parseAddress(listenAddr),
		CacheTTL:      cacheTTL,
		MaxMessageLen: maxLen,
		LogLevel:      logLevel,
	}
}
