// Package config loads service settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"timefilter-core/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	Version string

	// DisableTimeFilterExtraction turns off model-based filter detection for every request.
	DisableTimeFilterExtraction bool

	ProjectID      string
	Location       string
	FilterModel    string
	FallbackModel  string
	EmbeddingModel string
	ModelTimeout   time.Duration

	RedisAddr      string
	AnswerCacheTTL time.Duration

	QdrantHost       string
	QdrantPort       int
	QdrantCollection string
	EmbeddingDim     uint64

	LogLevel  string
	LogFormat string
}

// Load reads .env files (if present) and then the process environment.
// Malformed values fall back to defaults.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env.dev"}
	}
	missing := godotenv.Load(files...) != nil

	c := Config{
		Port:    get("PORT", "8080"),
		Env:     get("ENV", "dev"),
		Version: get("APP_VERSION", "dev"),

		DisableTimeFilterExtraction: getBool("DISABLE_TIME_FILTER_EXTRACTION", false),

		ProjectID:      get("GOOGLE_CLOUD_PROJECT", ""),
		Location:       get("GOOGLE_CLOUD_LOCATION", "us-central1"),
		FilterModel:    get("FILTER_MODEL", "gemini-2.5-flash"),
		FallbackModel:  get("FILTER_FALLBACK_MODEL", "gemini-2.0-flash"),
		EmbeddingModel: get("EMBEDDING_MODEL", "text-embedding-004"),
		ModelTimeout:   getDuration("MODEL_TIMEOUT", 10*time.Second),

		RedisAddr:      get("REDIS_ADDR", ""),
		AnswerCacheTTL: getDuration("ANSWER_CACHE_TTL", 15*time.Minute),

		QdrantHost:       get("QDRANT_HOST", ""),
		QdrantPort:       getInt("QDRANT_PORT", 6334),
		QdrantCollection: get("QDRANT_COLLECTION", "documents"),
		EmbeddingDim:     uint64(getInt("EMBEDDING_DIM", 768)),

		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "console"),
	}

	if missing {
		logger.Named("config").Debug().Strs("files", files).Msg("env files not found, using process environment")
	}
	return c
}

func get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Named("config").Warn().Str("key", key).Str("value", s).Msg("invalid bool, using default")
		return def
	}
	return v
}

func getInt(key string, def int) int {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Named("config").Warn().Str("key", key).Str("value", s).Msg("invalid int, using default")
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def
	}
	v, err := time.ParseDuration(s)
	if err != nil || v < 0 {
		logger.Named("config").Warn().Str("key", key).Str("value", s).Msg("invalid duration (e.g. 250ms, 2s), using default")
		return def
	}
	return v
}
