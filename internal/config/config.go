// Package config loads service configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// LLM provider names accepted by BREEDSNAP_LLM_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config holds all configuration values.
type Config struct {
	// HTTP server
	Port string

	// SurrealDB connection
	SurrealDBURL       string
	SurrealDBNamespace string
	SurrealDBDatabase  string
	SurrealDBUser      string
	SurrealDBPass      string
	SurrealDBAuthLevel string

	// Vision model
	LLMProvider   string
	LLMModel      string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OllamaHost    string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
// Defaults target the GitHub Models deployment the service originally
// ran against, which is why OPENAI_API_KEY falls back to GITHUB_TOKEN.
func Load() Config {
	return Config{
		Port: getEnv("BREEDSNAP_PORT", "3001"),

		SurrealDBURL:       getEnv("SURREALDB_URL", "ws://localhost:8000/rpc"),
		SurrealDBNamespace: getEnv("SURREALDB_NAMESPACE", "breedsnap"),
		SurrealDBDatabase:  getEnv("SURREALDB_DATABASE", "sightings"),
		SurrealDBUser:      getEnv("SURREALDB_USER", "root"),
		SurrealDBPass:      getEnv("SURREALDB_PASS", "root"),
		SurrealDBAuthLevel: getEnv("SURREALDB_AUTH_LEVEL", "root"),

		LLMProvider:   getEnv("BREEDSNAP_LLM_PROVIDER", ProviderOpenAI),
		LLMModel:      getEnv("BREEDSNAP_LLM_MODEL", "openai/gpt-4o-mini"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", os.Getenv("GITHUB_TOKEN")),
		OpenAIBaseURL: getEnv("BREEDSNAP_OPENAI_BASE_URL", "https://models.github.ai/inference"),
		OllamaHost:    getEnv("OLLAMA_HOST", "http://localhost:11434"),

		LogFile:  getEnv("BREEDSNAP_LOG_FILE", "/tmp/breedsnap.log"),
		LogLevel: parseLogLevel(getEnv("BREEDSNAP_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
