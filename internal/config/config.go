package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	Ai  AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	KnowledgeDir       string // root of config.json, prompt/ and data/
}

type AIConfig struct {
	Provider          string // "anthropic" or "ollama"
	Model             string
	AnthropicAPIKey   string
	OllamaBaseURL     string
	GenTimeoutSeconds int // bound on a single provider call
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			KnowledgeDir:       getEnv("KNOWLEDGE_DIR", "."),
		},
		Ai: AIConfig{
			Provider:          getEnv("LLM_PROVIDER", "anthropic"),
			Model:             getEnv("LLM_MODEL", "claude-sonnet-4-20250514"),
			AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GenTimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
