package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LLMProvider   string // gemini, openai, ollama
	GeminiKey     string
	OpenAIKey     string
	LLMModel      string
	OllamaBaseURL string
	GitHubToken   string // optional; unauthenticated access works, just rate-limited
	DataDir       string
	Port          string
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		LLMProvider:   envOr("LLM_PROVIDER", "gemini"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		LLMModel:      os.Getenv("LLM_MODEL"),
		OllamaBaseURL: envOr("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		DataDir:       envOr("DATA_DIR", "./data"),
		Port:          envOr("PORT", "8080"),
	}
}

// MissingCredential returns the name of the required provider credential if
// it is not set. The GitHub token is deliberately not checked — its absence
// only means unauthenticated, rate-limited access.
func (c *Config) MissingCredential() string {
	switch c.LLMProvider {
	case "openai":
		if c.OpenAIKey == "" {
			return "OPENAI_API_KEY"
		}
	case "ollama":
		// local endpoint, no key needed
	default:
		if c.GeminiKey == "" {
			return "GEMINI_API_KEY"
		}
	}
	return ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
