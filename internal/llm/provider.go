package llm

import "fmt"

type ProviderConfig struct {
	Provider  string
	GeminiKey string
	OpenAIKey string
	Model     string
	BaseURL   string
}

func NewClient(cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(cfg.GeminiKey, cfg.Model), nil
	case "openai":
		return NewOpenAIClient(cfg.OpenAIKey, cfg.Model, ""), nil
	case "ollama":
		if cfg.Model == "" {
			cfg.Model = "llama3.1"
		}
		return NewOpenAIClient("ollama", cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
