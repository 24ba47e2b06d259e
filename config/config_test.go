package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LLM_PROVIDER", "GEMINI_API_KEY", "DATA_DIR", "PORT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.LLMProvider != "gemini" {
		t.Errorf("provider default = %q", cfg.LLMProvider)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("data dir default = %q", cfg.DataDir)
	}
	if cfg.Port != "8080" {
		t.Errorf("port default = %q", cfg.Port)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("PORT", "9000")
	cfg := Load()
	if cfg.LLMProvider != "ollama" {
		t.Errorf("provider = %q", cfg.LLMProvider)
	}
	if cfg.Port != "9000" {
		t.Errorf("port = %q", cfg.Port)
	}
}

func TestMissingCredential(t *testing.T) {
	cases := []struct {
		cfg  Config
		want string
	}{
		{Config{LLMProvider: "gemini"}, "GEMINI_API_KEY"},
		{Config{LLMProvider: "gemini", GeminiKey: "k"}, ""},
		{Config{LLMProvider: "openai"}, "OPENAI_API_KEY"},
		{Config{LLMProvider: "openai", OpenAIKey: "k"}, ""},
		{Config{LLMProvider: "ollama"}, ""},
	}
	for _, tc := range cases {
		if got := tc.cfg.MissingCredential(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.cfg.LLMProvider, got, tc.want)
		}
	}
}
