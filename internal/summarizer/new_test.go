package summarizer

import (
	"testing"

	"github.com/Aosanori/minutes-flow/internal/config"
	"github.com/Aosanori/minutes-flow/internal/logger"
)

func newTestConfig(provider string) *config.Config {
	cfg := &config.Config{}
	cfg.Whisper.ModelDir = "models"
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	cfg.LLM.Provider = provider
	return cfg
}

func TestNewProviders(t *testing.T) {
	log := logger.New("error")

	t.Run("lmstudio", func(t *testing.T) {
		if _, err := New(newTestConfig("lmstudio"), log); err != nil {
			t.Errorf("New() error = %v", err)
		}
	})

	t.Run("gemini with key", func(t *testing.T) {
		cfg := newTestConfig("gemini")
		cfg.LLM.GeminiAPIKey = "test-key"
		if _, err := New(cfg, log); err != nil {
			t.Errorf("New() error = %v", err)
		}
	})

	t.Run("gemini without key", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		if _, err := New(newTestConfig("gemini"), log); err == nil {
			t.Error("New() should fail without a Gemini API key")
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := New(newTestConfig("ollama"), log); err == nil {
			t.Error("New() should fail for an unknown provider")
		}
	})
}
