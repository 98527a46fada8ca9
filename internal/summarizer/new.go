package summarizer

import (
	"fmt"
	"os"

	"github.com/Aosanori/minutes-flow/internal/config"
	"github.com/Aosanori/minutes-flow/internal/logger"
)

// New creates a Summarizer backed by the configured completion provider.
// Provider selection fails here, before any request is made.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	var client completionClient

	switch cfg.LLM.Provider {
	case "lmstudio":
		client = newLMStudioClient(cfg.LLM)
	case "gemini":
		apiKey := cfg.LLM.GeminiAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires llm.gemini_api_key or GEMINI_API_KEY")
		}
		client = &geminiClient{apiKey: apiKey, model: cfg.LLM.GeminiModel}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	return &implSummarizer{
		client:      client,
		chunkSize:   cfg.LLM.ChunkSize,
		temperature: cfg.LLM.Temperature,
		logger:      log,
	}, nil
}
