package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/Aosanori/minutes-flow/internal/config"
)

// lmStudioClient talks to an OpenAI-compatible local endpoint (LM Studio).
// The HTTP client and the resolved model id are cached per instance after
// first use. The cache is single-owner: one orchestrator, one client; it
// must not be shared across goroutines without an added lock.
type lmStudioClient struct {
	baseURL string
	apiKey  string
	model   string

	client   *openai.Client
	resolved string
}

func newLMStudioClient(cfg config.LLMConfig) *lmStudioClient {
	return &lmStudioClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

func (c *lmStudioClient) getClient() *openai.Client {
	if c.client == nil {
		// No automatic retries: failures surface verbatim to the caller.
		client := openai.NewClient(
			option.WithBaseURL(c.baseURL),
			option.WithAPIKey(c.apiKey),
			option.WithMaxRetries(0),
		)
		c.client = &client
	}
	return c.client
}

// Model returns the configured model name, or discovers one from the
// endpoint's model list: the first entry that does not look like an
// embedding model, falling back to the first entry when all do.
func (c *lmStudioClient) Model(ctx context.Context) (string, error) {
	if c.model != "" {
		return c.model, nil
	}
	if c.resolved != "" {
		return c.resolved, nil
	}

	page, err := c.getClient().Models.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list models: %w", err)
	}
	if len(page.Data) == 0 {
		return "", ErrNoModel
	}

	for _, m := range page.Data {
		if isEmbeddingModel(m.ID) {
			continue
		}
		c.resolved = m.ID
		return c.resolved, nil
	}

	c.resolved = page.Data[0].ID
	return c.resolved, nil
}

func isEmbeddingModel(id string) bool {
	return strings.HasPrefix(id, "text-embedding") ||
		strings.Contains(strings.ToLower(id), "embed")
}

func (c *lmStudioClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	model, err := c.Model(ctx)
	if err != nil {
		return "", err
	}

	completion, err := c.getClient().Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       openai.ChatModel(model),
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty response from completion service")
	}

	return completion.Choices[0].Message.Content, nil
}
