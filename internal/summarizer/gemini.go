package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiClient is the cloud alternative to the local LM Studio endpoint.
// The model name comes from config; there is no discovery step.
type geminiClient struct {
	apiKey string
	model  string
}

func (c *geminiClient) Model(ctx context.Context) (string, error) {
	return c.model, nil
}

func (c *geminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(temperature)),
		MaxOutputTokens:   int32(maxTokens),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
