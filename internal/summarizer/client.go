package summarizer

import (
	"context"
	"errors"
)

// ErrNoModel is returned when the completion service reports no loaded
// models at all.
var ErrNoModel = errors.New("no model loaded on the completion service")

// completionClient is the boundary to a chat-completion backend. Model
// reports the model identifier requests will run against, resolving it
// lazily where the backend supports discovery.
type completionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
	Model(ctx context.Context) (string, error)
}
