package summarizer

import "context"

// ProgressFunc reports chunk progress. It is invoked synchronously with a
// 1-based index before each chunk request is issued, so it must not block.
type ProgressFunc func(current, total int)

// SummaryResult is the structured form of the generated minutes.
type SummaryResult struct {
	Summary     string
	KeyPoints   []string
	ActionItems []string
	Model       string
}

// Summarizer turns a transcript into meeting minutes via a chat-completion
// service, chunking long inputs, and can guess real names for anonymous
// speaker labels.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (*SummaryResult, error)
	SummarizeRaw(ctx context.Context, text string, onProgress ProgressFunc) (string, error)
	IdentifySpeakers(ctx context.Context, text string, speakers []string) (map[string]string, error)
}
