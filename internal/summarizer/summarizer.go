package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Aosanori/minutes-flow/internal/logger"
)

const (
	// Output budgets per request kind. Chunk summaries stay small so the
	// combination step fits comfortably in one request.
	maxTokensMinutes = 2000
	maxTokensChunk   = 1000

	chunkSeparator = "\n\n---\n\n"
)

type implSummarizer struct {
	client      completionClient
	chunkSize   int
	temperature float64
	logger      logger.Logger
}

// Summarize produces structured minutes: the raw generation parsed into
// summary, key points and action items, tagged with the model used.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (*SummaryResult, error) {
	raw, err := s.SummarizeRaw(ctx, text, nil)
	if err != nil {
		return nil, err
	}

	model, err := s.client.Model(ctx)
	if err != nil {
		return nil, err
	}

	summary, keyPoints, actionItems := parseMinutes(raw)
	return &SummaryResult{
		Summary:     summary,
		KeyPoints:   keyPoints,
		ActionItems: actionItems,
		Model:       model,
	}, nil
}

// SummarizeRaw returns the model's raw minutes text. Input longer than
// the chunk size is summarized chunk by chunk and then combined; shorter
// input goes through a single request. Processing is strictly sequential
// and any request failure aborts the whole run with no partial result.
func (s *implSummarizer) SummarizeRaw(ctx context.Context, text string, onProgress ProgressFunc) (string, error) {
	if utf8.RuneCountInString(text) > s.chunkSize {
		return s.summarizeChunked(ctx, text, onProgress)
	}

	return s.client.Complete(ctx, meetingMinutesPrompt, minutesRequest(text), maxTokensMinutes, s.temperature)
}

func (s *implSummarizer) summarizeChunked(ctx context.Context, text string, onProgress ProgressFunc) (string, error) {
	chunks := splitChunks(text, s.chunkSize)
	s.logger.Info(ctx, "Transcript exceeds %d chars, summarizing %d chunks", s.chunkSize, len(chunks))

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if onProgress != nil {
			onProgress(i+1, len(chunks))
		}

		out, err := s.client.Complete(ctx, chunkSummaryPrompt, chunkRequest(chunk), maxTokensChunk, s.temperature)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, out)
	}

	combined := strings.Join(summaries, chunkSeparator)
	out, err := s.client.Complete(ctx, meetingMinutesPrompt, combineRequest(combined), maxTokensMinutes, s.temperature)
	if err != nil {
		return "", fmt.Errorf("combine chunk summaries: %w", err)
	}
	return out, nil
}

func minutesRequest(text string) string {
	return "Create meeting minutes from the following transcript:\n\n" + text
}

func chunkRequest(text string) string {
	return "Summarize the following text:\n\n" + text
}

func combineRequest(text string) string {
	return "The following are summaries of consecutive parts of one meeting. " +
		"Merge them into a single complete set of meeting minutes:\n\n" + text
}
