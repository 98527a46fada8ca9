package summarizer

import (
	"context"
	"fmt"
	"strings"
)

const (
	// Only the opening portion of the transcript is sent: speakers tend to
	// reveal themselves early (self-introductions), and this keeps the
	// request small regardless of meeting length.
	speakerContextChars = 10000
	speakerMaxTokens    = 500
	speakerTemperature  = 0.1
)

// IdentifySpeakers asks the model to map anonymous speaker labels to real
// names based on the transcript's opening. Unparseable answers yield an
// empty mapping, not an error; request failures propagate so the caller
// can decide how hard to fail.
func (s *implSummarizer) IdentifySpeakers(ctx context.Context, text string, speakers []string) (map[string]string, error) {
	if len(speakers) == 0 {
		return map[string]string{}, nil
	}

	if runes := []rune(text); len(runes) > speakerContextChars {
		text = string(runes[:speakerContextChars]) + "\n\n... (truncated)"
	}

	user := fmt.Sprintf("Speakers: %s\n\nTranscript:\n%s", strings.Join(speakers, ", "), text)

	content, err := s.client.Complete(ctx, speakerIdentificationPrompt, user, speakerMaxTokens, speakerTemperature)
	if err != nil {
		return nil, fmt.Errorf("identify speakers: %w", err)
	}

	return parseSpeakerMapping(content, speakers), nil
}
