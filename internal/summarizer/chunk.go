package summarizer

import (
	"strings"
	"unicode/utf8"
)

// splitChunks splits text into line-aligned chunks of at most maxChars
// runes. A single line longer than maxChars becomes its own oversized
// chunk rather than being cut mid-line: an utterance with its timestamp
// prefix must never be truncated. Joining the chunks with "\n" reproduces
// the input exactly.
func splitChunks(text string, maxChars int) []string {
	if text == "" {
		return nil
	}

	var chunks []string
	var current []string
	currentLength := 0

	for _, line := range strings.Split(text, "\n") {
		lineLength := utf8.RuneCountInString(line) + 1 // +1 for the separator
		if currentLength+lineLength > maxChars && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = []string{line}
			currentLength = lineLength
		} else {
			current = append(current, line)
			currentLength += lineLength
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}

	return chunks
}
