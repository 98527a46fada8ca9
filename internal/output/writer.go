package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aosanori/minutes-flow/internal/transcriber"
)

// Write formats the minutes document and persists it. Nothing is written
// until the full content is assembled, so a failed pipeline never leaves a
// partial document behind.
func (w *implWriter) Write(ctx context.Context, mediaPath string, transcription *transcriber.Result, summaryContent string, outputPath string) (string, error) {
	createdAt := time.Now()

	if outputPath == "" {
		outputPath = defaultOutputPath(mediaPath, w.format, createdAt)
	}

	var err error
	switch w.format {
	case "markdown":
		content := formatMarkdown(mediaPath, transcription, summaryContent, createdAt)
		err = os.WriteFile(outputPath, []byte(content), 0644)
	case "text":
		content := formatText(mediaPath, transcription, summaryContent, createdAt)
		err = os.WriteFile(outputPath, []byte(content), 0644)
	case "docx":
		markdown := formatMarkdown(mediaPath, transcription, summaryContent, createdAt)
		err = markdownToDocx("Meeting Minutes: "+filepath.Base(mediaPath), markdown, outputPath)
	default:
		err = fmt.Errorf("unsupported output format %q", w.format)
	}
	if err != nil {
		return "", fmt.Errorf("write minutes document: %w", err)
	}

	w.logger.Info(ctx, "Minutes saved: %s", outputPath)
	return outputPath, nil
}

func defaultOutputPath(mediaPath, format string, createdAt time.Time) string {
	ext := ".md"
	switch format {
	case "text":
		ext = ".txt"
	case "docx":
		ext = ".docx"
	}

	stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	name := fmt.Sprintf("%s_minutes_%s%s", stem, createdAt.Format("20060102_150405"), ext)
	return filepath.Join(filepath.Dir(mediaPath), name)
}

func formatMarkdown(mediaPath string, transcription *transcriber.Result, summaryContent string, createdAt time.Time) string {
	name := filepath.Base(mediaPath)

	var b strings.Builder
	fmt.Fprintf(&b, "# Meeting Minutes: %s\n\n", name)
	fmt.Fprintf(&b, "**Created**: %s  \n", createdAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Source**: %s  \n", name)
	fmt.Fprintf(&b, "**Duration**: %s  \n", formatDuration(transcription.Duration))
	fmt.Fprintf(&b, "**Language**: %s  \n", transcription.Language)
	if transcription.HasSpeakers() {
		fmt.Fprintf(&b, "**Speakers**: %s  \n", strings.Join(transcription.Speakers(), ", "))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(strings.TrimSpace(summaryContent))
	b.WriteString("\n\n---\n\n## Full Transcript\n\n")
	b.WriteString(transcription.TextWithTimestamps())
	b.WriteString("\n")
	return b.String()
}

func formatText(mediaPath string, transcription *transcriber.Result, summaryContent string, createdAt time.Time) string {
	name := filepath.Base(mediaPath)
	separator := strings.Repeat("=", 50)

	var b strings.Builder
	fmt.Fprintf(&b, "Meeting Minutes: %s\n\n", name)
	fmt.Fprintf(&b, "Created: %s\n", createdAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Source: %s\n", name)
	fmt.Fprintf(&b, "Duration: %s\n", formatDuration(transcription.Duration))
	fmt.Fprintf(&b, "Language: %s\n", transcription.Language)
	if transcription.HasSpeakers() {
		fmt.Fprintf(&b, "Speakers: %s\n", strings.Join(transcription.Speakers(), ", "))
	}
	fmt.Fprintf(&b, "\n%s\n\n", separator)
	b.WriteString(stripMarkdown(strings.TrimSpace(summaryContent)))
	fmt.Fprintf(&b, "\n\n%s\n\nFull Transcript\n\n", separator)
	b.WriteString(transcription.TextWithTimestamps())
	b.WriteString("\n")
	return b.String()
}

// stripMarkdown removes heading markers and bold/italic markers so the
// plain-text output reads cleanly.
func stripMarkdown(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
		line = strings.ReplaceAll(line, "**", "")
		line = strings.ReplaceAll(line, "__", "")
		line = strings.ReplaceAll(line, "*", "")
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
