package transcriber

import (
	"fmt"
	"sort"
	"strings"
)

// Segment is a transcript unit with start/end time in seconds and the
// recognized text. Speaker is empty until diarization assigns one.
type Segment struct {
	Start   float64
	End     float64
	Text    string
	Speaker string
}

// FormatTimestamp renders the segment start as HH:MM:SS.
func (s Segment) FormatTimestamp() string {
	total := int(s.Start)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Result is a full transcription: chronological segments, the detected
// language code and the media duration in seconds.
type Result struct {
	Segments []Segment
	Language string
	Duration float64
}

// FullText joins all segment texts without timestamps.
func (r *Result) FullText() string {
	parts := make([]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		parts = append(parts, strings.TrimSpace(seg.Text))
	}
	return strings.Join(parts, " ")
}

// TextWithTimestamps renders one line per segment as
// "[HH:MM:SS] Speaker: text" (speaker omitted when unset).
func (r *Result) TextWithTimestamps() string {
	lines := make([]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		text := strings.TrimSpace(seg.Text)
		if seg.Speaker != "" {
			lines = append(lines, fmt.Sprintf("[%s] %s: %s", seg.FormatTimestamp(), seg.Speaker, text))
		} else {
			lines = append(lines, fmt.Sprintf("[%s] %s", seg.FormatTimestamp(), text))
		}
	}
	return strings.Join(lines, "\n")
}

// Speakers returns the distinct speaker names in sorted order.
func (r *Result) Speakers() []string {
	seen := make(map[string]bool)
	for _, seg := range r.Segments {
		if seg.Speaker != "" {
			seen[seg.Speaker] = true
		}
	}

	speakers := make([]string, 0, len(seen))
	for s := range seen {
		speakers = append(speakers, s)
	}
	sort.Strings(speakers)
	return speakers
}

// HasSpeakers reports whether any segment carries a speaker.
func (r *Result) HasSpeakers() bool {
	for _, seg := range r.Segments {
		if seg.Speaker != "" {
			return true
		}
	}
	return false
}
