package processor

import "github.com/Aosanori/minutes-flow/internal/transcriber"

// renameSpeakers substitutes identified names for the numbered speaker
// labels across all segments. Labels without an entry keep their number.
func renameSpeakers(transcription *transcriber.Result, names map[string]string) {
	for i := range transcription.Segments {
		if name, ok := names[transcription.Segments[i].Speaker]; ok && name != "" {
			transcription.Segments[i].Speaker = name
		}
	}
}
