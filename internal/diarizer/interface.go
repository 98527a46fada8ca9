package diarizer

import "context"

// Turn is a diarization unit: a time span attributed to one raw speaker
// label (e.g. "SPEAKER_00"). Read-only once produced.
type Turn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}

// Diarizer splits an audio file into speaker turns.
type Diarizer interface {
	Diarize(ctx context.Context, audioPath string) ([]Turn, error)
}
