package transcriber

import "context"

// Transcriber converts a media file into timestamped transcript segments.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (*Result, error)
}
