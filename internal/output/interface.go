package output

import (
	"context"

	"github.com/Aosanori/minutes-flow/internal/transcriber"
)

// Writer persists the minutes document. outputPath may be empty, in which
// case a path is derived from the media file name; the written path is
// returned either way.
type Writer interface {
	Write(ctx context.Context, mediaPath string, transcription *transcriber.Result, summaryContent string, outputPath string) (string, error)
}
