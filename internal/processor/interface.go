package processor

import "context"

// Processor drives the full minutes pipeline for one media file.
type Processor interface {
	// Process runs the pipeline with an auto-generated output path.
	Process(ctx context.Context, mediaPath string) error
	// ProcessTo runs the pipeline writing the document to outputPath
	// (empty means auto-generate).
	ProcessTo(ctx context.Context, mediaPath, outputPath string) error
}
