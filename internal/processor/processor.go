package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Aosanori/minutes-flow/internal/diarizer"
)

// Process orchestrates the entire minutes pipeline with an auto-generated
// output path.
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	return p.ProcessTo(ctx, mediaPath, "")
}

// ProcessTo runs transcription, optional speaker attribution, summarization
// and document output for one media file. Each stage runs strictly after
// the previous one; a stage failure aborts the run and nothing is written.
func (p *implProcessor) ProcessTo(ctx context.Context, mediaPath, outputPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing meeting recording: %s", mediaPath)
	p.logger.Info(ctx, "========================================")

	if _, err := os.Stat(mediaPath); err != nil {
		return fmt.Errorf("media file not found: %w", err)
	}

	// Step 1: Transcribe
	transcription, err := p.transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	// Step 2: Attribute segments to speakers
	if p.cfg.Diarization.Enabled {
		turns, err := p.diarizer.Diarize(ctx, mediaPath)
		if err != nil {
			return fmt.Errorf("diarize: %w", err)
		}

		diarizer.AssignSpeakers(transcription.Segments, turns, diarizer.SpeakerMapping(turns))

		// Step 2b: Guess real names for the numbered labels. Best effort:
		// a failure here downgrades to keeping the numbered labels.
		if labels := transcription.Speakers(); len(labels) > 0 {
			names, err := p.summarizer.IdentifySpeakers(ctx, transcription.TextWithTimestamps(), labels)
			if err != nil {
				p.logger.Warn(ctx, "Speaker identification failed, keeping numbered labels: %v", err)
			} else if len(names) > 0 {
				renameSpeakers(transcription, names)
				p.logger.Info(ctx, "Identified speakers: %v", names)
			}
		}
	}

	// Step 3: Summarize
	textForSummary := transcription.TextWithTimestamps()
	if p.cfg.Output.NoTimestamps {
		textForSummary = transcription.FullText()
	}

	summaryContent, err := p.summarizer.SummarizeRaw(ctx, textForSummary, func(current, total int) {
		p.logger.Info(ctx, "Summarizing chunk %d/%d...", current, total)
	})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 4: Write the document
	savedPath, err := p.writer.Write(ctx, mediaPath, transcription, summaryContent, outputPath)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Minutes document: %s", savedPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Truncate(time.Second))
	p.logger.Info(ctx, "========================================")

	return nil
}
