package processor

import (
	"github.com/Aosanori/minutes-flow/internal/config"
	"github.com/Aosanori/minutes-flow/internal/diarizer"
	"github.com/Aosanori/minutes-flow/internal/logger"
	"github.com/Aosanori/minutes-flow/internal/output"
	"github.com/Aosanori/minutes-flow/internal/summarizer"
	"github.com/Aosanori/minutes-flow/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	diarizer    diarizer.Diarizer
	summarizer  summarizer.Summarizer
	writer      output.Writer
	logger      logger.Logger
}

// New creates a Processor wiring the pipeline stages together.
func New(
	cfg *config.Config,
	trans transcriber.Transcriber,
	diar diarizer.Diarizer,
	summ summarizer.Summarizer,
	writer output.Writer,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: trans,
		diarizer:    diar,
		summarizer:  summ,
		writer:      writer,
		logger:      log,
	}
}
