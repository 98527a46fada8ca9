package diarizer

import (
	"github.com/Aosanori/minutes-flow/internal/config"
	"github.com/Aosanori/minutes-flow/internal/logger"
	"github.com/Aosanori/minutes-flow/pkg/executor"
)

type implDiarizer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Diarizer that shells out to the configured pyannote
// helper script.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Diarizer {
	return &implDiarizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
