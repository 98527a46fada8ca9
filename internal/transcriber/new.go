package transcriber

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Aosanori/minutes-flow/internal/config"
	"github.com/Aosanori/minutes-flow/internal/logger"
	"github.com/Aosanori/minutes-flow/pkg/executor"
)

// modelFiles maps a model size name to the ggml model filename expected
// under whisper.model_dir.
var modelFiles = map[string]string{
	"tiny":           "ggml-tiny.bin",
	"base":           "ggml-base.bin",
	"small":          "ggml-small.bin",
	"medium":         "ggml-medium.bin",
	"large":          "ggml-large-v3.bin",
	"large-v3":       "ggml-large-v3.bin",
	"large-v3-turbo": "ggml-large-v3-turbo.bin",
}

type implTranscriber struct {
	cfg       *config.Config
	executor  executor.Executor
	logger    logger.Logger
	modelFile string
}

// New creates a Transcriber. The configured model size is validated here,
// before any expensive work begins.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	modelFile, ok := modelFiles[cfg.Whisper.Model]
	if !ok {
		sizes := make([]string, 0, len(modelFiles))
		for size := range modelFiles {
			sizes = append(sizes, size)
		}
		sort.Strings(sizes)
		return nil, fmt.Errorf("unsupported whisper model %q, available: %s",
			cfg.Whisper.Model, strings.Join(sizes, ", "))
	}

	return &implTranscriber{
		cfg:       cfg,
		executor:  exec,
		logger:    log,
		modelFile: modelFile,
	}, nil
}
