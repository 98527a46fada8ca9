// Package main provides the minutes CLI entry point.
// minutes turns meeting recordings into structured minutes documents:
// whisper.cpp transcription, optional pyannote speaker diarization and
// LLM summarization via LM Studio or Gemini.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aosanori/minutes-flow/internal/config"
	"github.com/Aosanori/minutes-flow/internal/diarizer"
	"github.com/Aosanori/minutes-flow/internal/logger"
	"github.com/Aosanori/minutes-flow/internal/output"
	"github.com/Aosanori/minutes-flow/internal/processor"
	"github.com/Aosanori/minutes-flow/internal/summarizer"
	"github.com/Aosanori/minutes-flow/internal/transcriber"
	"github.com/Aosanori/minutes-flow/internal/watcher"
	"github.com/Aosanori/minutes-flow/pkg/executor"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	configPath   string
	outputPath   string
	outputFormat string
	whisperModel string
	language     string
	lmURL        string
	lmModel      string
	provider     string
	chunkSize    int
	noTimestamps bool
	diarize      bool
	numSpeakers  int
	verbose      bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if isConnectionError(err) {
			fmt.Fprintf(os.Stderr, "Hint: is LM Studio running and serving its local server? Check the URL passed via --lm-url.\n")
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "minutes <media-file>",
		Short:   "Generate meeting minutes from an audio or video recording",
		Version: version,
		Args:    cobra.ExactArgs(1),
		Long: `minutes transcribes a meeting recording with whisper.cpp, optionally
attributes segments to speakers with pyannote, summarizes the transcript
through a local LM Studio server (or Gemini) and writes a minutes document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			log := logger.New(cfg.Logging.Level)
			proc, err := buildProcessor(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return proc.ProcessTo(ctx, args[0], outputPath)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to YAML config file (default: config.yaml if present)")
	flags.StringVarP(&outputFormat, "format", "f", "", "output format: markdown, text or docx")
	flags.StringVar(&whisperModel, "model", "", "whisper model size (tiny, base, small, medium, large-v3-turbo, ...)")
	flags.StringVarP(&language, "language", "l", "", "transcription language code (e.g. ja, en)")
	flags.StringVar(&lmURL, "lm-url", "", "LM Studio server base URL")
	flags.StringVar(&lmModel, "lm-model", "", "model identifier to request (default: first loaded model)")
	flags.StringVar(&provider, "provider", "", "summarization provider: lmstudio or gemini")
	flags.IntVar(&chunkSize, "chunk-size", 0, "max characters per summarization chunk")
	flags.BoolVar(&noTimestamps, "no-timestamps", false, "summarize and print the transcript without timestamps")
	flags.BoolVar(&diarize, "diarize", false, "run speaker diarization and attribute segments to speakers")
	flags.IntVar(&numSpeakers, "num-speakers", 0, "exact number of speakers for diarization")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: <media>_minutes_<timestamp>.<ext>)")

	root.AddCommand(newWatchCmd())
	return root
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch a directory and process new recordings as they appear",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Paths.Input = args[0]
			}
			if cfg.Paths.Input == "" {
				return fmt.Errorf("no watch directory: pass one as an argument or set paths.input")
			}

			log := logger.New(cfg.Logging.Level)
			proc, err := buildProcessor(cfg, log)
			if err != nil {
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info(ctx, "Press Ctrl+C to stop")
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
}

// loadConfig resolves the effective configuration: YAML file (explicit
// --config, or config.yaml when present, or built-in defaults), then
// command-line flag overrides on top.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	switch {
	case configPath != "":
		cfg, err = config.Load(configPath)
	case fileExists("config.yaml"):
		cfg, err = config.Load("config.yaml")
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}

	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if whisperModel != "" {
		cfg.Whisper.Model = whisperModel
	}
	if language != "" {
		cfg.Whisper.Language = language
	}
	if lmURL != "" {
		cfg.LLM.BaseURL = lmURL
	}
	if lmModel != "" {
		cfg.LLM.Model = lmModel
	}
	if provider != "" {
		cfg.LLM.Provider = provider
	}
	if chunkSize > 0 {
		cfg.LLM.ChunkSize = chunkSize
	}
	if noTimestamps {
		cfg.Output.NoTimestamps = true
	}
	if diarize {
		cfg.Diarization.Enabled = true
	}
	if numSpeakers > 0 {
		cfg.Diarization.NumSpeakers = numSpeakers
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	// Re-validate: flags may have introduced values the file never had.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildProcessor wires the pipeline stages from the resolved config.
func buildProcessor(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	exec := executor.New()

	trans, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return nil, err
	}

	summ, err := summarizer.New(cfg, log)
	if err != nil {
		return nil, err
	}

	writer, err := output.New(cfg.Output.Format, log)
	if err != nil {
		return nil, err
	}

	return processor.New(cfg, trans, diarizer.New(cfg, exec, log), summ, writer, log), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "dial tcp")
}
