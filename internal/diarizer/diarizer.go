package diarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Diarize runs the pyannote helper script on the audio file and parses the
// JSON turn list it prints to stdout. The helper owns all model loading;
// this side only forwards speaker-count hints.
func (d *implDiarizer) Diarize(ctx context.Context, audioPath string) ([]Turn, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio file not found: %w", err)
	}

	args := []string{d.cfg.Diarization.ScriptPath, "--audio", audioPath}
	if d.cfg.Diarization.NumSpeakers > 0 {
		args = append(args, "--num-speakers", strconv.Itoa(d.cfg.Diarization.NumSpeakers))
	}
	if d.cfg.Diarization.MinSpeakers > 0 {
		args = append(args, "--min-speakers", strconv.Itoa(d.cfg.Diarization.MinSpeakers))
	}
	if d.cfg.Diarization.MaxSpeakers > 0 {
		args = append(args, "--max-speakers", strconv.Itoa(d.cfg.Diarization.MaxSpeakers))
	}
	token := d.cfg.Diarization.HFToken
	if token == "" {
		token = os.Getenv("HF_TOKEN")
	}
	if token != "" {
		args = append(args, "--hf-token", token)
	}

	d.logger.Info(ctx, "Starting speaker diarization: %s", audioPath)

	out, err := d.executor.Execute(ctx, d.cfg.Diarization.PythonPath, args...)
	if err != nil {
		return nil, fmt.Errorf("diarization helper: %w", err)
	}

	var turns []Turn
	if err := json.Unmarshal([]byte(out), &turns); err != nil {
		return nil, fmt.Errorf("parse diarization output: %w", err)
	}

	d.logger.Info(ctx, "Diarization completed: %d turns", len(turns))
	return turns, nil
}
