package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
	".m4v":  true,
}

// whisperOutput mirrors the JSON file whisper.cpp writes with -oj.
// Offsets are in milliseconds.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp on the media file and returns the parsed
// segments. Video inputs get their audio extracted to a temp WAV first.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath string) (*Result, error) {
	if _, err := os.Stat(mediaPath); err != nil {
		return nil, fmt.Errorf("media file not found: %w", err)
	}

	audioPath := mediaPath
	if videoExtensions[strings.ToLower(filepath.Ext(mediaPath))] {
		extracted, err := t.extractAudio(ctx, mediaPath)
		if err != nil {
			return nil, fmt.Errorf("extract audio: %w", err)
		}
		defer t.cleanupTempFile(ctx, extracted)
		audioPath = extracted
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Starting transcription (%s model, %d threads): %s",
		t.cfg.Whisper.Model, t.cfg.Whisper.Threads, audioPath)

	// -oj: JSON output with per-segment millisecond offsets
	// -l:  force language to prevent hallucination
	args := []string{
		"-m", filepath.Join(t.cfg.Whisper.ModelDir, t.modelFile),
		"-f", audioPath,
		"-oj",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Whisper.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	defer t.cleanupTempFile(ctx, jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	result, err := parseWhisperOutput(data, t.cfg.Whisper.Language)
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed: %d segments, language %s",
		len(result.Segments), result.Language)
	return result, nil
}

func parseWhisperOutput(data []byte, fallbackLanguage string) (*Result, error) {
	var parsed whisperOutput
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	result := &Result{Language: parsed.Result.Language}
	if result.Language == "" {
		result.Language = fallbackLanguage
	}

	for _, seg := range parsed.Transcription {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		result.Segments = append(result.Segments, Segment{
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
			Text:  text,
		})
	}

	if n := len(result.Segments); n > 0 {
		result.Duration = result.Segments[n-1].End
	}

	return result, nil
}

// extractAudio converts a video file to 16kHz mono WAV, the input format
// whisper.cpp works best with.
func (t *implTranscriber) extractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_temp.wav"

	t.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return audioPath, nil
}

func (t *implTranscriber) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
