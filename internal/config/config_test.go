package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelDir: "models",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing model dir",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Whisper: WhisperConfig{ModelDir: "models"},
				LLM:     LLMConfig{Provider: "ollama"},
			},
			wantErr: true,
		},
		{
			name: "unknown output format",
			config: Config{
				Whisper: WhisperConfig{ModelDir: "models"},
				Output:  OutputConfig{Format: "pdf"},
			},
			wantErr: true,
		},
		{
			name: "diarization enabled without script",
			config: Config{
				Whisper:     WhisperConfig{ModelDir: "models"},
				Diarization: DiarizationConfig{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{ModelDir: "models"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Model != "large-v3-turbo" {
		t.Errorf("Model = %v, want large-v3-turbo", cfg.Whisper.Model)
	}
	if cfg.LLM.Provider != "lmstudio" {
		t.Errorf("Provider = %v, want lmstudio", cfg.LLM.Provider)
	}
	if cfg.LLM.BaseURL != "http://localhost:1234/v1" {
		t.Errorf("BaseURL = %v", cfg.LLM.BaseURL)
	}
	if cfg.LLM.ChunkSize != 20000 {
		t.Errorf("ChunkSize = %v, want 20000", cfg.LLM.ChunkSize)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Format = %v, want markdown", cfg.Output.Format)
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %v, want 1", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model_dir: "models"
  model: "small"
  language: "en"

llm:
  provider: "lmstudio"
  base_url: "http://localhost:1234/v1"
  chunk_size: 10000

output:
  format: "text"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Model != "small" {
		t.Errorf("Model = %v, want small", cfg.Whisper.Model)
	}
	if cfg.LLM.ChunkSize != 10000 {
		t.Errorf("ChunkSize = %v, want 10000", cfg.LLM.ChunkSize)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Output.Format)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
