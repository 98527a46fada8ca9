package config

import "fmt"

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Diarization DiarizationConfig `yaml:"diarization"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
	Prompt     string `yaml:"prompt"`
}

type DiarizationConfig struct {
	Enabled     bool   `yaml:"enabled"`
	PythonPath  string `yaml:"python_path"`
	ScriptPath  string `yaml:"script_path"`
	HFToken     string `yaml:"hf_token"`
	NumSpeakers int    `yaml:"num_speakers"`
	MinSpeakers int    `yaml:"min_speakers"`
	MaxSpeakers int    `yaml:"max_speakers"`
}

type LLMConfig struct {
	Provider     string  `yaml:"provider"`
	BaseURL      string  `yaml:"base_url"`
	APIKey       string  `yaml:"api_key"`
	Model        string  `yaml:"model"`
	GeminiAPIKey string  `yaml:"gemini_api_key"`
	GeminiModel  string  `yaml:"gemini_model"`
	ChunkSize    int     `yaml:"chunk_size"`
	Temperature  float64 `yaml:"temperature"`
}

type OutputConfig struct {
	Format       string `yaml:"format"`
	NoTimestamps bool   `yaml:"no_timestamps"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelDir == "" {
		return fmt.Errorf("whisper.model_dir is required")
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "large-v3-turbo"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "ja"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}

	if c.Diarization.Enabled {
		if c.Diarization.ScriptPath == "" {
			return fmt.Errorf("diarization.script_path is required when diarization is enabled")
		}
		if c.Diarization.PythonPath == "" {
			c.Diarization.PythonPath = "python3"
		}
	}

	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = "lmstudio"
	case "lmstudio", "gemini":
	default:
		return fmt.Errorf("llm.provider must be \"lmstudio\" or \"gemini\", got %q", c.LLM.Provider)
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "http://localhost:1234/v1"
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = "lm-studio"
	}
	if c.LLM.GeminiModel == "" {
		c.LLM.GeminiModel = "gemini-2.5-flash"
	}
	if c.LLM.ChunkSize == 0 {
		c.LLM.ChunkSize = 20000
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}

	switch c.Output.Format {
	case "":
		c.Output.Format = "markdown"
	case "markdown", "text", "docx":
	default:
		return fmt.Errorf("output.format must be markdown, text or docx, got %q", c.Output.Format)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
