package config

import "fmt"

const (
	ProviderTogether = "together"
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Downloader DownloaderConfig `yaml:"downloader"`
	LLM        LLMConfig        `yaml:"llm"`
	Paths      PathsConfig      `yaml:"paths"`
	Watcher    WatcherConfig    `yaml:"watcher"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	// MaxUploadMB is the multipart memory buffer; larger uploads spill to disk.
	MaxUploadMB   int64  `yaml:"max_upload_mb"`
	QuestionCount int    `yaml:"question_count"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type DownloaderConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	Format      string `yaml:"format"`
	MergeFormat string `yaml:"merge_format"`
}

type LLMConfig struct {
	Provider     string `yaml:"provider"`
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	SummaryModel string `yaml:"summary_model"`
	QuizModel    string `yaml:"quiz_model"`
	NotesModel   string `yaml:"notes_model"`
}

type PathsConfig struct {
	Temp     string `yaml:"temp"`
	Inbox    string `yaml:"inbox"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type WatcherConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxConcurrent int  `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Whisper.ModelDir == "" {
		return fmt.Errorf("whisper.model_dir is required")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required (set LLM_API_KEY)")
	}

	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = ProviderTogether
	case ProviderTogether, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}

	if c.Watcher.Enabled {
		if c.Paths.Inbox == "" {
			return fmt.Errorf("paths.inbox is required when watcher is enabled")
		}
		if c.Paths.Output == "" {
			return fmt.Errorf("paths.output is required when watcher is enabled")
		}
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 32
	}
	if c.Server.QuestionCount == 0 {
		c.Server.QuestionCount = 10
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.Downloader.Format == "" {
		c.Downloader.Format = "bestvideo+bestaudio/best"
	}
	if c.Downloader.MergeFormat == "" {
		c.Downloader.MergeFormat = "mp4"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	c.applyModelDefaults()
	return nil
}

func (c *Config) applyModelDefaults() {
	summary, quiz := "mistralai/Mixtral-8x7B-Instruct-v0.1", "meta-llama/Llama-3-8b-chat-hf"
	switch c.LLM.Provider {
	case ProviderOpenAI:
		summary, quiz = "gpt-4o-mini", "gpt-4o-mini"
	case ProviderGemini:
		summary, quiz = "gemini-2.5-flash", "gemini-2.5-flash"
	}

	if c.LLM.SummaryModel == "" {
		c.LLM.SummaryModel = summary
	}
	if c.LLM.QuizModel == "" {
		c.LLM.QuizModel = quiz
	}
	if c.LLM.NotesModel == "" {
		c.LLM.NotesModel = c.LLM.SummaryModel
	}
}
