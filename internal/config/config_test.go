package config

import (
	"os"
	"path/filepath"
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
				Whisper: WhisperConfig{ModelDir: "models"},
				LLM:     LLMConfig{APIKey: "secret"},
			},
			wantErr: false,
		},
		{
			name: "missing model dir",
			config: Config{
				LLM: LLMConfig{APIKey: "secret"},
			},
			wantErr: true,
		},
		{
			name: "missing api key",
			config: Config{
				Whisper: WhisperConfig{ModelDir: "models"},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Whisper: WhisperConfig{ModelDir: "models"},
				LLM:     LLMConfig{APIKey: "secret", Provider: "bard"},
			},
			wantErr: true,
		},
		{
			name: "watcher without inbox",
			config: Config{
				Whisper: WhisperConfig{ModelDir: "models"},
				LLM:     LLMConfig{APIKey: "secret"},
				Watcher: WatcherConfig{Enabled: true},
				Paths:   PathsConfig{Output: "data/output"},
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
		LLM:     LLMConfig{APIKey: "secret"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Provider != ProviderTogether {
		t.Errorf("Provider = %v, want %v", cfg.LLM.Provider, ProviderTogether)
	}
	if cfg.LLM.SummaryModel != "mistralai/Mixtral-8x7B-Instruct-v0.1" {
		t.Errorf("SummaryModel = %v", cfg.LLM.SummaryModel)
	}
	if cfg.LLM.QuizModel != "meta-llama/Llama-3-8b-chat-hf" {
		t.Errorf("QuizModel = %v", cfg.LLM.QuizModel)
	}
	if cfg.LLM.NotesModel != cfg.LLM.SummaryModel {
		t.Errorf("NotesModel = %v, want summary model", cfg.LLM.NotesModel)
	}
	if cfg.Server.QuestionCount != 10 {
		t.Errorf("QuestionCount = %v, want 10", cfg.Server.QuestionCount)
	}
	if cfg.Downloader.Format != "bestvideo+bestaudio/best" || cfg.Downloader.MergeFormat != "mp4" {
		t.Errorf("Downloader = %+v", cfg.Downloader)
	}
	if cfg.Watcher.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Watcher.MaxConcurrent)
	}
}

func TestValidateGeminiModels(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{ModelDir: "models"},
		LLM:     LLMConfig{APIKey: "secret", Provider: ProviderGemini},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.LLM.SummaryModel != "gemini-2.5-flash" || cfg.LLM.QuizModel != "gemini-2.5-flash" {
		t.Errorf("LLM = %+v", cfg.LLM)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"

whisper:
  model_dir: "models"
  language: "en"

llm:
  api_key: "from-yaml"

paths:
  temp: "data/temp"

logging:
  level: "debug"
  format: "json"
`)

	t.Setenv("LLM_API_KEY", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelDir != "models" {
		t.Errorf("ModelDir = %v, want %v", cfg.Whisper.ModelDir, "models")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":8080")
	}
	if cfg.LLM.APIKey != "from-yaml" {
		t.Errorf("APIKey = %v, want from-yaml", cfg.LLM.APIKey)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %v, want json", cfg.Logging.Format)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
whisper:
  model_dir: "models"
llm:
  api_key: "from-yaml"
`)

	t.Setenv("LLM_API_KEY", "from-env")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("SERVER_ADDR", ":9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.APIKey != "from-env" {
		t.Errorf("APIKey = %v, want from-env", cfg.LLM.APIKey)
	}
	if cfg.LLM.Provider != ProviderOpenAI {
		t.Errorf("Provider = %v, want openai", cfg.LLM.Provider)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Addr = %v, want :9999", cfg.Server.Addr)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := writeConfig(t, `
whisper:
  model_dir: "models"
`)
	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte("LLM_API_KEY=dotenv-key\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Register for restore, then unset so godotenv can populate it.
	t.Setenv("LLM_API_KEY", "")
	os.Unsetenv("LLM_API_KEY")

	cfg, err := Load(path, envPath, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.APIKey != "dotenv-key" {
		t.Errorf("APIKey = %v, want dotenv-key", cfg.LLM.APIKey)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
