package generator

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
)

// NewCompleter builds the Completer for the configured provider.
func NewCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	switch cfg.LLM.Provider {
	case config.ProviderTogether, "":
		baseURL := cfg.LLM.BaseURL
		if baseURL == "" {
			baseURL = TogetherBaseURL
		}
		return NewOpenAICompleter(cfg.LLM.APIKey, baseURL), nil
	case config.ProviderOpenAI:
		return NewOpenAICompleter(cfg.LLM.APIKey, cfg.LLM.BaseURL), nil
	case config.ProviderGemini:
		return NewGeminiCompleter(ctx, cfg.LLM.APIKey)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.LLM.Provider)
	}
}
