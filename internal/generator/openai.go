package generator

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// TogetherBaseURL is the OpenAI-compatible endpoint of Together AI.
const TogetherBaseURL = "https://api.together.xyz/v1"

type openAICompleter struct {
	client *openai.Client
}

// NewOpenAICompleter talks to any OpenAI-compatible chat completion API.
// An empty baseURL keeps the go-openai default (api.openai.com).
func NewOpenAICompleter(apiKey, baseURL string) Completer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAICompleter{client: openai.NewClientWithConfig(cfg)}
}

func (c *openAICompleter) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
