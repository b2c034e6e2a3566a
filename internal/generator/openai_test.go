package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
)

func TestOpenAICompleter(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"hello there"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewOpenAICompleter("test-key", srv.URL)
	text, err := c.Complete(context.Background(), Request{
		Model:       "m",
		System:      "sys",
		Prompt:      "hi",
		Temperature: 0.4,
		MaxTokens:   800,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)

	assert.Equal(t, "m", got["model"])
	assert.EqualValues(t, 800, got["max_tokens"])
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestOpenAICompleterOmitsEmptySystem(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAICompleter("k", srv.URL).Complete(context.Background(), Request{Model: "m", Prompt: "p"})
	require.NoError(t, err)

	messages := got["messages"].([]any)
	assert.Len(t, messages, 1)
	_, hasMax := got["max_tokens"]
	assert.False(t, hasMax)
}

func TestOpenAICompleterAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAICompleter("bad", srv.URL).Complete(context.Background(), Request{Model: "m", Prompt: "p"})
	require.Error(t, err)
}

func TestOpenAICompleterNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAICompleter("k", srv.URL).Complete(context.Background(), Request{Model: "m", Prompt: "p"})
	require.Error(t, err)
}

func TestNewCompleter(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: config.ProviderTogether, APIKey: "k"}}
	c, err := NewCompleter(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &openAICompleter{}, c)

	cfg.LLM.Provider = "unknown"
	_, err = NewCompleter(context.Background(), cfg)
	assert.Error(t, err)
}
