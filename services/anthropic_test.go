package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifecompass/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseServer(t *testing.T, events []string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.NotEmpty(t, r.Header.Get("x-api-key"))

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, evt := range events {
			fmt.Fprintf(w, "data: %s\n\n", evt)
			flusher.Flush()
		}
	}))
}

func anthropicTestConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Provider.Name = "anthropic"
	cfg.Provider.Anthropic.ApiKey = "test-key"
	cfg.Provider.Anthropic.BaseURL = baseURL
	cfg.Provider.Anthropic.Model = "claude-sonnet-4-20250514"
	cfg.Provider.Anthropic.MaxTokens = 1024
	return cfg
}

func collect(contentChan <-chan string, errChan <-chan error) (string, error) {
	var sb strings.Builder
	for chunk := range contentChan {
		sb.WriteString(chunk)
	}
	return sb.String(), <-errChan
}

func TestAnthropicStreamRelaysTextDeltasInOrder(t *testing.T) {
	srv := sseServer(t, []string{
		`{"type":"message_start","message":{}}`,
		`{"type":"content_block_delta","delta":{"type":"text_delta","text":"Hello "}}`,
		`{"type":"content_block_delta","delta":{"type":"text_delta","text":"world"}}`,
		`{"type":"content_block_stop"}`,
		`{"type":"message_stop"}`,
	})
	defer srv.Close()

	p := newAnthropicProvider(anthropicTestConfig(srv.URL))
	text, err := collect(p.Stream(context.Background(), "system", "user"))
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text, "non-delta events must be ignored, deltas kept in order")
}

func TestAnthropicStreamErrorEventSurfacesAfterPartialContent(t *testing.T) {
	srv := sseServer(t, []string{
		`{"type":"content_block_delta","delta":{"type":"text_delta","text":"partial"}}`,
		`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`,
	})
	defer srv.Close()

	p := newAnthropicProvider(anthropicTestConfig(srv.URL))
	text, err := collect(p.Stream(context.Background(), "system", "user"))
	assert.Equal(t, "partial", text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Overloaded")
}

func TestAnthropicStreamNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := newAnthropicProvider(anthropicTestConfig(srv.URL))
	text, err := collect(p.Stream(context.Background(), "system", "user"))
	assert.Empty(t, text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestAnthropicReadyWithoutKey(t *testing.T) {
	cfg := anthropicTestConfig("")
	cfg.Provider.Anthropic.ApiKey = ""
	p := newAnthropicProvider(cfg)
	assert.ErrorIs(t, p.Ready(), ErrMissingAPIKey)
}
