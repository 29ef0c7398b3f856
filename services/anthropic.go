package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lifecompass/config"
)

const anthropicBaseURL = "https://api.anthropic.com/v1"

type anthropicProvider struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
	Stream      bool               `json:"stream"`
}

func newAnthropicProvider(cfg *config.Config) *anthropicProvider {
	baseURL := cfg.Provider.Anthropic.BaseURL
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	return &anthropicProvider{
		apiKey:    cfg.Provider.Anthropic.ApiKey,
		baseURL:   baseURL,
		model:     cfg.Provider.Anthropic.Model,
		maxTokens: cfg.Provider.Anthropic.MaxTokens,
		httpClient: &http.Client{
			Timeout: 10 * time.Minute,
		},
	}
}

func (p *anthropicProvider) Ready() error {
	if p.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Stream opens a streaming Messages request and relays text deltas as they
// arrive. Only content_block_delta/text_delta events carry narrative text;
// the rest of the event vocabulary is ignored.
func (p *anthropicProvider) Stream(ctx context.Context, systemPrompt, userPrompt string) (<-chan string, <-chan error) {
	contentChan := make(chan string, 100)
	errorChan := make(chan error, 1)

	go func() {
		defer close(contentChan)
		defer close(errorChan)

		if err := p.Ready(); err != nil {
			errorChan <- err
			return
		}

		reqBody := anthropicRequest{
			Model:     p.model,
			MaxTokens: p.maxTokens,
			System:    systemPrompt,
			Messages: []anthropicMessage{
				{Role: "user", Content: userPrompt},
			},
			Temperature: 1.0,
			Stream:      true,
		}

		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			errorChan <- fmt.Errorf("failed to marshal request: %w", err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/messages", bytes.NewReader(jsonData))
		if err != nil {
			errorChan <- fmt.Errorf("failed to create request: %w", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", p.apiKey)
		req.Header.Set("anthropic-version", "2023-06-01")
		req.Header.Set("Accept", "text/event-stream")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			errorChan <- fmt.Errorf("request failed: %w", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			errorChan <- fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}

			var evt struct {
				Type  string `json:"type"`
				Delta *struct {
					Type string `json:"type"`
					Text string `json:"text,omitempty"`
				} `json:"delta,omitempty"`
				Error *struct {
					Type    string `json:"type"`
					Message string `json:"message"`
				} `json:"error,omitempty"`
			}
			if err := json.Unmarshal([]byte(data), &evt); err != nil {
				continue
			}
			if evt.Error != nil {
				errorChan <- fmt.Errorf("API error: %s", evt.Error.Message)
				return
			}
			if evt.Type == "content_block_delta" && evt.Delta != nil && evt.Delta.Text != "" {
				select {
				case contentChan <- evt.Delta.Text:
				case <-ctx.Done():
					errorChan <- ctx.Err()
					return
				}
			}
		}
		if err := scanner.Err(); err != nil {
			errorChan <- fmt.Errorf("stream error: %w", err)
		}
	}()

	return contentChan, errorChan
}
