package services

import (
	"context"
	"fmt"

	"lifecompass/config"

	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
	apiKey string
	model  string
}

func newGeminiProvider(cfg *config.Config) (*geminiProvider, error) {
	clientConfig := &genai.ClientConfig{}
	if cfg.Provider.Gemini.ApiKey != "" {
		clientConfig.APIKey = cfg.Provider.Gemini.ApiKey
	}
	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiProvider{
		client: client,
		apiKey: cfg.Provider.Gemini.ApiKey,
		model:  cfg.Provider.Gemini.Model,
	}, nil
}

func (p *geminiProvider) Ready() error {
	if p.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (p *geminiProvider) Stream(ctx context.Context, systemPrompt, userPrompt string) (<-chan string, <-chan error) {
	contentChan := make(chan string, 100)
	errorChan := make(chan error, 1)

	go func() {
		defer close(contentChan)
		defer close(errorChan)

		if err := p.Ready(); err != nil {
			errorChan <- err
			return
		}

		genConfig := &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemPrompt}},
			},
		}

		for resp, err := range p.client.Models.GenerateContentStream(ctx, p.model, genai.Text(userPrompt), genConfig) {
			if err != nil {
				errorChan <- fmt.Errorf("gemini stream error: %w", err)
				return
			}
			if text := resp.Text(); text != "" {
				select {
				case contentChan <- text:
				case <-ctx.Done():
					errorChan <- ctx.Err()
					return
				}
			}
		}
	}()

	return contentChan, errorChan
}
