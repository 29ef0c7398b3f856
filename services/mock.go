package services

import (
	"context"
	"regexp"
	"strings"
)

// mockProvider substitutes a canned, synthetically chunked response for the
// real model call. Selected only through configuration, never by request
// shape, so demo deployments and endpoint tests behave exactly like
// production minus the provider spend.
type mockProvider struct {
	chunkSize int
}

func newMockProvider() *mockProvider {
	return &mockProvider{chunkSize: 48}
}

func (p *mockProvider) Ready() error {
	return nil
}

var promptNameRe = regexp.MustCompile(`- Name: (.+)`)

func (p *mockProvider) Stream(ctx context.Context, systemPrompt, userPrompt string) (<-chan string, <-chan error) {
	contentChan := make(chan string, 100)
	errorChan := make(chan error, 1)

	name := "Your"
	possessive := "Your"
	if m := promptNameRe.FindStringSubmatch(userPrompt); m != nil && m[1] != "Not provided" {
		name = strings.TrimSpace(m[1])
		possessive = name + "'s"
	}

	text := "# " + possessive + ` Life Strategy

## Executive Summary
` + name + ` is in a solid position with clear room to grow. The plan below focuses on **small compounding wins** across health, career and finances.

## Health & Wellness Strategy
- Walk 8,000 steps a day
- Sleep 7-8 hours on a fixed schedule
- Cook at home 5 nights a week

## Career & Skills Strategy
1. Block two hours weekly for deliberate skill practice
2. Ask for a scope increase at the next review

## Financial Strategy
- Automate savings on payday
- Build a 3-month emergency fund before investing

## 90-Day Action Plan
1. Set up automatic transfers this week
2. Schedule a health checkup
3. Draft a learning plan for one new skill

## Key Mindset Shifts
- Progress over perfection
- **Consistency** beats intensity

` + GoalsStartMarker + `
{"goals":[{"id":"goal-1","category":"health","title":"Daily steps","metric":"steps","unit":"steps/day","currentValue":4000,"targetValue":8000,"deadline":"2026-12-01","trackingSources":["phone pedometer"]},{"id":"goal-2","category":"finance","title":"Emergency fund","metric":"savings","unit":"$","currentValue":0,"targetValue":5000,"trackingSources":["bank account"]}]}
` + GoalsEndMarker

	go func() {
		defer close(contentChan)
		defer close(errorChan)

		for i := 0; i < len(text); i += p.chunkSize {
			end := i + p.chunkSize
			if end > len(text) {
				end = len(text)
			}
			select {
			case contentChan <- text[i:end]:
			case <-ctx.Done():
				errorChan <- ctx.Err()
				return
			}
		}
	}()

	return contentChan, errorChan
}
