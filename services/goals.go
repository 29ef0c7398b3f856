package services

import (
	"encoding/json"
	"strings"

	"lifecompass/models"
)

// ExtractGoals pulls the delimited goals JSON out of the tail of a
// completed stream. The narrative is still valuable without goals, so any
// parse failure degrades to an empty list instead of an error.
func ExtractGoals(text string) []models.Goal {
	start := strings.Index(text, GoalsStartMarker)
	if start == -1 {
		return []models.Goal{}
	}

	payload := text[start+len(GoalsStartMarker):]
	if end := strings.Index(payload, GoalsEndMarker); end != -1 {
		payload = payload[:end]
	}
	payload = strings.TrimSpace(payload)

	var parsed struct {
		Goals []models.Goal `json:"goals"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return []models.Goal{}
	}
	if parsed.Goals == nil {
		return []models.Goal{}
	}
	return parsed.Goals
}

// StripGoalsBlock returns the narrative portion of a completed stream,
// without the trailing goals block.
func StripGoalsBlock(text string) string {
	if i := strings.Index(text, GoalsStartMarker); i != -1 {
		return text[:i]
	}
	return text
}
