package services

import (
	"strings"
	"testing"
)

func TestBuildPromptAlwaysContainsGoalsMarker(t *testing.T) {
	inputs := []map[string]string{
		{},
		{"name": "Alice"},
		{"name": "Bob", "age": "30", "weight": "180", "weightUnit": "lbs"},
		{"monthlySavings": "500", "heightFt": "5", "heightIn": "10"},
	}
	for _, data := range inputs {
		if !strings.Contains(BuildPrompt(data), GoalsStartMarker) {
			t.Errorf("Prompt for %v missing goals marker", data)
		}
	}
}

func TestBuildPromptEmptyAnswers(t *testing.T) {
	prompt := BuildPrompt(map[string]string{})

	for _, want := range []string{
		"Name: Not provided",
		"Age: Not provided",
		"Height: Not provided",
		"Weight: Not provided",
		"Sleep: Not provided",
		"this person",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected %q in empty-answers prompt", want)
		}
	}
}

func TestBuildPromptHeight(t *testing.T) {
	prompt := BuildPrompt(map[string]string{"heightFt": "5", "heightIn": "10"})
	if !strings.Contains(prompt, `5'10"`) {
		t.Errorf("Expected 5'10\" in prompt")
	}

	prompt = BuildPrompt(map[string]string{"heightFt": "6"})
	if !strings.Contains(prompt, `6'0"`) {
		t.Errorf("Expected missing inches to default to 0")
	}

	// Inches without feet is documented to read as not provided.
	prompt = BuildPrompt(map[string]string{"heightIn": "5"})
	if !strings.Contains(prompt, "Height: Not provided") {
		t.Errorf("Expected heightIn alone to yield Not provided")
	}
}

func TestBuildPromptFieldFormats(t *testing.T) {
	prompt := BuildPrompt(map[string]string{
		"monthlySavings":     "500",
		"careerSatisfaction": "7",
		"yearsExperience":    "12",
		"sleepHours":         "8",
		"dailySteps":         "6000",
		"weight":             "150",
		"weightUnit":         "lbs",
	})

	for _, want := range []string{
		"$500/month",
		"7/10",
		"12 years",
		"8 hours/night",
		"6000 steps/day",
		"150 lbs",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected %q in prompt", want)
		}
	}
}

func TestBuildPromptWeightUnitDefaultsEmpty(t *testing.T) {
	prompt := BuildPrompt(map[string]string{"weight": "150"})
	if !strings.Contains(prompt, "Weight: 150 \n") {
		t.Errorf("Expected weight with empty unit, prompt was:\n%s", prompt)
	}
}

func TestBuildPromptClosingSentenceUsesName(t *testing.T) {
	prompt := BuildPrompt(map[string]string{"name": "Alice"})
	if !strings.Contains(prompt, "help Alice progress") {
		t.Errorf("Expected closing sentence to reference Alice")
	}
}

func TestSystemPromptInstructsDelimitedGoalsBlock(t *testing.T) {
	if !strings.Contains(SystemPrompt, GoalsStartMarker) || !strings.Contains(SystemPrompt, GoalsEndMarker) {
		t.Errorf("System prompt must name both goal markers")
	}
}
