package services

import "testing"

func TestExtractGoalsValidBlock(t *testing.T) {
	text := "## Strategy\nSome narrative.\n" + GoalsStartMarker + `
{"goals":[{"id":"g1","category":"health","title":"Walk more","metric":"steps","unit":"steps/day","currentValue":4000,"targetValue":10000,"deadline":"2026-12-31","trackingSources":["pedometer"]}]}
` + GoalsEndMarker

	goals := ExtractGoals(text)
	if len(goals) != 1 {
		t.Fatalf("Expected 1 goal, got %d", len(goals))
	}
	g := goals[0]
	if g.ID != "g1" || g.Category != "health" || g.Title != "Walk more" {
		t.Errorf("Unexpected goal fields: %+v", g)
	}
	if g.CurrentValue != 4000 || g.TargetValue != 10000 {
		t.Errorf("Unexpected goal values: %+v", g)
	}
	if g.Deadline != "2026-12-31" {
		t.Errorf("Unexpected deadline: %s", g.Deadline)
	}
	if len(g.TrackingSources) != 1 || g.TrackingSources[0] != "pedometer" {
		t.Errorf("Unexpected tracking sources: %v", g.TrackingSources)
	}
}

func TestExtractGoalsWithoutEndMarker(t *testing.T) {
	text := "narrative\n" + GoalsStartMarker + "\n" + `{"goals":[{"id":"g1","category":"money","title":"Save","metric":"balance","unit":"$","currentValue":0,"targetValue":5000,"trackingSources":[]}]}`
	goals := ExtractGoals(text)
	if len(goals) != 1 {
		t.Fatalf("Expected marker-to-end extraction to work, got %d goals", len(goals))
	}
}

func TestExtractGoalsMalformedJSON(t *testing.T) {
	text := "narrative\n" + GoalsStartMarker + "\n{not json at all\n" + GoalsEndMarker
	goals := ExtractGoals(text)
	if goals == nil {
		t.Fatal("Expected empty list, got nil")
	}
	if len(goals) != 0 {
		t.Errorf("Expected empty list on malformed JSON, got %d", len(goals))
	}
}

func TestExtractGoalsNoMarker(t *testing.T) {
	if goals := ExtractGoals("just a narrative"); len(goals) != 0 {
		t.Errorf("Expected no goals without a marker, got %d", len(goals))
	}
}

func TestStripGoalsBlock(t *testing.T) {
	text := "narrative text\n" + GoalsStartMarker + "\n{}\n" + GoalsEndMarker
	if got := StripGoalsBlock(text); got != "narrative text\n" {
		t.Errorf("Expected narrative only, got %q", got)
	}
	if got := StripGoalsBlock("plain"); got != "plain" {
		t.Errorf("Expected passthrough without marker, got %q", got)
	}
}
