package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Goal is a single trackable goal parsed from the tail of a generated
// strategy. Values are whatever the model produced; no validation happens
// beyond JSON decoding.
type Goal struct {
	ID              string   `json:"id" bson:"id"`
	Category        string   `json:"category" bson:"category"`
	Title           string   `json:"title" bson:"title"`
	Metric          string   `json:"metric" bson:"metric"`
	Unit            string   `json:"unit" bson:"unit"`
	CurrentValue    float64  `json:"currentValue" bson:"currentValue"`
	TargetValue     float64  `json:"targetValue" bson:"targetValue"`
	Deadline        string   `json:"deadline,omitempty" bson:"deadline,omitempty"`
	TrackingSources []string `json:"trackingSources" bson:"trackingSources"`
}

// Strategy is a saved life strategy. Answers are the raw questionnaire
// fields exactly as submitted; StrategyText is the full streamed narrative
// including the goals block.
type Strategy struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       string             `json:"userId" bson:"userId"`
	Answers      map[string]string  `json:"answers" bson:"answers"`
	StrategyText string             `json:"strategyText,omitempty" bson:"strategyText,omitempty"`
	Goals        []Goal             `json:"goals,omitempty" bson:"goals,omitempty"`
	IsComplete   bool               `json:"isComplete" bson:"isComplete"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
}
