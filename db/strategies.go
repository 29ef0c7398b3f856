package db

import (
	"context"
	"fmt"
	"time"

	"lifecompass/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ownerFilter scopes a strategy lookup to its owner. Every read and write
// goes through this so a mismatched owner is indistinguishable from a
// missing record.
func ownerFilter(id primitive.ObjectID, userID string) bson.M {
	return bson.M{"_id": id, "userId": userID}
}

// CreateStrategy inserts an incomplete record holding only the answers.
// The text is attached later via SaveStrategyText.
func CreateStrategy(userID string, answers map[string]string) (string, error) {
	strategy := models.Strategy{
		UserID:     userID,
		Answers:    answers,
		IsComplete: false,
		CreatedAt:  time.Now().Unix(),
	}

	res, err := StrategiesCollection.InsertOne(context.Background(), strategy)
	if err != nil {
		return "", fmt.Errorf("failed to create strategy: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// SaveStrategyText completes a draft with the generated narrative. Returns
// mongo.ErrNoDocuments when the record is missing or owned by someone else.
func SaveStrategyText(id, userID, text string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	update := bson.M{"$set": bson.M{"strategyText": text, "isComplete": true}}
	res, err := StrategiesCollection.UpdateOne(context.Background(), ownerFilter(oid, userID), update)
	if err != nil {
		return fmt.Errorf("failed to save strategy text: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetStrategy fetches a strategy owned by userID. A missing record and an
// owner mismatch both return (nil, nil).
func GetStrategy(id, userID string) (*models.Strategy, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var strategy models.Strategy
	err = StrategiesCollection.FindOne(context.Background(), ownerFilter(oid, userID)).Decode(&strategy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch strategy: %w", err)
	}
	return &strategy, nil
}

// SaveCompleteStrategy inserts a finished strategy in one shot: answers,
// narrative and extracted goals together.
func SaveCompleteStrategy(userID string, answers map[string]string, text string, goals []models.Goal) (string, error) {
	strategy := models.Strategy{
		UserID:       userID,
		Answers:      answers,
		StrategyText: text,
		Goals:        goals,
		IsComplete:   true,
		CreatedAt:    time.Now().Unix(),
	}

	res, err := StrategiesCollection.InsertOne(context.Background(), strategy)
	if err != nil {
		return "", fmt.Errorf("failed to save strategy: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListUserStrategies returns the caller's strategies, newest first.
func ListUserStrategies(userID string) ([]models.Strategy, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := StrategiesCollection.Find(context.Background(), bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}
	defer cursor.Close(context.Background())

	strategies := []models.Strategy{}
	if err := cursor.All(context.Background(), &strategies); err != nil {
		return nil, fmt.Errorf("failed to decode strategies: %w", err)
	}
	return strategies, nil
}
