package db

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOwnerFilterScopesBothIdAndOwner(t *testing.T) {
	id := primitive.NewObjectID()
	filter := ownerFilter(id, "user-a")

	if got := filter["_id"]; got != id {
		t.Errorf("Expected _id %v in filter, got %v", id, got)
	}
	if got := filter["userId"]; got != "user-a" {
		t.Errorf("Expected userId user-a in filter, got %v", got)
	}
	if len(filter) != 2 {
		t.Errorf("Expected filter to contain exactly _id and userId, got %v", filter)
	}
}
