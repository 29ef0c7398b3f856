package controllers

import (
	"net/http"

	"lifecompass/db"
	"lifecompass/markdown"
	"lifecompass/models"
	"lifecompass/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type SaveStrategyRequest struct {
	Answers      map[string]string `json:"answers" binding:"required"`
	StrategyText string            `json:"strategyText" binding:"required"`
	Goals        []models.Goal     `json:"goals"`
}

type CreateDraftRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

type SaveTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// SaveStrategy stores a completed strategy in one shot. When the client
// did not extract goals itself, they are parsed out of the text here.
func SaveStrategy(c *gin.Context) {
	userID := c.GetString("userId")

	var req SaveStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	goals := req.Goals
	if goals == nil {
		goals = services.ExtractGoals(req.StrategyText)
	}

	id, err := db.SaveCompleteStrategy(userID, req.Answers, req.StrategyText, goals)
	if err != nil {
		log.Error("failed to save strategy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save strategy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// CreateDraft starts the historical two-step flow: answers first, text
// attached after generation.
func CreateDraft(c *gin.Context) {
	userID := c.GetString("userId")

	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	id, err := db.CreateStrategy(userID, req.Answers)
	if err != nil {
		log.Error("failed to create draft strategy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create strategy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// SaveText completes a draft. An unknown id and someone else's id are the
// same "not found" to the caller.
func SaveText(c *gin.Context) {
	userID := c.GetString("userId")

	var req SaveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	err := db.SaveStrategyText(c.Param("id"), userID, req.Text)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Strategy not found"})
		return
	}
	if err != nil {
		log.Error("failed to save strategy text", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save strategy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetStrategy returns one saved strategy. With ?format=blocks the narrative
// is also rendered into display blocks, goals block stripped.
func GetStrategy(c *gin.Context) {
	userID := c.GetString("userId")

	strategy, err := db.GetStrategy(c.Param("id"), userID)
	if err != nil {
		log.Error("failed to fetch strategy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch strategy"})
		return
	}
	if strategy == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Strategy not found"})
		return
	}

	if c.Query("format") == "blocks" {
		narrative := services.StripGoalsBlock(strategy.StrategyText)
		c.JSON(http.StatusOK, gin.H{
			"strategy": strategy,
			"blocks":   markdown.Render(narrative),
		})
		return
	}

	c.JSON(http.StatusOK, strategy)
}

// ListStrategies returns the caller's saved strategies, newest first.
func ListStrategies(c *gin.Context) {
	userID := c.GetString("userId")

	strategies, err := db.ListUserStrategies(userID)
	if err != nil {
		log.Error("failed to list strategies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list strategies"})
		return
	}

	c.JSON(http.StatusOK, strategies)
}
