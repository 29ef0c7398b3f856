package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"lifecompass/services"
	"lifecompass/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger installs the shared controller logger.
func SetLogger(l *zap.Logger) {
	log = l
}

// GenerateStrategy handles POST /api/strategy. Identity is optional: a
// valid bearer token scopes the rate limit to the user, otherwise the
// network address is used. The response is a chunked text/plain relay of
// the provider's text deltas, ending with the delimited goals block.
func GenerateStrategy(c *gin.Context) {
	scope, identity := utils.ResolveIdentity(c)

	if !services.RateLimitDisabled() {
		limiter := services.Limiter()
		key := limiter.Key(scope, identity)
		if !limiter.Allow(c.Request.Context(), key) {
			retryAfter := int(limiter.RetryAfter().Seconds())
			log.Info("rate limit exceeded",
				zap.String("key", key),
				zap.String("requestId", c.GetString("requestId")))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. You can generate up to 3 strategies per hour.",
			})
			return
		}
	}

	var answers map[string]string
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	provider := services.Provider()
	if err := provider.Ready(); err != nil {
		// Credential problems are a pre-stream condition: the client gets a
		// definite 500, never a half-open stream.
		log.Error("provider not configured", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Model provider is not configured"})
		return
	}

	prompt := services.BuildPrompt(answers)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	contentChan, errChan := provider.Stream(ctx, services.SystemPrompt, prompt)

	for chunk := range contentChan {
		if _, err := c.Writer.WriteString(chunk); err != nil {
			// Client went away; the context cancellation stops the provider.
			log.Debug("client disconnected mid-stream", zap.Error(err))
			return
		}
		c.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Headers are already sent, so a mid-stream failure is appended as
		// a trailing notice the client can distinguish from clean completion.
		log.Error("provider stream failed", zap.Error(err))
		c.Writer.WriteString("\n\nError generating strategy: " + err.Error())
		c.Writer.Flush()
	}
}
