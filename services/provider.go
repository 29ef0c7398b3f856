package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifecompass/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrMissingAPIKey is reported before any bytes are streamed when the
// selected provider has no credential configured.
var ErrMissingAPIKey = errors.New("provider API key is not configured")

// StreamProvider produces incremental text deltas for a strategy request.
// The content channel closes when the stream ends; the error channel
// carries at most one error and also closes.
type StreamProvider interface {
	Ready() error
	Stream(ctx context.Context, systemPrompt, userPrompt string) (<-chan string, <-chan error)
}

var (
	strategyProvider  StreamProvider
	strategyLimiter   *RateLimiter
	rateLimitDisabled bool
	svcLog            *zap.Logger
)

// InitStrategyService wires the provider, the rate limiter and logging from
// configuration. Called once at startup (and from endpoint tests).
func InitStrategyService(cfg *config.Config, log *zap.Logger) error {
	svcLog = log

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	strategyProvider = provider

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	strategyLimiter = NewRateLimiter(rdb, cfg.RateLimit.Budget, window, log)
	rateLimitDisabled = cfg.RateLimit.Disabled
	if rateLimitDisabled {
		log.Warn("rate limiting disabled by configuration")
	}

	log.Info("strategy service initialized", zap.String("provider", cfg.Provider.Name))
	return nil
}

func newProvider(cfg *config.Config) (StreamProvider, error) {
	switch cfg.Provider.Name {
	case "anthropic":
		return newAnthropicProvider(cfg), nil
	case "gemini":
		return newGeminiProvider(cfg)
	case "mock":
		return newMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider.Name)
	}
}

// Provider returns the configured stream provider.
func Provider() StreamProvider {
	return strategyProvider
}

// Limiter returns the configured rate limiter.
func Limiter() *RateLimiter {
	return strategyLimiter
}

// RateLimitDisabled reports the operator bypass flag.
func RateLimitDisabled() bool {
	return rateLimitDisabled
}
