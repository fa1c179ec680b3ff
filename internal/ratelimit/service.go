package ratelimit

import (
	"context"
	"fmt"
	"time"

	"agency-server/internal/observability"

	"github.com/google/uuid"
)

const window = time.Minute

// Window is the sorted-set storage behind the sliding window
type Window interface {
	IsEnabled() bool
	ZRemRangeByScore(ctx context.Context, key string, min, max int64) error
	ZCard(ctx context.Context, key string) (int64, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZOldestScore(ctx context.Context, key string) (float64, bool, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits requests per key within a one minute sliding window
type Service struct {
	window Window
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a limiter allowing perMinute requests per key. A nil or disabled window
// turns limiting off.
func NewService(w Window, perMinute int, logger *observability.Logger) *Service {
	return &Service{
		window: w,
		limit:  perMinute,
		logger: logger,
		now:    time.Now,
	}
}

// Enabled reports whether requests are being limited
func (s *Service) Enabled() bool {
	return s.window != nil && s.window.IsEnabled() && s.limit > 0
}

// CheckRateLimit records a request for key and reports whether it fits the window
func (s *Service) CheckRateLimit(ctx context.Context, key string) (RateLimitResult, error) {
	if !s.Enabled() {
		return RateLimitResult{Allowed: true}, nil
	}

	redisKey := "rl:" + key
	now := s.now()
	nowMs := now.UnixMilli()

	if err := s.window.ZRemRangeByScore(ctx, redisKey, 0, now.Add(-window).UnixMilli()); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.window.ZCard(ctx, redisKey)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		result := RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			ResetAt:      now.Add(window),
			RetryAfterMs: int(window.Milliseconds()),
		}
		oldest, ok, err := s.window.ZOldestScore(ctx, redisKey)
		if err != nil || !ok {
			return result, nil
		}
		result.ResetAt = time.UnixMilli(int64(oldest)).Add(window)
		retryAfter := result.ResetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		result.RetryAfterMs = int(retryAfter.Milliseconds())
		return result, nil
	}

	// members must be unique or same-millisecond requests collapse into one
	member := fmt.Sprintf("%d-%s", nowMs, uuid.NewString())
	if err := s.window.ZAdd(ctx, redisKey, float64(nowMs), member); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := s.window.Expire(ctx, redisKey, 2*window); err != nil {
		s.logger.InfoWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
