package ratelimit

import (
	"fmt"

	"agency-server/internal/apierrors"
	"agency-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP under the given scope
func (s *Service) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ip := observability.GetRealClientIP(c)
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "client_ip", Value: ip},
		)

		result, err := s.CheckRateLimit(ctx, scope+":"+ip)
		if err != nil {
			// fail open
			s.logger.Error(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			), "rate limit exceeded")
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Too many lookups. Please wait a minute and try again."))
			return
		}

		c.Next()
	}
}
