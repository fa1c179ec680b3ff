package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strings"

	"agency-server/internal/apierrors"
	"agency-server/internal/auth/processor"
	"agency-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// TokenValidator checks admin bearer tokens
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
}

type Handler struct {
	authProcessor TokenValidator
	logger        *observability.Logger
}

func New(authProcessor TokenValidator, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware rejects requests without a valid bearer token and stores the token
// subject under "User-ID".
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(ctx, strings.TrimPrefix(tokenHeader, "Bearer "))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	sub, _ := claims.GetSubject()
	c.Set("User-ID", sub)
	c.Request = c.Request.WithContext(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: sub}))
	c.Next()
}

// HandleMe echoes the authenticated operator
func (h *Handler) HandleMe(c *gin.Context) {
	user, ok := c.Get("User-ID")
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": user})
}
