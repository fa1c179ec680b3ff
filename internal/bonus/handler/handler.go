package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"agency-server/internal/apierrors"
	"agency-server/internal/bonus/calculator"
	"agency-server/internal/bonus/processor"
	"agency-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BonusService is the part of processor.BonusProcessor the handlers use
type BonusService interface {
	GetRules(ctx context.Context) (calculator.Rules, error)
	UpdateRules(ctx context.Context, rules calculator.Rules) (calculator.Rules, error)
	Report(ctx context.Context, period string) (processor.Report, error)
	Lookup(ctx context.Context, username, period string) (processor.Line, error)
}

type Handler struct {
	service BonusService
	logger  *observability.Logger
}

func New(service BonusService, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

// LookupQuery is the self-service bonus lookup
type LookupQuery struct {
	Username string `form:"username" binding:"required"`
	Period   string `form:"period"`
}

// LookupResponse leaves out contact details and internal IDs.
type LookupResponse struct {
	Username     string          `json:"username"`
	Period       string          `json:"period"`
	Diamonds     int64           `json:"diamonds"`
	ValidDays    int64           `json:"valid_days"`
	LiveHours    decimal.Decimal `json:"live_hours"`
	Tier         calculator.Tier `json:"tier"`
	EstimatedUSD decimal.Decimal `json:"estimated_usd"`
	Amount       int64           `json:"amount"`
}

// HandleGetRules returns the current tier table
func (h *Handler) HandleGetRules(c *gin.Context) {
	ctx := c.Request.Context()

	rules, err := h.service.GetRules(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// HandleUpdateRules replaces the tier table
func (h *Handler) HandleUpdateRules(c *gin.Context) {
	ctx := c.Request.Context()

	var req calculator.Rules
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	rules, err := h.service.UpdateRules(ctx, req)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// HandleReport prices every creator for the requested period
func (h *Handler) HandleReport(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.service.Report(ctx, c.Query("period"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleLookup is the public calculator a creator uses to check their own bonus
func (h *Handler) HandleLookup(c *gin.Context) {
	ctx := c.Request.Context()

	var q LookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	line, err := h.service.Lookup(ctx, q.Username, q.Period)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, LookupResponse{
		Username:     line.Username,
		Period:       line.Period,
		Diamonds:     line.Diamonds,
		ValidDays:    line.ValidDays,
		LiveHours:    line.LiveHours,
		Tier:         line.Tier,
		EstimatedUSD: line.EstimatedUSD,
		Amount:       line.Amount,
	})
}
