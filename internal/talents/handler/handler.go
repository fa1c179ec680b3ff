package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"agency-server/internal/apierrors"
	"agency-server/internal/observability"
	"agency-server/internal/store"
	"agency-server/internal/talents/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// TalentService is the part of processor.TalentProcessor the handlers use
type TalentService interface {
	Search(ctx context.Context, params processor.SearchParams) ([]store.Creator, error)
	Export(ctx context.Context, params processor.SearchParams, w io.Writer) (int, error)
	History(ctx context.Context, creatorID uuid.UUID) ([]store.UsernameHistory, error)
	ComposeMessage(ctx context.Context, creatorID uuid.UUID, params processor.MessageParams) (processor.MessageResult, error)
}

type Handler struct {
	service TalentService
	logger  *observability.Logger
}

func New(service TalentService, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

// SearchQuery is the talent list filter
type SearchQuery struct {
	Query        string `form:"q"`
	Category     string `form:"category" binding:"omitempty,oneof=gaming entertainment lifestyle education music other"`
	Status       string `form:"status" binding:"omitempty,oneof=active inactive"`
	MinFollowers int64  `form:"min_followers" binding:"gte=0"`
	Limit        int    `form:"limit" binding:"gte=0"`
	Offset       int    `form:"offset" binding:"gte=0"`
}

func (q SearchQuery) params() processor.SearchParams {
	limit := q.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return processor.SearchParams{
		Query:        q.Query,
		Category:     q.Category,
		Status:       q.Status,
		MinFollowers: q.MinFollowers,
		Limit:        limit,
		Offset:       q.Offset,
	}
}

// SendMessageRequest asks for a talent's WhatsApp recap
type SendMessageRequest struct {
	Period string `json:"period" binding:"omitempty,datetime=2006-01"`
	Kind   string `json:"kind" binding:"omitempty,oneof=bonus performance"`
	Send   bool   `json:"send"`
}

type SearchResponse struct {
	Talents []store.Creator `json:"talents"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// HandleSearch lists talents matching the filter
func (h *Handler) HandleSearch(c *gin.Context) {
	ctx := c.Request.Context()

	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	params := q.params()

	talents, err := h.service.Search(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{Talents: talents, Limit: params.Limit, Offset: params.Offset})
}

// HandleExport downloads the filtered talents as an xlsx workbook
func (h *Handler) HandleExport(c *gin.Context) {
	ctx := c.Request.Context()

	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	var buf bytes.Buffer
	count, err := h.service.Export(ctx, q.params(), &buf)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "talent_count", Value: count})
	h.logger.Info(ctx, "talent export generated")

	fileName := fmt.Sprintf("talents-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, xlsxMimeType, buf.Bytes())
}

// HandleHistory lists a talent's username changes
func (h *Handler) HandleHistory(c *gin.Context) {
	ctx := c.Request.Context()

	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid talent id"))
		return
	}

	history, err := h.service.History(ctx, creatorID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// HandleWhatsApp builds a talent's recap message and optionally sends it
func (h *Handler) HandleWhatsApp(c *gin.Context) {
	ctx := c.Request.Context()

	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid talent id"))
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.service.ComposeMessage(ctx, creatorID, processor.MessageParams{
		Period: req.Period,
		Kind:   processor.MessageKind(req.Kind),
		Send:   req.Send,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
