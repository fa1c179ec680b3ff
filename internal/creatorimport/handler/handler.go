package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"agency-server/internal/apierrors"
	"agency-server/internal/creatorimport/processor"
	"agency-server/internal/observability"
	"agency-server/internal/store"

	"github.com/gin-gonic/gin"
)

const defaultMaxUploadBytes = 20 << 20

// ImportService is the part of processor.ImportProcessor the handlers use
type ImportService interface {
	ImportFile(ctx context.Context, kind store.ImportKind, params processor.FileParams) (processor.Summary, error)
	ListRuns(ctx context.Context, limit, offset int) ([]store.ImportAuditLog, error)
}

type Handler struct {
	service        ImportService
	maxUploadBytes int64
	logger         *observability.Logger
}

func New(service ImportService, maxUploadBytes int64, logger *observability.Logger) Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return Handler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// HandleImportCreators imports a creator roster workbook
func (h *Handler) HandleImportCreators(c *gin.Context) {
	h.handleImport(c, store.ImportKindCreators)
}

// HandleImportPerformance imports one month of performance metrics. The period comes from the
// "period" form field.
func (h *Handler) HandleImportPerformance(c *gin.Context) {
	h.handleImport(c, store.ImportKindPerformance)
}

func (h *Handler) handleImport(c *gin.Context, kind store.ImportKind) {
	ctx := c.Request.Context()

	// multipart overhead on top of the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+1<<20)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			apierrors.RespondWithError(c, apierrors.PayloadTooLarge("The uploaded file is too large"))
			return
		}
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeFileRequired, "A workbook must be uploaded in the \"file\" field"))
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		apierrors.RespondWithError(c, apierrors.PayloadTooLarge("The uploaded file is too large"))
		return
	}
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".xlsx", ".xlsm":
	default:
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeUnsupportedFile, "Only .xlsx and .xlsm workbooks are supported"))
		return
	}

	params := processor.FileParams{
		FileName: header.Filename,
		Reader:   file,
		Period:   strings.TrimSpace(c.PostForm("period")),
	}
	if userID, ok := c.Get("User-ID"); ok {
		if s, ok := userID.(string); ok && s != "" {
			params.CreatedBy = &s
		}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "import_kind", Value: string(kind)},
		observability.Field{Key: "file_size", Value: header.Size},
	)
	h.logger.Info(ctx, "import upload received")

	summary, err := h.service.ImportFile(ctx, kind, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HandleListRuns lists recent import runs, newest first
func (h *Handler) HandleListRuns(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "limit must be a number"))
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "offset must be a number"))
		return
	}

	runs, err := h.service.ListRuns(ctx, limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
