package apierrors

import (
	"errors"

	bonusProcessor "agency-server/internal/bonus/processor"
	"agency-server/internal/bonus/calculator"
	"agency-server/internal/clients/whatsapp"
	importProcessor "agency-server/internal/creatorimport/processor"
	"agency-server/internal/creatorimport/workbook"
	"agency-server/internal/messaging"
	"agency-server/internal/store"
	talentsProcessor "agency-server/internal/talents/processor"
)

// MapError converts domain/processor errors to APIErrors.
//
// An error that already is an APIError is returned as-is. Unknown errors become a sanitized
// InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Import errors
	case errors.Is(err, importProcessor.ErrStoreUnavailable):
		return ServiceUnavailable(CodeStoreUnavailable, "The database is unreachable. The import was not started.", err)
	case errors.Is(err, importProcessor.ErrInvalidPeriod),
		errors.Is(err, bonusProcessor.ErrInvalidPeriod):
		return BadRequest(CodeInvalidPeriod, "period must be formatted as YYYY-MM")
	case errors.Is(err, importProcessor.ErrUnknownImportKind):
		return BadRequest(CodeUnknownImportKind, "Unknown import kind. Valid values: creators, performance")
	case errors.Is(err, workbook.ErrUnreadableWorkbook):
		return BadRequest(CodeUnreadableFile, "The uploaded file could not be read as an Excel workbook")
	case errors.Is(err, workbook.ErrNoWorksheet):
		return BadRequest(CodeUnreadableFile, "The uploaded workbook has no worksheets")

	// Bonus errors
	case errors.Is(err, calculator.ErrInvalidRules):
		return BadRequest(CodeInvalidRules, err.Error())
	case errors.Is(err, bonusProcessor.ErrUsernameRequired):
		return BadRequest(CodeUsernameRequired, "username is required")
	case errors.Is(err, bonusProcessor.ErrPerformanceNotFound):
		return NotFound(CodePerformanceMissing, "No performance data found for this creator and period")

	// Talent and messaging errors
	case errors.Is(err, talentsProcessor.ErrTalentNotFound):
		return NotFound(CodeTalentNotFound, "Talent not found")
	case errors.Is(err, talentsProcessor.ErrInvalidFilter),
		errors.Is(err, talentsProcessor.ErrInvalidMessageKind):
		return BadRequest(CodeInvalidInput, err.Error())
	case errors.Is(err, talentsProcessor.ErrMissingPhone):
		return BadRequest(CodeInvalidPhone, "Talent has no contact phone")
	case errors.Is(err, messaging.ErrInvalidPhone):
		return BadRequest(CodeInvalidPhone, "Talent contact phone is not a valid number")
	case errors.Is(err, whatsapp.ErrWhatsAppDisabled):
		return ServiceUnavailable(CodeWhatsAppDisabled, "WhatsApp delivery is not configured. Use the link instead.", err)
	case errors.Is(err, whatsapp.ErrSendFailed):
		return ServiceUnavailable(CodeWhatsAppError, "WhatsApp service is temporarily unavailable. Please try again later.", err)

	// Store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrStaleWrite):
		return Conflict(CodeConflict, "The record was changed by another request. Please retry.")

	default:
		return InternalError(err)
	}
}
