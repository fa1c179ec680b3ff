package processor

import (
	"errors"
	"fmt"
	"io"
	"time"

	"agency-server/internal/creatorimport/workbook"
	"agency-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrStoreUnavailable  = errors.New("persistence service unavailable")
	ErrInvalidPeriod     = errors.New("period must be formatted as YYYY-MM")
	ErrUnknownImportKind = errors.New("unknown import kind")
	ErrInvalidNullPolicy = errors.New("null policy must be keep or clear")
	ErrCreatorNotFound   = errors.New("creator not found")
)

// NullPolicy decides what an update does with optional fields that are empty in the incoming row.
type NullPolicy string

const (
	// NullPolicyKeep leaves the stored value in place.
	NullPolicyKeep NullPolicy = "keep"
	// NullPolicyClear overwrites the stored value with NULL.
	NullPolicyClear NullPolicy = "clear"
)

func ParseNullPolicy(s string) (NullPolicy, error) {
	switch NullPolicy(s) {
	case NullPolicyKeep, "":
		return NullPolicyKeep, nil
	case NullPolicyClear:
		return NullPolicyClear, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidNullPolicy, s)
}

const defaultErrorSampleLimit = 10

// Config tunes an ImportProcessor.
type Config struct {
	NullPolicy NullPolicy
	// ErrorSampleLimit caps how many rejected rows a summary carries. Counting continues past it.
	ErrorSampleLimit int
	NetworkManager   string
}

// RunParams describes one batch of already-read rows.
type RunParams struct {
	FileName string
	Rows     []workbook.DataRow
	// FilteredCount is the number of rows the reader dropped before mapping; it is reported, not counted.
	FilteredCount int
	CreatedBy     *string
	// Progress, when set, is called after every row with the number of rows handled so far.
	Progress func(done, total int)
}

// PerformanceRunParams is a RunParams for a monthly performance export.
type PerformanceRunParams struct {
	RunParams
	Period string
}

// FileParams describes an uploaded workbook.
type FileParams struct {
	FileName  string
	Reader    io.Reader
	Period    string
	CreatedBy *string
	Progress  func(done, total int)
}

// RowError is a rejected row with its sheet row number and reasons.
type RowError struct {
	RowNumber int             `json:"row_number"`
	Values    workbook.RawRow `json:"values"`
	Errors    []string        `json:"errors"`
	Record    interface{}     `json:"record,omitempty"`
}

// Summary is the outcome of one import run.
type Summary struct {
	Kind            store.ImportKind `json:"kind"`
	FileName        string           `json:"file_name"`
	Period          string           `json:"period,omitempty"`
	TotalRows       int              `json:"total_rows"`
	ValidCount      int              `json:"valid_count"`
	InvalidCount    int              `json:"invalid_count"`
	FilteredCount   int              `json:"filtered_count"`
	Inserted        int              `json:"inserted"`
	Updated         int              `json:"updated"`
	UsernameChanges int              `json:"username_changes"`
	ErrorSamples    []RowError       `json:"error_samples"`
	AuditLogID      *uuid.UUID       `json:"audit_log_id,omitempty"`
	CompletedAt     time.Time        `json:"completed_at"`
}
