package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Creator is a stored talent row.
type Creator struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	ExternalID       *string    `db:"external_id" json:"external_id"`
	Username         string     `db:"username" json:"username"`
	FollowerCount    int64      `db:"follower_count" json:"follower_count"`
	ContentCategory  string     `db:"content_category" json:"content_category"`
	GamePreference   *string    `db:"game_preference" json:"game_preference"`
	JoinedDate       *time.Time `db:"joined_date" json:"joined_date"`
	DaysSinceJoining int64      `db:"days_since_joining" json:"days_since_joining"`
	GraduationStatus *string    `db:"graduation_status" json:"graduation_status"`
	Status           string     `db:"status" json:"status"`
	ContactLink      *string    `db:"contact_link" json:"contact_link"`
	ContactPhone     *string    `db:"contact_phone" json:"contact_phone"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// UsernameHistory records one observed username change.
type UsernameHistory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CreatorID   uuid.UUID `db:"creator_id" json:"creator_id"`
	OldUsername string    `db:"old_username" json:"old_username"`
	NewUsername string    `db:"new_username" json:"new_username"`
	ChangedAt   time.Time `db:"changed_at" json:"changed_at"`
}

// ImportRowError is a rejected row kept in the audit log.
type ImportRowError struct {
	RowNumber int               `json:"row_number"`
	Values    map[string]string `json:"values,omitempty"`
	Errors    []string          `json:"errors"`
}

// ImportRowErrors is stored as a JSONB array.
type ImportRowErrors []ImportRowError

// Value implements the driver.Valuer interface for ImportRowErrors
func (e ImportRowErrors) Value() (driver.Value, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e)
}

// Scan implements the sql.Scanner interface for ImportRowErrors
func (e *ImportRowErrors) Scan(value interface{}) error {
	if value == nil {
		*e = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for ImportRowErrors: %T", value)
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		*e = nil
		return nil
	}
	return json.Unmarshal(bytes, (*[]ImportRowError)(e))
}

// ImportKind names which export an import run ingested.
type ImportKind string

const (
	ImportKindCreators    ImportKind = "creators"
	ImportKindPerformance ImportKind = "performance"
)

// ImportAuditLog summarizes one import run.
type ImportAuditLog struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	Kind           ImportKind      `db:"kind" json:"kind"`
	FileName       string          `db:"file_name" json:"file_name"`
	Period         *string         `db:"period" json:"period,omitempty"`
	TotalRows      int             `db:"total_rows" json:"total_rows"`
	ValidCount     int             `db:"valid_count" json:"valid_count"`
	InvalidCount   int             `db:"invalid_count" json:"invalid_count"`
	FilteredCount  int             `db:"filtered_count" json:"filtered_count"`
	InvalidSamples ImportRowErrors `db:"invalid_samples" json:"invalid_samples"`
	CreatedBy      *string         `db:"created_by" json:"created_by,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// BonusRules is the operator-edited tier table. There is a single row.
type BonusRules struct {
	AMinDays         int             `db:"a_min_days"`
	AMinHours        decimal.Decimal `db:"a_min_hours"`
	ABonusPercentage decimal.Decimal `db:"a_bonus_percentage"`
	BMinDays         int             `db:"b_min_days"`
	BMinHours        decimal.Decimal `db:"b_min_hours"`
	BBonusPercentage decimal.Decimal `db:"b_bonus_percentage"`
	CMinDays         int             `db:"c_min_days"`
	CMinHours        decimal.Decimal `db:"c_min_hours"`
	CBonusPercentage decimal.Decimal `db:"c_bonus_percentage"`
	ExchangeRate     decimal.Decimal `db:"exchange_rate"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// CreatorPerformance is a creator's metrics for one period, joined with the creator's identity.
type CreatorPerformance struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	CreatorID    uuid.UUID       `db:"creator_id" json:"creator_id"`
	Username     string          `db:"username" json:"username"`
	ExternalID   *string         `db:"external_id" json:"external_id"`
	ContactPhone *string         `db:"contact_phone" json:"contact_phone"`
	Period       string          `db:"period" json:"period"`
	Diamonds     int64           `db:"diamonds" json:"diamonds"`
	ValidDays    int             `db:"valid_days" json:"valid_days"`
	LiveHours    decimal.Decimal `db:"live_hours" json:"live_hours"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}
