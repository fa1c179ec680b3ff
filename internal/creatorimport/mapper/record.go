package mapper

import "time"

// ContentCategory is the creator's content vertical.
type ContentCategory string

const (
	CategoryGaming        ContentCategory = "gaming"
	CategoryEntertainment ContentCategory = "entertainment"
	CategoryLifestyle     ContentCategory = "lifestyle"
	CategoryEducation     ContentCategory = "education"
	CategoryMusic         ContentCategory = "music"
	CategoryOther         ContentCategory = "other"
)

// Categories lists every valid content category.
var Categories = []ContentCategory{
	CategoryGaming, CategoryEntertainment, CategoryLifestyle, CategoryEducation, CategoryMusic, CategoryOther,
}

// Status is the creator's relationship status with the agency.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// CanonicalCreatorRecord is a creator row independent of the export's column naming.
// Optional fields are nil rather than empty strings.
type CanonicalCreatorRecord struct {
	ExternalID       *string         `json:"external_id"`
	Username         *string         `json:"username"`
	FollowerCount    int64           `json:"follower_count"`
	ContentCategory  ContentCategory `json:"content_category"`
	GamePreference   *string         `json:"game_preference"`
	JoinedDate       *time.Time      `json:"joined_date"`
	DaysSinceJoining int64           `json:"days_since_joining"`
	GraduationStatus *string         `json:"graduation_status"`
	Status           Status          `json:"status"`
	ContactLink      *string         `json:"contact_link"`
	ContactPhone     *string         `json:"contact_phone"`
}

// PerformanceRecord is one creator's metrics for a reporting period.
type PerformanceRecord struct {
	ExternalID *string `json:"external_id"`
	Username   *string `json:"username"`
	Diamonds   int64   `json:"diamonds"`
	ValidDays  int64   `json:"valid_days"`
	LiveHours  float64 `json:"live_hours"`
}
