package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreatorParams carries the canonical fields written on insert and update.
type CreatorParams struct {
	ExternalID       *string
	Username         string
	FollowerCount    int64
	ContentCategory  string
	GamePreference   *string
	JoinedDate       *time.Time
	DaysSinceJoining int64
	GraduationStatus *string
	Status           string
	ContactLink      *string
	ContactPhone     *string
}

// UpdateCreatorParams updates a creator only if it is unchanged since ExpectedUpdatedAt.
type UpdateCreatorParams struct {
	CreatorParams
	ExpectedUpdatedAt time.Time
	// ClearNulls writes nil optional fields as NULL instead of keeping the stored value.
	ClearNulls bool
}

// ListCreatorsParams filters creators. Zero values disable a filter.
type ListCreatorsParams struct {
	Category     string
	Status       string
	MinFollowers int64
	Limit        int
	Offset       int
}

const creatorColumns = `id, external_id, username, follower_count, content_category, game_preference, joined_date, days_since_joining, graduation_status, status, contact_link, contact_phone, created_at, updated_at`

const sqlGetCreatorByID = `
SELECT ` + creatorColumns + `
FROM creators
WHERE id = $1
`

// GetCreatorByID retrieves a creator by ID
func (s *Store) GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (Creator, error) {
	var creator Creator
	err := s.db.GetContext(ctx, &creator, sqlGetCreatorByID, creatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Creator{}, ErrNotFound
		}
		return Creator{}, fmt.Errorf("failed to get creator by id: %w", err)
	}
	return creator, nil
}

const sqlGetCreatorByExternalID = `
SELECT ` + creatorColumns + `
FROM creators
WHERE external_id = $1
`

// GetCreatorByExternalID retrieves a creator by the source system's creator ID
func (s *Store) GetCreatorByExternalID(ctx context.Context, externalID string) (Creator, error) {
	var creator Creator
	err := s.db.GetContext(ctx, &creator, sqlGetCreatorByExternalID, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Creator{}, ErrNotFound
		}
		return Creator{}, fmt.Errorf("failed to get creator by external id: %w", err)
	}
	return creator, nil
}

const sqlGetCreatorByUsername = `
SELECT ` + creatorColumns + `
FROM creators
WHERE username = $1
`

// GetCreatorByUsername retrieves a creator by exact username
func (s *Store) GetCreatorByUsername(ctx context.Context, username string) (Creator, error) {
	var creator Creator
	err := s.db.GetContext(ctx, &creator, sqlGetCreatorByUsername, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Creator{}, ErrNotFound
		}
		return Creator{}, fmt.Errorf("failed to get creator by username: %w", err)
	}
	return creator, nil
}

const sqlCreateCreator = `
INSERT INTO creators (
	external_id, username, follower_count, content_category, game_preference, joined_date,
	days_since_joining, graduation_status, status, contact_link, contact_phone
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + creatorColumns

// CreateCreator inserts a creator. A duplicate external ID or username returns ErrConflict.
func (s *Store) CreateCreator(ctx context.Context, params CreatorParams) (Creator, error) {
	var creator Creator
	err := s.db.GetContext(ctx, &creator, sqlCreateCreator,
		params.ExternalID,
		params.Username,
		params.FollowerCount,
		params.ContentCategory,
		params.GamePreference,
		params.JoinedDate,
		params.DaysSinceJoining,
		params.GraduationStatus,
		params.Status,
		params.ContactLink,
		params.ContactPhone)
	if err != nil {
		if isUniqueViolation(err) {
			return Creator{}, ErrConflict
		}
		return Creator{}, fmt.Errorf("failed to create creator: %w", err)
	}
	return creator, nil
}

// external_id is never cleared by an import: it is the durable identity.
const sqlUpdateCreatorKeepNulls = `
UPDATE creators
SET external_id = COALESCE($2, external_id),
    username = $3,
    follower_count = $4,
    content_category = $5,
    game_preference = COALESCE($6, game_preference),
    joined_date = COALESCE($7, joined_date),
    days_since_joining = $8,
    graduation_status = COALESCE($9, graduation_status),
    status = $10,
    contact_link = COALESCE($11, contact_link),
    contact_phone = COALESCE($12, contact_phone),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND updated_at = $13
RETURNING ` + creatorColumns

const sqlUpdateCreatorClearNulls = `
UPDATE creators
SET external_id = COALESCE($2, external_id),
    username = $3,
    follower_count = $4,
    content_category = $5,
    game_preference = $6,
    joined_date = $7,
    days_since_joining = $8,
    graduation_status = $9,
    status = $10,
    contact_link = $11,
    contact_phone = $12,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND updated_at = $13
RETURNING ` + creatorColumns

// UpdateCreator overwrites a creator's fields if its updated_at still equals ExpectedUpdatedAt.
// It returns ErrStaleWrite when the row changed or vanished, ErrConflict on a unique violation.
func (s *Store) UpdateCreator(ctx context.Context, creatorID uuid.UUID, params UpdateCreatorParams) (Creator, error) {
	return updateCreator(ctx, s.db, creatorID, params)
}

func updateCreator(ctx context.Context, q sqlx.QueryerContext, creatorID uuid.UUID, params UpdateCreatorParams) (Creator, error) {
	query := sqlUpdateCreatorKeepNulls
	if params.ClearNulls {
		query = sqlUpdateCreatorClearNulls
	}

	var creator Creator
	err := sqlx.GetContext(ctx, q, &creator, query,
		creatorID,
		params.ExternalID,
		params.Username,
		params.FollowerCount,
		params.ContentCategory,
		params.GamePreference,
		params.JoinedDate,
		params.DaysSinceJoining,
		params.GraduationStatus,
		params.Status,
		params.ContactLink,
		params.ContactPhone,
		params.ExpectedUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Creator{}, ErrStaleWrite
		}
		if isUniqueViolation(err) {
			return Creator{}, ErrConflict
		}
		return Creator{}, fmt.Errorf("failed to update creator: %w", err)
	}
	return creator, nil
}

const sqlListCreators = `
SELECT ` + creatorColumns + `
FROM creators
WHERE ($1::text = '' OR content_category = $1::text)
  AND ($2::text = '' OR status = $2::text)
  AND follower_count >= $3
ORDER BY follower_count DESC, username ASC
LIMIT $4 OFFSET $5
`

// ListCreators retrieves creators matching the filter, largest audiences first
func (s *Store) ListCreators(ctx context.Context, params ListCreatorsParams) ([]Creator, error) {
	creators := []Creator{}
	err := s.db.SelectContext(ctx, &creators, sqlListCreators,
		params.Category, params.Status, params.MinFollowers, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}
	return creators, nil
}
