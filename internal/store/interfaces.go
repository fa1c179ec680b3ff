package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Ping(ctx context.Context) error
	Close() error

	// Creator operations
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (Creator, error)
	GetCreatorByExternalID(ctx context.Context, externalID string) (Creator, error)
	GetCreatorByUsername(ctx context.Context, username string) (Creator, error)
	CreateCreator(ctx context.Context, params CreatorParams) (Creator, error)
	UpdateCreator(ctx context.Context, creatorID uuid.UUID, params UpdateCreatorParams) (Creator, error)
	ListCreators(ctx context.Context, params ListCreatorsParams) ([]Creator, error)

	// Username history operations
	CreateUsernameHistory(ctx context.Context, creatorID uuid.UUID, oldUsername, newUsername string) (UsernameHistory, error)
	RenameCreator(ctx context.Context, creatorID uuid.UUID, oldUsername string, params UpdateCreatorParams) (Creator, UsernameHistory, error)
	GetUsernameHistoryByCreator(ctx context.Context, creatorID uuid.UUID) ([]UsernameHistory, error)

	// Import audit operations
	CreateImportAuditLog(ctx context.Context, params CreateImportAuditLogParams) (ImportAuditLog, error)
	ListImportAuditLogs(ctx context.Context, limit, offset int) ([]ImportAuditLog, error)

	// Bonus rule operations
	GetBonusRules(ctx context.Context) (BonusRules, error)
	UpsertBonusRules(ctx context.Context, rules BonusRules) (BonusRules, error)

	// Performance operations
	UpsertCreatorPerformance(ctx context.Context, params UpsertCreatorPerformanceParams) error
	ListPerformanceByPeriod(ctx context.Context, period string) ([]CreatorPerformance, error)
	GetPerformanceByUsername(ctx context.Context, username, period string) (CreatorPerformance, error)
	GetPerformanceByCreator(ctx context.Context, creatorID uuid.UUID, period string) (CreatorPerformance, error)
}

// Ensure Store implements Storer
var _ Storer = (*Store)(nil)
