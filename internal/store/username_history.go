package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const sqlCreateUsernameHistory = `
INSERT INTO username_history (creator_id, old_username, new_username)
VALUES ($1, $2, $3)
RETURNING id, creator_id, old_username, new_username, changed_at
`

// CreateUsernameHistory records that a creator's username is about to change
func (s *Store) CreateUsernameHistory(ctx context.Context, creatorID uuid.UUID, oldUsername, newUsername string) (UsernameHistory, error) {
	return createUsernameHistory(ctx, s.db, creatorID, oldUsername, newUsername)
}

func createUsernameHistory(ctx context.Context, q sqlx.QueryerContext, creatorID uuid.UUID, oldUsername, newUsername string) (UsernameHistory, error) {
	var entry UsernameHistory
	err := sqlx.GetContext(ctx, q, &entry, sqlCreateUsernameHistory, creatorID, oldUsername, newUsername)
	if err != nil {
		return UsernameHistory{}, fmt.Errorf("failed to create username history: %w", err)
	}
	return entry, nil
}

const sqlGetUsernameHistoryByCreator = `
SELECT id, creator_id, old_username, new_username, changed_at
FROM username_history
WHERE creator_id = $1
ORDER BY changed_at DESC
`

// RenameCreator applies a creator update that changes the username and records the old value.
// Both writes share a transaction, so a failed update leaves no history row behind.
func (s *Store) RenameCreator(ctx context.Context, creatorID uuid.UUID, oldUsername string, params UpdateCreatorParams) (Creator, UsernameHistory, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Creator{}, UsernameHistory{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Error(ctx, "failed to rollback transaction", rbErr)
		}
	}()

	entry, err := createUsernameHistory(ctx, tx, creatorID, oldUsername, params.Username)
	if err != nil {
		return Creator{}, UsernameHistory{}, err
	}
	creator, err := updateCreator(ctx, tx, creatorID, params)
	if err != nil {
		return Creator{}, UsernameHistory{}, err
	}

	if err := tx.Commit(); err != nil {
		return Creator{}, UsernameHistory{}, fmt.Errorf("failed to commit rename: %w", err)
	}
	return creator, entry, nil
}

// GetUsernameHistoryByCreator lists a creator's username changes, newest first
func (s *Store) GetUsernameHistoryByCreator(ctx context.Context, creatorID uuid.UUID) ([]UsernameHistory, error) {
	entries := []UsernameHistory{}
	err := s.db.SelectContext(ctx, &entries, sqlGetUsernameHistoryByCreator, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get username history: %w", err)
	}
	return entries, nil
}
