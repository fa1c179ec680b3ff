package store

import (
	"context"
	"fmt"
)

// CreateImportAuditLogParams represents parameters for recording an import run
type CreateImportAuditLogParams struct {
	Kind           ImportKind
	FileName       string
	Period         *string
	TotalRows      int
	ValidCount     int
	InvalidCount   int
	FilteredCount  int
	InvalidSamples ImportRowErrors
	CreatedBy      *string
}

const importAuditColumns = `id, kind, file_name, period, total_rows, valid_count, invalid_count, filtered_count, invalid_samples, created_by, created_at`

const sqlCreateImportAuditLog = `
INSERT INTO import_audit_logs (kind, file_name, period, total_rows, valid_count, invalid_count, filtered_count, invalid_samples, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + importAuditColumns

// CreateImportAuditLog stores the summary of one import run
func (s *Store) CreateImportAuditLog(ctx context.Context, params CreateImportAuditLogParams) (ImportAuditLog, error) {
	var entry ImportAuditLog
	err := s.db.GetContext(ctx, &entry, sqlCreateImportAuditLog,
		params.Kind,
		params.FileName,
		params.Period,
		params.TotalRows,
		params.ValidCount,
		params.InvalidCount,
		params.FilteredCount,
		params.InvalidSamples,
		params.CreatedBy)
	if err != nil {
		return ImportAuditLog{}, fmt.Errorf("failed to create import audit log: %w", err)
	}
	return entry, nil
}

const sqlListImportAuditLogs = `
SELECT ` + importAuditColumns + `
FROM import_audit_logs
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListImportAuditLogs returns recent import runs, newest first
func (s *Store) ListImportAuditLogs(ctx context.Context, limit, offset int) ([]ImportAuditLog, error) {
	entries := []ImportAuditLog{}
	err := s.db.SelectContext(ctx, &entries, sqlListImportAuditLogs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list import audit logs: %w", err)
	}
	return entries, nil
}
