package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"agency-server/internal/creatorimport/mapper"
	"agency-server/internal/creatorimport/validator"
	"agency-server/internal/creatorimport/workbook"
	"agency-server/internal/observability"
	"agency-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportStore defines the database operations required by ImportProcessor
type ImportStore interface {
	Ping(ctx context.Context) error
	GetCreatorByExternalID(ctx context.Context, externalID string) (store.Creator, error)
	GetCreatorByUsername(ctx context.Context, username string) (store.Creator, error)
	CreateCreator(ctx context.Context, params store.CreatorParams) (store.Creator, error)
	UpdateCreator(ctx context.Context, creatorID uuid.UUID, params store.UpdateCreatorParams) (store.Creator, error)
	RenameCreator(ctx context.Context, creatorID uuid.UUID, oldUsername string, params store.UpdateCreatorParams) (store.Creator, store.UsernameHistory, error)
	UpsertCreatorPerformance(ctx context.Context, params store.UpsertCreatorPerformanceParams) error
	CreateImportAuditLog(ctx context.Context, params store.CreateImportAuditLogParams) (store.ImportAuditLog, error)
	ListImportAuditLogs(ctx context.Context, limit, offset int) ([]store.ImportAuditLog, error)
}

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type ImportProcessor struct {
	store  ImportStore
	logger *observability.Logger
	mapper mapper.Mapper
	cfg    Config
}

func New(store ImportStore, logger *observability.Logger, cfg Config) ImportProcessor {
	if cfg.NullPolicy == "" {
		cfg.NullPolicy = NullPolicyKeep
	}
	if cfg.ErrorSampleLimit <= 0 {
		cfg.ErrorSampleLimit = defaultErrorSampleLimit
	}
	return ImportProcessor{
		store:  store,
		logger: logger,
		mapper: mapper.New(logger),
		cfg:    cfg,
	}
}

// ImportFile reads an uploaded workbook and runs the matching import.
// Only an unreadable file or an unreachable store fails the whole run.
func (p *ImportProcessor) ImportFile(ctx context.Context, kind store.ImportKind, params FileParams) (Summary, error) {
	if kind != store.ImportKindCreators && kind != store.ImportKindPerformance {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownImportKind, kind)
	}
	if kind == store.ImportKindPerformance && !periodPattern.MatchString(params.Period) {
		return Summary{}, ErrInvalidPeriod
	}

	sheet, err := workbook.LoadSheet(params.Reader, workbook.Options{NetworkManager: p.cfg.NetworkManager})
	if err != nil {
		p.logger.Error(ctx, "failed to read workbook", err)
		return Summary{}, err
	}

	run := RunParams{
		FileName:      params.FileName,
		Rows:          sheet.Rows,
		FilteredCount: sheet.Filtered,
		CreatedBy:     params.CreatedBy,
		Progress:      params.Progress,
	}
	if kind == store.ImportKindPerformance {
		return p.ImportPerformance(ctx, PerformanceRunParams{RunParams: run, Period: params.Period})
	}
	return p.ImportCreators(ctx, run)
}

// ImportCreators maps, validates and upserts creator rows in sheet order.
// A failing row is reported in the summary and never stops the run.
func (p *ImportProcessor) ImportCreators(ctx context.Context, params RunParams) (Summary, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "import_kind", Value: string(store.ImportKindCreators)},
		observability.Field{Key: "file_name", Value: params.FileName},
	)
	if err := p.ping(ctx); err != nil {
		return Summary{}, err
	}

	run := p.newRun(store.ImportKindCreators, "", params)
	for i, row := range params.Rows {
		rec := p.mapper.Map(ctx, row.Values)
		if errs := validator.Validate(rec); len(errs) > 0 {
			run.reject(row, errs, rec)
		} else if result, err := p.upsertCreator(ctx, rec); err != nil {
			p.logger.InfoWithError(observability.WithFields(ctx, observability.Field{Key: "row_number", Value: row.Number}), "row failed to persist", err)
			run.reject(row, []string{err.Error()}, rec)
		} else {
			run.accept(result)
		}
		if params.Progress != nil {
			params.Progress(i+1, len(params.Rows))
		}
	}

	return p.finish(ctx, run, params.CreatedBy), nil
}

// ImportPerformance upserts one period's metrics for creators that already exist.
func (p *ImportProcessor) ImportPerformance(ctx context.Context, params PerformanceRunParams) (Summary, error) {
	if !periodPattern.MatchString(params.Period) {
		return Summary{}, ErrInvalidPeriod
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "import_kind", Value: string(store.ImportKindPerformance)},
		observability.Field{Key: "file_name", Value: params.FileName},
		observability.Field{Key: "period", Value: params.Period},
	)
	if err := p.ping(ctx); err != nil {
		return Summary{}, err
	}

	run := p.newRun(store.ImportKindPerformance, params.Period, params.RunParams)
	for i, row := range params.Rows {
		rec := p.mapper.MapPerformance(ctx, row.Values)
		if errs := validator.ValidatePerformance(rec); len(errs) > 0 {
			run.reject(row, errs, rec)
		} else if err := p.upsertPerformance(ctx, params.Period, rec); err != nil {
			run.reject(row, []string{err.Error()}, rec)
		} else {
			run.accept(upsertUpdated)
		}
		if params.Progress != nil {
			params.Progress(i+1, len(params.Rows))
		}
	}

	return p.finish(ctx, run, params.CreatedBy), nil
}

// ListRuns returns recent import audit entries.
func (p *ImportProcessor) ListRuns(ctx context.Context, limit, offset int) ([]store.ImportAuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	runs, err := p.store.ListImportAuditLogs(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list import runs", err)
		return nil, err
	}
	return runs, nil
}

func (p *ImportProcessor) ping(ctx context.Context) error {
	if err := p.store.Ping(ctx); err != nil {
		p.logger.Error(ctx, "persistence service unreachable, aborting import", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

type upsertResult int

const (
	upsertInserted upsertResult = iota
	upsertUpdated
	upsertRenamed
)

// upsertCreator resolves and writes one record. A lost race (stale update or insert conflict)
// is retried once against freshly resolved state.
func (p *ImportProcessor) upsertCreator(ctx context.Context, rec mapper.CanonicalCreatorRecord) (upsertResult, error) {
	for attempt := 0; ; attempt++ {
		result, err := p.applyCreator(ctx, rec)
		if attempt == 0 && (errors.Is(err, store.ErrStaleWrite) || errors.Is(err, store.ErrConflict)) {
			p.logger.Warn(ctx, "creator changed concurrently, resolving row again")
			continue
		}
		return result, err
	}
}

func (p *ImportProcessor) applyCreator(ctx context.Context, rec mapper.CanonicalCreatorRecord) (upsertResult, error) {
	res, err := Resolve(ctx, p.store, rec)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve creator: %w", err)
	}

	fields := creatorParams(rec)
	if res.Match == nil {
		if _, err := p.store.CreateCreator(ctx, fields); err != nil {
			return 0, err
		}
		return upsertInserted, nil
	}

	update := store.UpdateCreatorParams{
		CreatorParams:     fields,
		ExpectedUpdatedAt: res.Match.UpdatedAt,
		ClearNulls:        p.cfg.NullPolicy == NullPolicyClear,
	}
	if res.IsUsernameChange {
		// history and update commit together; a failed update leaves no history row
		if _, _, err := p.store.RenameCreator(ctx, res.Match.ID, res.Match.Username, update); err != nil {
			return 0, err
		}
		return upsertRenamed, nil
	}

	if _, err := p.store.UpdateCreator(ctx, res.Match.ID, update); err != nil {
		return 0, err
	}
	return upsertUpdated, nil
}

func (p *ImportProcessor) upsertPerformance(ctx context.Context, period string, rec mapper.PerformanceRecord) error {
	match, err := findCreator(ctx, p.store, rec.ExternalID, rec.Username)
	if err != nil {
		return fmt.Errorf("failed to resolve creator: %w", err)
	}
	if match == nil {
		return ErrCreatorNotFound
	}
	return p.store.UpsertCreatorPerformance(ctx, store.UpsertCreatorPerformanceParams{
		CreatorID: match.ID,
		Period:    period,
		Diamonds:  rec.Diamonds,
		ValidDays: int(rec.ValidDays),
		LiveHours: decimal.NewFromFloat(rec.LiveHours).Round(2),
	})
}

func creatorParams(rec mapper.CanonicalCreatorRecord) store.CreatorParams {
	var username string
	if rec.Username != nil {
		username = *rec.Username
	}
	return store.CreatorParams{
		ExternalID:       rec.ExternalID,
		Username:         username,
		FollowerCount:    rec.FollowerCount,
		ContentCategory:  string(rec.ContentCategory),
		GamePreference:   rec.GamePreference,
		JoinedDate:       rec.JoinedDate,
		DaysSinceJoining: rec.DaysSinceJoining,
		GraduationStatus: rec.GraduationStatus,
		Status:           string(rec.Status),
		ContactLink:      rec.ContactLink,
		ContactPhone:     rec.ContactPhone,
	}
}

// run accumulates counters for one import.
type run struct {
	summary     Summary
	sampleLimit int
}

func (p *ImportProcessor) newRun(kind store.ImportKind, period string, params RunParams) *run {
	return &run{
		summary: Summary{
			Kind:          kind,
			FileName:      params.FileName,
			Period:        period,
			TotalRows:     len(params.Rows),
			FilteredCount: params.FilteredCount,
			ErrorSamples:  []RowError{},
		},
		sampleLimit: p.cfg.ErrorSampleLimit,
	}
}

func (r *run) reject(row workbook.DataRow, errs []string, record interface{}) {
	r.summary.InvalidCount++
	if len(r.summary.ErrorSamples) < r.sampleLimit {
		r.summary.ErrorSamples = append(r.summary.ErrorSamples, RowError{
			RowNumber: row.Number,
			Values:    row.Values,
			Errors:    errs,
			Record:    record,
		})
	}
}

func (r *run) accept(result upsertResult) {
	r.summary.ValidCount++
	switch result {
	case upsertInserted:
		r.summary.Inserted++
	case upsertRenamed:
		r.summary.UsernameChanges++
		r.summary.Updated++
	default:
		r.summary.Updated++
	}
}

// finish writes the audit entry. The run's rows are already persisted, so an audit failure is only logged.
func (p *ImportProcessor) finish(ctx context.Context, r *run, createdBy *string) Summary {
	s := r.summary
	s.CompletedAt = time.Now().UTC()

	samples := make(store.ImportRowErrors, 0, len(s.ErrorSamples))
	for _, e := range s.ErrorSamples {
		samples = append(samples, store.ImportRowError{RowNumber: e.RowNumber, Values: e.Values, Errors: e.Errors})
	}
	var period *string
	if s.Period != "" {
		period = &s.Period
	}

	entry, err := p.store.CreateImportAuditLog(ctx, store.CreateImportAuditLogParams{
		Kind:           s.Kind,
		FileName:       s.FileName,
		Period:         period,
		TotalRows:      s.TotalRows,
		ValidCount:     s.ValidCount,
		InvalidCount:   s.InvalidCount,
		FilteredCount:  s.FilteredCount,
		InvalidSamples: samples,
		CreatedBy:      createdBy,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to write import audit log", err)
	} else {
		s.AuditLogID = &entry.ID
	}

	p.logger.Metrics(ctx,
		observability.MetricField{Key: "total_rows", Value: s.TotalRows},
		observability.MetricField{Key: "valid_count", Value: s.ValidCount},
		observability.MetricField{Key: "invalid_count", Value: s.InvalidCount},
		observability.MetricField{Key: "filtered_count", Value: s.FilteredCount},
		observability.MetricField{Key: "inserted", Value: s.Inserted},
		observability.MetricField{Key: "updated", Value: s.Updated},
	)
	p.logger.Info(ctx, "import run completed")
	return s
}
