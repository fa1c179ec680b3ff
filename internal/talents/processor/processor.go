package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	bonusProcessor "agency-server/internal/bonus/processor"
	"agency-server/internal/creatorimport/mapper"
	"agency-server/internal/observability"
	"agency-server/internal/store"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrTalentNotFound = errors.New("talent not found")
	ErrInvalidFilter  = errors.New("invalid talent filter")
	ErrMissingPhone   = errors.New("talent has no contact phone")
)

// maxFuzzyCandidates bounds how many filtered rows are ranked in memory for a username query.
const maxFuzzyCandidates = 5000

// TalentStore defines the database operations required by TalentProcessor
type TalentStore interface {
	ListCreators(ctx context.Context, params store.ListCreatorsParams) ([]store.Creator, error)
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	GetUsernameHistoryByCreator(ctx context.Context, creatorID uuid.UUID) ([]store.UsernameHistory, error)
}

// BonusPricer prices one creator's bonus for a period
type BonusPricer interface {
	ForCreator(ctx context.Context, creatorID uuid.UUID, period string) (bonusProcessor.Line, error)
}

// MessageSender delivers WhatsApp messages
type MessageSender interface {
	Enabled() bool
	Send(ctx context.Context, phone, body string) (string, error)
}

type TalentProcessor struct {
	store  TalentStore
	bonus  BonusPricer
	sender MessageSender
	logger *observability.Logger
}

func New(store TalentStore, bonus BonusPricer, sender MessageSender, logger *observability.Logger) TalentProcessor {
	return TalentProcessor{
		store:  store,
		bonus:  bonus,
		sender: sender,
		logger: logger,
	}
}

// SearchParams filters talents. Zero values disable a filter.
type SearchParams struct {
	Query        string
	Category     string
	Status       string
	MinFollowers int64
	Limit        int
	Offset       int
}

func (p SearchParams) validate() error {
	if p.Category != "" && !validCategory(p.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidFilter, p.Category)
	}
	if p.Status != "" && p.Status != string(mapper.StatusActive) && p.Status != string(mapper.StatusInactive) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, p.Status)
	}
	if p.MinFollowers < 0 {
		return fmt.Errorf("%w: min_followers must not be negative", ErrInvalidFilter)
	}
	return nil
}

func validCategory(c string) bool {
	for _, known := range mapper.Categories {
		if string(known) == c {
			return true
		}
	}
	return false
}

// Search filters talents in SQL and, when a query is given, ranks usernames by fuzzy closeness.
// Without a query talents come back largest audience first.
func (p *TalentProcessor) Search(ctx context.Context, params SearchParams) ([]store.Creator, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "query", Value: params.Query},
		observability.Field{Key: "category", Value: params.Category},
		observability.Field{Key: "status", Value: params.Status},
	)

	query := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(params.Query), "@"))
	if query == "" {
		creators, err := p.store.ListCreators(ctx, listParams(params, params.Limit, params.Offset))
		if err != nil {
			p.logger.Error(ctx, "failed to list talents", err)
			return nil, err
		}
		return creators, nil
	}

	candidates, err := p.store.ListCreators(ctx, listParams(params, maxFuzzyCandidates, 0))
	if err != nil {
		p.logger.Error(ctx, "failed to list talents", err)
		return nil, err
	}

	ranked := rankByUsername(query, candidates)
	return page(ranked, params.Limit, params.Offset), nil
}

// History returns a talent's username changes, newest first.
func (p *TalentProcessor) History(ctx context.Context, creatorID uuid.UUID) ([]store.UsernameHistory, error) {
	if _, err := p.getTalent(ctx, creatorID); err != nil {
		return nil, err
	}

	history, err := p.store.GetUsernameHistoryByCreator(ctx, creatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to get username history", err)
		return nil, err
	}
	return history, nil
}

func (p *TalentProcessor) getTalent(ctx context.Context, creatorID uuid.UUID) (store.Creator, error) {
	creator, err := p.store.GetCreatorByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Creator{}, ErrTalentNotFound
		}
		p.logger.Error(ctx, "failed to get talent", err)
		return store.Creator{}, err
	}
	return creator, nil
}

func listParams(params SearchParams, limit, offset int) store.ListCreatorsParams {
	return store.ListCreatorsParams{
		Category:     params.Category,
		Status:       params.Status,
		MinFollowers: params.MinFollowers,
		Limit:        limit,
		Offset:       offset,
	}
}

// rankByUsername keeps creators whose username fuzzily contains query, closest first.
// Ties keep the store order.
func rankByUsername(query string, creators []store.Creator) []store.Creator {
	usernames := make([]string, len(creators))
	for i, c := range creators {
		usernames[i] = c.Username
	}

	ranks := fuzzy.RankFindNormalizedFold(query, usernames)
	sort.Stable(ranks)

	result := make([]store.Creator, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, creators[rank.OriginalIndex])
	}
	return result
}

func page(creators []store.Creator, limit, offset int) []store.Creator {
	if offset >= len(creators) {
		return []store.Creator{}
	}
	end := offset + limit
	if limit <= 0 || end > len(creators) {
		end = len(creators)
	}
	return creators[offset:end]
}
