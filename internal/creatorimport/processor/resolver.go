package processor

import (
	"context"
	"errors"
	"strings"

	"agency-server/internal/creatorimport/mapper"
	"agency-server/internal/store"
)

// CreatorLookup is the read side of identity resolution.
type CreatorLookup interface {
	GetCreatorByExternalID(ctx context.Context, externalID string) (store.Creator, error)
	GetCreatorByUsername(ctx context.Context, username string) (store.Creator, error)
}

// Resolution is the stored creator an incoming record refers to, if any.
type Resolution struct {
	Match *store.Creator
	// IsUsernameChange is set when the match's stored username differs from the record's.
	IsUsernameChange bool
}

// Resolve matches rec by external ID first and falls back to username.
// An external ID match wins even when another creator holds rec's username.
func Resolve(ctx context.Context, lookup CreatorLookup, rec mapper.CanonicalCreatorRecord) (Resolution, error) {
	match, err := findCreator(ctx, lookup, rec.ExternalID, rec.Username)
	if err != nil || match == nil {
		return Resolution{}, err
	}
	return Resolution{
		Match:            match,
		IsUsernameChange: rec.Username != nil && match.Username != *rec.Username,
	}, nil
}

func findCreator(ctx context.Context, lookup CreatorLookup, externalID, username *string) (*store.Creator, error) {
	if externalID != nil && strings.TrimSpace(*externalID) != "" {
		c, err := lookup.GetCreatorByExternalID(ctx, *externalID)
		if err == nil {
			return &c, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	if username != nil && strings.TrimSpace(*username) != "" {
		c, err := lookup.GetCreatorByUsername(ctx, *username)
		if err == nil {
			return &c, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	return nil, nil
}
