// Package validator applies required-field and range rules to mapped import records.
package validator

import (
	"errors"
	"math"
	"strings"

	"agency-server/internal/creatorimport/mapper"

	"github.com/go-playground/validator/v10"
)

const (
	MsgUsernameRequired   = "username is required and cannot be empty"
	MsgExternalIDBlank    = "externalId must not be empty when present"
	MsgFollowerCount      = "followerCount must be a number greater than or equal to 0"
	MsgDaysSinceJoining   = "daysSinceJoining must be greater than or equal to 0"
	MsgContentCategory    = "contentCategory is not a known category"
	MsgStatus             = "status must be active or inactive"
	MsgIdentityRequired   = "creator id or username is required"
	MsgDiamonds           = "diamonds must be greater than or equal to 0"
	MsgValidDays          = "validDays must be between 0 and 31"
	MsgLiveHours          = "liveHours must be a finite number greater than or equal to 0"
	msgFieldInvalid       = " failed validation"
)

// creatorSchema mirrors CanonicalCreatorRecord for the tag-driven pass.
type creatorSchema struct {
	ExternalID       *string `validate:"omitnil,notblank"`
	Username         *string `validate:"required,notblank"`
	FollowerCount    int64   `validate:"gte=0"`
	DaysSinceJoining int64   `validate:"gte=0"`
	ContentCategory  string  `validate:"oneof=gaming entertainment lifestyle education music other"`
	Status           string  `validate:"oneof=active inactive"`
}

type performanceSchema struct {
	Diamonds  int64   `validate:"gte=0"`
	ValidDays int64   `validate:"gte=0,lte=31"`
	LiveHours float64 `validate:"gte=0"`
}

var fieldMessages = map[string]string{
	"ExternalID":       MsgExternalIDBlank,
	"Username":         MsgUsernameRequired,
	"FollowerCount":    MsgFollowerCount,
	"DaysSinceJoining": MsgDaysSinceJoining,
	"ContentCategory":  MsgContentCategory,
	"Status":           MsgStatus,
	"Diamonds":         MsgDiamonds,
	"ValidDays":        MsgValidDays,
	"LiveHours":        MsgLiveHours,
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
}

// Validate returns every rule violation for rec. An empty result means the record may be persisted.
// The three core rules run independently so one row can report several problems.
func Validate(rec mapper.CanonicalCreatorRecord) []string {
	var errs []string
	if rec.Username == nil || strings.TrimSpace(*rec.Username) == "" {
		errs = append(errs, MsgUsernameRequired)
	}
	if rec.ExternalID != nil && strings.TrimSpace(*rec.ExternalID) == "" {
		errs = append(errs, MsgExternalIDBlank)
	}
	if rec.FollowerCount < 0 {
		errs = append(errs, MsgFollowerCount)
	}

	return merge(errs, schemaErrors(creatorSchema{
		ExternalID:       rec.ExternalID,
		Username:         rec.Username,
		FollowerCount:    rec.FollowerCount,
		DaysSinceJoining: rec.DaysSinceJoining,
		ContentCategory:  string(rec.ContentCategory),
		Status:           string(rec.Status),
	}))
}

// ValidatePerformance checks a performance row. Identity needs either key; metrics must be in range.
func ValidatePerformance(rec mapper.PerformanceRecord) []string {
	var errs []string
	if blank(rec.Username) && blank(rec.ExternalID) {
		errs = append(errs, MsgIdentityRequired)
	}
	if math.IsNaN(rec.LiveHours) || math.IsInf(rec.LiveHours, 0) {
		errs = append(errs, MsgLiveHours)
		rec.LiveHours = 0
	}

	return merge(errs, schemaErrors(performanceSchema{
		Diamonds:  rec.Diamonds,
		ValidDays: rec.ValidDays,
		LiveHours: rec.LiveHours,
	}))
}

func schemaErrors(s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fe.Field()+msgFieldInvalid)
	}
	return out
}

// merge appends extra to base, skipping messages already present, preserving order.
func merge(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, msg := range list {
			if _, dup := seen[msg]; dup {
				continue
			}
			seen[msg] = struct{}{}
			out = append(out, msg)
		}
	}
	return out
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
