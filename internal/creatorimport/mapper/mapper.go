package mapper

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"agency-server/internal/creatorimport/workbook"
	"agency-server/internal/observability"
)

// Candidate header spellings per field, tried in order. First non-blank value wins.
var (
	externalIDHeaders   = []string{"Creator ID:", "Creator ID", "creator_id", "CreatorID"}
	usernameHeaders     = []string{"Creator's username", "Creator username", "Username", "username_tiktok", "Creator Username", "Creator nickname"}
	followerHeaders     = []string{"Followers", "followers_count", "Followers Count", "Followers count"}
	groupHeaders        = []string{"Group", "group", "Creator group", "Kelompok"}
	notesHeaders        = []string{"Notes", "notes", "Note", "Catatan"}
	joinedHeaders       = []string{"Joined time", "Joined date", "joined_date", "Join date", "Tanggal bergabung"}
	daysHeaders         = []string{"Days since joining", "days_since_joining", "Days in agency", "Days since joined"}
	graduationHeaders   = []string{"Graduation status", "graduation_status", "Graduation"}
	relationshipHeaders = []string{"Relationship status", "relationship_status", "Relationship"}
	contactLinkHeaders  = []string{"Contact link", "contact_link", "WhatsApp link", "Link"}
	contactPhoneHeaders = []string{"Phone", "phone", "Phone number", "contact_phone", "WhatsApp", "No HP"}

	diamondsHeaders  = []string{"Diamonds", "diamonds", "Total diamonds", "Diamonds this month"}
	validDaysHeaders = []string{"Valid days", "valid_days", "Valid go LIVE days", "Valid LIVE days"}
	liveHoursHeaders = []string{"LIVE duration", "Live hours", "live_hours", "LIVE duration (h)", "Live duration"}
)

// Mapper turns raw rows into canonical records. The logger only receives parse warnings.
type Mapper struct {
	logger *observability.Logger
}

func New(logger *observability.Logger) Mapper {
	return Mapper{logger: logger}
}

// Map converts one raw row. It never fails: unparseable fields fall back to nil or zero.
func (m Mapper) Map(ctx context.Context, row workbook.RawRow) CanonicalCreatorRecord {
	rec := CanonicalCreatorRecord{
		ExternalID:       optional(first(row, externalIDHeaders)),
		Username:         optional(first(row, usernameHeaders)),
		FollowerCount:    int64(firstNumber(row, followerHeaders)),
		ContentCategory:  MapCategory(first(row, groupHeaders)),
		GamePreference:   optional(ExtractGames(first(row, notesHeaders))),
		DaysSinceJoining: int64(firstNumber(row, daysHeaders)),
		GraduationStatus: optional(first(row, graduationHeaders)),
		Status:           mapStatus(first(row, relationshipHeaders)),
		ContactLink:      optional(first(row, contactLinkHeaders)),
		ContactPhone:     optional(first(row, contactPhoneHeaders)),
	}

	if raw := first(row, joinedHeaders); raw != "" {
		if d, ok := ParseDate(raw); ok {
			rec.JoinedDate = &d
		} else {
			m.warn(ctx, fmt.Sprintf("unparseable joined date %q", raw))
		}
	}
	return rec
}

// MapPerformance converts one raw row of a performance export.
func (m Mapper) MapPerformance(ctx context.Context, row workbook.RawRow) PerformanceRecord {
	rec := PerformanceRecord{
		ExternalID: optional(first(row, externalIDHeaders)),
		Username:   optional(first(row, usernameHeaders)),
		Diamonds:   int64(firstNumber(row, diamondsHeaders)),
		ValidDays:  int64(firstNumber(row, validDaysHeaders)),
	}
	if raw := first(row, liveHoursHeaders); raw != "" {
		if h, ok := parseHours(raw); ok {
			rec.LiveHours = h
		} else {
			m.warn(ctx, fmt.Sprintf("unparseable live duration %q", raw))
		}
	}
	return rec
}

func (m Mapper) warn(ctx context.Context, msg string) {
	if m.logger != nil {
		m.logger.Warn(ctx, msg)
	}
}

var categoryCodes = map[string]ContentCategory{
	"g":  CategoryGaming,
	"e":  CategoryEntertainment,
	"l":  CategoryLifestyle,
	"ed": CategoryEducation,
	"m":  CategoryMusic,
}

// MapCategory maps a group code (G, E, L, ED, M) to a category. Anything else is "other".
func MapCategory(group string) ContentCategory {
	if c, ok := categoryCodes[strings.ToLower(strings.TrimSpace(group))]; ok {
		return c
	}
	return CategoryOther
}

// GameKeywords are the titles recognized in free-text notes.
var GameKeywords = []string{
	"PUBG",
	"Mobile Legends",
	"Free Fire",
	"Valorant",
	"Genshin Impact",
	"Honor of Kings",
	"Call of Duty",
	"Minecraft",
	"Roblox",
	"Fortnite",
	"Clash of Clans",
	"Arena of Valor",
}

// ExtractGames returns the recognized game titles in notes, joined with ", ".
func ExtractGames(notes string) string {
	lower := strings.ToLower(notes)
	if strings.TrimSpace(lower) == "" {
		return ""
	}
	var found []string
	for _, g := range GameKeywords {
		if strings.Contains(lower, strings.ToLower(g)) {
			found = append(found, g)
		}
	}
	return strings.Join(found, ", ")
}

func mapStatus(relationship string) Status {
	if strings.EqualFold(strings.TrimSpace(relationship), "effective") {
		return StatusActive
	}
	return StatusInactive
}

func first(row workbook.RawRow, headers []string) string {
	for _, h := range headers {
		if v, ok := row.Get(h); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstNumber(row workbook.RawRow, headers []string) float64 {
	for _, h := range headers {
		v, ok := row.Get(h)
		if !ok {
			continue
		}
		if n, ok := parseNumber(v); ok {
			return n
		}
	}
	return 0
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

var numberSuffixes = map[byte]float64{'k': 1e3, 'm': 1e6, 'b': 1e9}

// parseNumber accepts "1500", "1,500", "1.234.567", "12.500", "1,5K" and "1.2K" style values.
// Values that do not fit an int64 are rejected.
func parseNumber(raw string) (float64, bool) {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if s == "" {
		return 0, false
	}

	mult := 1.0
	suffixed := false
	if m, ok := numberSuffixes[s[len(s)-1]]; ok {
		mult = m
		suffixed = true
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseFloat(normalizeSeparators(s, suffixed), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	n *= mult
	if n >= math.MaxInt64 || n <= math.MinInt64 {
		return 0, false
	}
	return n, true
}

// normalizeSeparators rewrites grouping and decimal marks into the form strconv expects.
// With both marks present the later one is the decimal point. A lone comma is decimal when a
// suffix follows it or it has one or two digits after it. A lone dot followed by exactly three
// digits groups thousands unless a suffix follows or the integer part is zero.
func normalizeSeparators(s string, suffixed bool) string {
	commas, dots := strings.Count(s, ","), strings.Count(s, ".")
	switch {
	case commas > 0 && dots > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			return strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case commas == 1:
		if after := digitsAfter(s, ","); suffixed || after == 1 || after == 2 {
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case commas > 1:
		return strings.ReplaceAll(s, ",", "")
	case dots > 1:
		return strings.ReplaceAll(s, ".", "")
	case dots == 1:
		whole := strings.TrimLeft(s[:strings.Index(s, ".")], "+-")
		if !suffixed && digitsAfter(s, ".") == 3 && strings.Trim(whole, "0") != "" {
			return strings.Replace(s, ".", "", 1)
		}
	}
	return s
}

func digitsAfter(s, sep string) int {
	rest := s[strings.LastIndex(s, sep)+1:]
	for _, r := range rest {
		if r < '0' || r > '9' {
			return -1
		}
	}
	return len(rest)
}

// parseHours accepts "45.5", "45h", "45:30" and "12h 30m".
func parseHours(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	if hh, mm, ok := strings.Cut(s, ":"); ok {
		h, err1 := strconv.Atoi(strings.TrimSpace(hh))
		m, err2 := strconv.Atoi(strings.TrimSpace(mm))
		if err1 != nil || err2 != nil || h < 0 || m < 0 || m >= 60 {
			return 0, false
		}
		return float64(h) + float64(m)/60, true
	}

	if strings.ContainsAny(s, "hm") {
		var total float64
		var seen bool
		for _, part := range strings.Fields(strings.NewReplacer("h", "h ", "m", "m ").Replace(s)) {
			unit := part[len(part)-1]
			n, err := strconv.ParseFloat(part[:len(part)-1], 64)
			if err != nil {
				return 0, false
			}
			switch unit {
			case 'h':
				total += n
			case 'm':
				total += n / 60
			default:
				return 0, false
			}
			seen = true
		}
		return total, seen
	}

	return parseNumber(s)
}
