package processor

import (
	"context"
	"fmt"
	"io"

	"agency-server/internal/store"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Talents"

var exportHeaders = []interface{}{
	"Creator ID", "Username", "Followers", "Category", "Game preference", "Joined date",
	"Days since joining", "Graduation status", "Status", "Contact link", "Phone",
}

// Export writes every talent matching params (query ranking included) to w as an xlsx workbook.
// Limit and Offset are ignored.
func (p *TalentProcessor) Export(ctx context.Context, params SearchParams, w io.Writer) (int, error) {
	params.Limit = maxFuzzyCandidates
	params.Offset = 0

	creators, err := p.Search(ctx, params)
	if err != nil {
		return 0, err
	}

	if err := writeWorkbook(creators, w); err != nil {
		p.logger.Error(ctx, "failed to write talent export", err)
		return 0, err
	}
	return len(creators), nil
}

func writeWorkbook(creators []store.Creator, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return fmt.Errorf("failed to name export sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i, c := range creators {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address export row: %w", err)
		}
		row := []interface{}{
			deref(c.ExternalID),
			c.Username,
			c.FollowerCount,
			c.ContentCategory,
			deref(c.GamePreference),
			joinedDate(c),
			c.DaysSinceJoining,
			deref(c.GraduationStatus),
			c.Status,
			deref(c.ContactLink),
			deref(c.ContactPhone),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write export workbook: %w", err)
	}
	return nil
}

func joinedDate(c store.Creator) string {
	if c.JoinedDate == nil {
		return ""
	}
	return c.JoinedDate.Format("2006-01-02")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
