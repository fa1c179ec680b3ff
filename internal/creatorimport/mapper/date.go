package mapper

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Serials below 10000 (1927) are bare numbers such as years, not dates. 2958465 is 9999-12-31.
const (
	minExcelSerial = 10000
	maxExcelSerial = 2958465
)

var (
	parenStripper = strings.NewReplacer("(", "", ")", "")
	excelShortRe  = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{2}$`)
	directLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}
)

// ParseDate reads dd/mm/yyyy, dd.mm.yyyy, yyyy-mm-dd, yyyy/mm/dd, Excel's mm-dd-yy
// display format and raw Excel serial day numbers. Two-digit years are 20xx.
// ok is false when nothing matched.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(parenStripper.Replace(raw))
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	} else {
		return time.Time{}, false
	}

	switch {
	case strings.Contains(s, "/"):
		return parseParts(strings.Split(s, "/"))
	case strings.Contains(s, "."):
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return fromSerial(serial)
		}
		return parseParts(strings.Split(s, "."))
	case excelShortRe.MatchString(s):
		p := strings.Split(s, "-")
		return buildDate(p[2], p[0], p[1])
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return fromSerial(serial)
	}
	for _, layout := range directLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			y, m, day := d.Date()
			return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// parseParts handles day-first triples, or year-first when the first part has four digits.
func parseParts(p []string) (time.Time, bool) {
	if len(p) != 3 {
		return time.Time{}, false
	}
	if len(strings.TrimSpace(p[0])) == 4 {
		return buildDate(p[0], p[1], p[2])
	}
	return buildDate(p[2], p[1], p[0])
}

func buildDate(year, month, day string) (time.Time, bool) {
	year, month, day = strings.TrimSpace(year), pad2(month), pad2(day)
	if len(year) == 2 {
		year = "20" + year
	}
	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil || len(year) != 4 {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March; reject that.
	if t.Day() != d || int(t.Month()) != m {
		return time.Time{}, false
	}
	return t, true
}

func pad2(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func fromSerial(serial float64) (time.Time, bool) {
	if serial < minExcelSerial || serial > maxExcelSerial {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}
