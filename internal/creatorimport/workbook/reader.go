package workbook

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// headerScanLimit is how many leading rows are searched for the header row.
const headerScanLimit = 10

// RawRow is a data row keyed by detected header text. Cells beyond the end of a
// short row are absent from the map.
type RawRow map[string]string

// Get returns the cell stored under any header that normalizes to the same text as key.
func (r RawRow) Get(key string) (string, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	want := NormalizeHeader(key)
	for k, v := range r {
		if NormalizeHeader(k) == want {
			return v, true
		}
	}
	return "", false
}

// DataRow is one data row plus its 1-based row number in the source sheet.
type DataRow struct {
	Number int    `json:"row_number"`
	Values RawRow `json:"values"`
}

// Sheet is the result of locating headers in a worksheet.
type Sheet struct {
	Headers []string
	// HeaderRow is the 0-based index of the header row.
	HeaderRow int
	Rows      []DataRow
	// Filtered counts rows dropped by the network manager filter.
	Filtered int
}

// Options control optional row filtering.
type Options struct {
	// NetworkManager, when non-empty, keeps only rows whose network manager column matches.
	NetworkManager string
}

var (
	creatorIDMarkers      = []string{"Creator ID:", "Creator ID", "creator_id", "CreatorID"}
	usernameMarkers       = []string{"Creator's username", "Creator username", "Username", "username_tiktok", "Creator Username", "Creator nickname"}
	networkManagerHeaders = []string{"Network manager", "Network Manager", "network_manager"}
)

const metadataMarker = "exported at"

// NormalizeHeader folds a header for comparison: NFKC, trimmed, lower-cased.
// NFKC turns non-breaking spaces and full-width letters from some exports into plain ASCII.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(h)))
}

// Read locates the header row and zips every following row against it.
func Read(rows [][]string, opts Options) Sheet {
	if len(rows) == 0 {
		return Sheet{}
	}

	headerIdx := findHeaderRow(rows)
	headers := make([]string, len(rows[headerIdx]))
	// a repeated header maps to its first column only
	firstCol := make([]bool, len(rows[headerIdx]))
	seen := make(map[string]bool, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		headers[i] = strings.TrimSpace(h)
		key := NormalizeHeader(h)
		if key != "" && !seen[key] {
			seen[key] = true
			firstCol[i] = true
		}
	}

	sheet := Sheet{Headers: headers, HeaderRow: headerIdx}
	manager := NormalizeHeader(opts.NetworkManager)

	for i := headerIdx + 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		values := make(RawRow, len(headers))
		for col, h := range headers {
			if !firstCol[col] || col >= len(rows[i]) {
				continue
			}
			values[h] = rows[i][col]
		}
		if manager != "" && !managedBy(values, manager) {
			sheet.Filtered++
			continue
		}
		sheet.Rows = append(sheet.Rows, DataRow{Number: i + 1, Values: values})
	}
	return sheet
}

func findHeaderRow(rows [][]string) int {
	limit := headerScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}
	for i := 0; i < limit; i++ {
		if rowHasAny(rows[i], creatorIDMarkers) && rowHasAny(rows[i], usernameMarkers) {
			return i
		}
	}

	if len(rows) > 1 && len(rows[0]) > 0 && strings.Contains(NormalizeHeader(rows[0][0]), metadataMarker) {
		return 1
	}
	return 0
}

func rowHasAny(row []string, markers []string) bool {
	for _, cell := range row {
		c := NormalizeHeader(cell)
		if c == "" {
			continue
		}
		for _, m := range markers {
			if c == NormalizeHeader(m) {
				return true
			}
		}
	}
	return false
}

func managedBy(row RawRow, manager string) bool {
	for _, h := range networkManagerHeaders {
		if v, ok := row.Get(h); ok {
			return NormalizeHeader(v) == manager
		}
	}
	return false
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
