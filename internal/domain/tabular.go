package domain

import "strings"

// RawRow is one source record keyed by column header. Header casing and
// order are not guaranteed by any source.
type RawRow map[string]string

// Get returns the value under the given header, matching case-insensitively.
func (r RawRow) Get(name string) string {
	if v, ok := r[name]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// HeaderSet is the ordered column names found in the source's first row (or
// the spreadsheet API's first value row).
type HeaderSet []string

// RequiredHeaders are the columns every source must carry, matched
// case-insensitively and in any order.
var RequiredHeaders = HeaderSet{"name", "ring", "quadrant", "isNew", "description"}

// HeaderTopic is the optional column passed through when present.
const HeaderTopic = "topic"

// Index returns the position of the given header, matching
// case-insensitively, or -1 when absent.
func (hs HeaderSet) Index(name string) int {
	for i, h := range hs {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// Has reports whether the header set contains the given name.
func (hs HeaderSet) Has(name string) bool { return hs.Index(name) >= 0 }

// BlipRecord is the canonical sanitized row shape shared by every source.
// Ring and Quadrant are the trimmed, lowercased grouping keys; RingLabel and
// QuadrantLabel keep the trimmed display casing of the raw value.
type BlipRecord struct {
	Name          string
	Ring          string
	RingLabel     string
	Quadrant      string
	QuadrantLabel string
	IsNew         bool
	Topic         string
	Description   string
}

// SourceData is the raw tabular payload every fetcher produces. Flat sources
// (CSV, JSON) populate Rows; the spreadsheet source populates Cells, whose
// values are positional under Headers. The header row itself is never part
// of the payload.
type SourceData struct {
	Headers HeaderSet
	Rows    []RawRow
	Cells   [][]string

	// Title is the display name of the source: the file name for flat
	// sources, the document title for spreadsheets.
	Title string

	// SheetName and SheetNames are populated by the spreadsheet source
	// only: the sheet the data came from and every sheet in the workbook.
	SheetName  string
	SheetNames []string
}

// Len is the number of data rows regardless of shape.
func (d SourceData) Len() int {
	if d.Cells != nil {
		return len(d.Cells)
	}
	return len(d.Rows)
}

// Field returns the value of the named column in row i, resolving the
// column through the header set for positional rows.
func (d SourceData) Field(i int, header string) string {
	if d.Cells != nil {
		idx := d.Headers.Index(header)
		if idx < 0 || i >= len(d.Cells) || idx >= len(d.Cells[i]) {
			return ""
		}
		return d.Cells[i][idx]
	}
	if i >= len(d.Rows) {
		return ""
	}
	return d.Rows[i].Get(header)
}
