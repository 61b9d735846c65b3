package domain

// MaxRings is the maximum number of distinct rings a radar may carry.
const MaxRings = 4

// QuadrantCount is the exact number of quadrants every radar must have.
const QuadrantCount = 4

// Ring is an adoption-maturity band (e.g. Adopt/Trial/Assess/Hold).
// Order is the zero-based index of first appearance across the whole row set.
type Ring struct {
	Name  string
	Order int
}

// Blip is one technology/technique item placed in a quadrant and ring.
// Ring points at a Ring created from the same row set; a dangling ring
// reference is a contract violation.
type Blip struct {
	Name        string
	Ring        *Ring
	IsNew       bool
	Topic       string
	Description string
}

// Quadrant groups blips under one of the four topical headings. Name is the
// capitalized display form of the first-seen quadrant value.
type Quadrant struct {
	Name  string
	Blips []Blip
}

// Radar is the validated model handed to the layout collaborator: exactly
// four quadrants plus the sheet-navigation metadata. It is built once per
// successful ingestion and never mutated afterwards; accessors copy the
// slices they return.
type Radar struct {
	quadrants [QuadrantCount]Quadrant
	rings     []Ring
	sheetName string
	altSheets []string
}

// Quadrants returns the four quadrants in first-seen order.
func (r Radar) Quadrants() []Quadrant {
	out := make([]Quadrant, QuadrantCount)
	copy(out, r.quadrants[:])
	return out
}

// Rings returns the rings in ascending Order. The layout collaborator uses
// this for deterministic ring-order look-up.
func (r Radar) Rings() []Ring {
	out := make([]Ring, len(r.rings))
	copy(out, r.rings)
	return out
}

// CurrentSheetName is the sheet the radar was built from (empty for flat
// file sources).
func (r Radar) CurrentSheetName() string { return r.sheetName }

// AlternativeSheetNames lists every sheet in the source workbook, in
// workbook order.
func (r Radar) AlternativeSheetNames() []string {
	out := make([]string, len(r.altSheets))
	copy(out, r.altSheets)
	return out
}
