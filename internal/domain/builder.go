package domain

import (
	"unicode"
	"unicode/utf8"
)

// SheetMeta is the sheet-navigation metadata the fetch stage passes through
// to the assembled radar.
type SheetMeta struct {
	CurrentSheetName      string
	AlternativeSheetNames []string
}

// BuildRadar assembles sanitized records into the validated radar model.
//
// Rings are created in first-seen order with zero-based Order values; the
// fifth distinct ring fails immediately with TOO_MANY_RINGS rather than
// after full collection. Quadrants are created in first-seen order with
// capitalized display names, and the exactly-four rule is re-checked here
// even though ContentValidator enforces it earlier: content can arrive from
// a path that never ran the pre-check.
func BuildRadar(records []BlipRecord, meta SheetMeta) (Radar, error) {
	ringIndex := make(map[string]*Ring)
	var rings []*Ring

	quadIndex := make(map[string]int)
	var quadrants []Quadrant

	for _, rec := range records {
		ring, ok := ringIndex[rec.Ring]
		if !ok {
			if len(rings) == MaxRings {
				return Radar{}, &MalformedDataError{Reason: TooManyRings}
			}
			ring = &Ring{Name: rec.RingLabel, Order: len(rings)}
			ringIndex[rec.Ring] = ring
			rings = append(rings, ring)
		}

		qi, ok := quadIndex[rec.Quadrant]
		if !ok {
			qi = len(quadrants)
			quadIndex[rec.Quadrant] = qi
			quadrants = append(quadrants, Quadrant{Name: capitalize(rec.QuadrantLabel)})
		}

		quadrants[qi].Blips = append(quadrants[qi].Blips, Blip{
			Name:        rec.Name,
			Ring:        ring,
			IsNew:       rec.IsNew,
			Topic:       rec.Topic,
			Description: rec.Description,
		})
	}

	switch {
	case len(quadrants) > QuadrantCount:
		return Radar{}, &MalformedDataError{Reason: TooManyQuadrants}
	case len(quadrants) < QuadrantCount:
		return Radar{}, &MalformedDataError{Reason: LessThanFourQuadrants}
	}

	radar := Radar{
		sheetName: meta.CurrentSheetName,
		altSheets: append([]string(nil), meta.AlternativeSheetNames...),
		rings:     make([]Ring, len(rings)),
	}
	copy(radar.quadrants[:], quadrants)
	for i, r := range rings {
		radar.rings[i] = *r
	}

	return radar, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
