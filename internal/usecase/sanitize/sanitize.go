// Package sanitize normalizes one raw source row into the canonical blip
// record. Two entry points exist for the two source shapes, an
// already-flattened row and a positional spreadsheet row, but both produce
// the same output, which is what lets the model builder stay
// source-agnostic.
//
// Free-text fields (name, description, topic) pass through untouched; HTML
// escaping is the rendering collaborator's concern.
package sanitize

import (
	"strings"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

// Flat sanitizes a row whose values are already keyed by header name.
func Flat(raw domain.RawRow, hs domain.HeaderSet) domain.BlipRecord {
	return fromLookup(raw.Get)
}

// Indexed sanitizes a positional spreadsheet row, resolving each field
// through the header set.
func Indexed(cells []string, hs domain.HeaderSet) domain.BlipRecord {
	return fromLookup(func(name string) string {
		idx := hs.Index(name)
		if idx < 0 || idx >= len(cells) {
			return ""
		}
		return cells[idx]
	})
}

func fromLookup(get func(string) string) domain.BlipRecord {
	ring := strings.TrimSpace(get("ring"))
	quadrant := strings.TrimSpace(get("quadrant"))

	return domain.BlipRecord{
		Name:          get("name"),
		Ring:          strings.ToLower(ring),
		RingLabel:     ring,
		Quadrant:      strings.ToLower(quadrant),
		QuadrantLabel: quadrant,
		IsNew:         isNew(get("isNew")),
		Topic:         get(domain.HeaderTopic),
		Description:   get("description"),
	}
}

// isNew treats exactly the literal "true", in any casing, as true. Anything
// else (empty, "false", "yes", ...) is false.
func isNew(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
