// Package validate holds the pre-construction checks the pipeline runs
// against raw source data: row presence, required headers, and quadrant
// cardinality. All checks are fail-fast; nothing downstream runs once one of
// them rejects the data.
package validate

import (
	"strings"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

// Rows rejects a source that yielded zero data rows. It runs before any
// header check so an empty document reads as "missing content", not as a
// header problem.
func Rows(data domain.SourceData) error {
	if data.Len() == 0 {
		return &domain.MalformedDataError{Reason: domain.MissingContent}
	}
	return nil
}

// Headers checks the header set against the required column names,
// case-insensitively, ignoring order and any extra headers.
func Headers(hs domain.HeaderSet) error {
	for _, required := range domain.RequiredHeaders {
		if !hs.Has(required) {
			return &domain.MalformedDataError{Reason: domain.MissingHeaders}
		}
	}
	return nil
}

// Content counts the distinct quadrant values across the full row set and
// rejects anything other than exactly four. The ring-count limit is not
// checked here: the builder detects ring overflow incrementally so it is
// caught as early as possible.
func Content(data domain.SourceData) error {
	seen := make(map[string]struct{})
	for i := 0; i < data.Len(); i++ {
		q := strings.ToLower(strings.TrimSpace(data.Field(i, "quadrant")))
		seen[q] = struct{}{}
	}

	switch {
	case len(seen) > domain.QuadrantCount:
		return &domain.MalformedDataError{Reason: domain.TooManyQuadrants}
	case len(seen) < domain.QuadrantCount:
		return &domain.MalformedDataError{Reason: domain.LessThanFourQuadrants}
	}
	return nil
}
