package ports

import (
	"context"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

// SourceFetcher retrieves raw tabular data from one concrete source kind.
// Every fetcher produces the same SourceData shape so the rest of the
// pipeline stays source-agnostic.
type SourceFetcher interface {
	Build(ctx context.Context) (domain.SourceData, error)
}
