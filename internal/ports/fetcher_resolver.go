package ports

import "github.com/IAG-Ent/build-your-own-radar/internal/domain"

// FetcherResolver maps a resolved source variant onto the fetcher that can
// retrieve it. forceReauth arms a gated spreadsheet fetch to discard the
// cached identity before fetching.
type FetcherResolver interface {
	ForSource(src domain.Source, forceReauth bool) (SourceFetcher, error)
}
