package usecase

import (
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/ports"
	"github.com/IAG-Ent/build-your-own-radar/internal/usecase/sanitize"
	"github.com/IAG-Ent/build-your-own-radar/internal/usecase/validate"
)

// Ingest runs the full pipeline: resolve the reference, fetch raw rows,
// validate structure, sanitize every row, and build the radar model. Each
// invocation owns its own construction; there is no shared mutable state
// between runs.
type Ingest struct {
	cfg      domain.Config
	fetchers ports.FetcherResolver
	log      *slog.Logger
}

type IngestOption func(*Ingest)

func WithLogger(l *slog.Logger) IngestOption {
	return func(uc *Ingest) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewIngest(cfg domain.Config, fr ports.FetcherResolver, opts ...IngestOption) *Ingest {
	uc := &Ingest{
		cfg:      cfg,
		fetchers: fr,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Result is what a successful ingestion hands to the presentation boundary:
// the immutable radar plus the resolved display title.
type Result struct {
	Radar  domain.Radar
	Title  string
	Source domain.Source
}

// Execute ingests the source referenced by the given query parameters.
// On failure the first error propagates unchanged; no partial radar is ever
// returned.
func (uc *Ingest) Execute(ctx context.Context, query url.Values) (Result, error) {
	return uc.run(ctx, query, false)
}

// ExecuteForced repeats the ingestion with a forced re-authentication. It is
// the explicit recovery action for an unauthorized failure: the auth
// capability discards its cached session so the retry may run under a
// different identity.
func (uc *Ingest) ExecuteForced(ctx context.Context, query url.Values) (Result, error) {
	return uc.run(ctx, query, true)
}

func (uc *Ingest) run(ctx context.Context, query url.Values, forceReauth bool) (Result, error) {
	src := domain.ResolveSource(query, uc.cfg)
	if src.Kind == domain.SourceNone {
		return Result{}, domain.ErrNoSource
	}
	uc.log.Debug("ingest.resolved", "kind", string(src.Kind), "sheet_id", src.SheetID)

	fetcher, err := uc.fetchers.ForSource(src, forceReauth)
	if err != nil {
		return Result{}, err
	}

	data, err := fetcher.Build(ctx)
	if err != nil {
		return Result{}, err
	}
	uc.log.Debug("ingest.fetched", "rows", data.Len(), "headers", len(data.Headers))

	// Structural checks run against raw data, before any row is sanitized.
	if err := validate.Rows(data); err != nil {
		return Result{}, err
	}
	if err := validate.Headers(data.Headers); err != nil {
		return Result{}, err
	}
	if err := validate.Content(data); err != nil {
		return Result{}, err
	}

	records := sanitizeAll(data)

	radar, err := domain.BuildRadar(records, domain.SheetMeta{
		CurrentSheetName:      data.SheetName,
		AlternativeSheetNames: data.SheetNames,
	})
	if err != nil {
		return Result{}, err
	}

	title := data.Title
	if data.SheetName != "" {
		title = data.Title + " - " + data.SheetName
	}
	uc.log.Info("ingest.done", "title", title, "blips", data.Len())

	return Result{Radar: radar, Title: title, Source: src}, nil
}

// sanitizeAll flattens both source shapes into canonical records. Ring-order
// assignment depends on first-seen order across the entire row set, so every
// row is sanitized before model construction begins.
func sanitizeAll(data domain.SourceData) []domain.BlipRecord {
	records := make([]domain.BlipRecord, 0, data.Len())
	if data.Cells != nil {
		for _, cells := range data.Cells {
			records = append(records, sanitize.Indexed(cells, data.Headers))
		}
		return records
	}
	for _, raw := range data.Rows {
		records = append(records, sanitize.Flat(raw, data.Headers))
	}
	return records
}
