package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, ref string, extra url.Values, cfg Config) Source {
	t.Helper()
	q := url.Values{}
	if ref != "" {
		q.Set("sheetId", ref)
	}
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return ResolveSource(q, cfg)
}

func TestResolveSourcePrecedence(t *testing.T) {
	cfg := DefaultConfig()

	src := resolve(t, "https://example.com/data/radar.csv", nil, cfg)
	require.Equal(t, SourceCSV, src.Kind)
	require.Equal(t, "https://example.com/data/radar.csv", src.URL)

	src = resolve(t, "https://example.com/data/radar.json", nil, cfg)
	require.Equal(t, SourceJSON, src.Kind)

	src = resolve(t, "https://docs.google.com/spreadsheets/d/1A2b3C-4d_5e/edit#gid=0", nil, cfg)
	require.Equal(t, SourceSheet, src.Kind)
	require.Equal(t, "1A2b3C-4d_5e", src.SheetID)
}

func TestResolveSourceSheetName(t *testing.T) {
	src := resolve(t, "https://docs.google.com/spreadsheets/d/abc123/edit",
		url.Values{"sheetName": {"2026-H1"}}, DefaultConfig())
	require.Equal(t, SourceSheet, src.Kind)
	require.Equal(t, "2026-H1", src.SheetName)
}

func TestResolveSourceAuthMode(t *testing.T) {
	cfg := DefaultConfig()
	src := resolve(t, "https://docs.google.com/spreadsheets/d/abc123/edit", nil, cfg)
	require.Equal(t, AuthOAuth, src.Auth)

	cfg.Sheets.APIKey = "k-123"
	src = resolve(t, "https://docs.google.com/spreadsheets/d/abc123/edit", nil, cfg)
	require.Equal(t, AuthAPIKey, src.Auth)
}

func TestResolveSourceNone(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		ref  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"wrong domain", "https://sheets.example.com/spreadsheets/d/abc123"},
		{"provider domain without document path", "https://docs.google.com/about"},
		{"bare identifier", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, SourceNone, resolve(t, tt.ref, nil, cfg).Kind)
		})
	}
}

func TestResolveSourceSubdomainOfProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sheets.ProviderDomain = "google.com"

	src := resolve(t, "https://docs.google.com/spreadsheets/d/abc123/edit", nil, cfg)
	require.Equal(t, SourceSheet, src.Kind)

	// Suffix matching is on domain labels, not raw strings.
	src = resolve(t, "https://evilgoogle.com/spreadsheets/d/abc123", nil, cfg)
	require.Equal(t, SourceNone, src.Kind)
}
