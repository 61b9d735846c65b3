package sheetsource

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

const metadataBody = `{
	"properties": {"title": "Tech Radar"},
	"sheets": [
		{"properties": {"title": "Radar 2026"}},
		{"properties": {"title": "Archive"}}
	]
}`

const valuesBody = `{
	"values": [
		["name", "ring", "quadrant", "isNew", "description"],
		["Go", "Adopt", "languages", "TRUE", "typed"],
		["Kafka", "Trial", "platforms", false, 42]
	]
}`

type fakeAuth struct {
	token    string
	identity string
	forces   []bool
	onLogin  func(force bool)
}

func (f *fakeAuth) Login(_ context.Context, force bool) (string, error) {
	f.forces = append(f.forces, force)
	if f.onLogin != nil {
		f.onLogin(force)
	}
	return f.token, nil
}

func (f *fakeAuth) CurrentIdentity() string { return f.identity }

// sheetsAPI is a minimal stand-in for the provider's read API.
func sheetsAPI(t *testing.T, docExists bool, wantBearer string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/v4/spreadsheets/", func(w http.ResponseWriter, r *http.Request) {
		if !docExists {
			http.NotFound(w, r)
			return
		}
		if strings.Contains(r.URL.Path, "/values/") {
			if wantBearer != "" && r.Header.Get("Authorization") != "Bearer "+wantBearer {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			fmt.Fprint(w, valuesBody)
			return
		}
		fmt.Fprint(w, metadataBody)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func sheetSource(name string, mode domain.AuthMode) domain.Source {
	return domain.Source{Kind: domain.SourceSheet, SheetID: "doc-1", SheetName: name, Auth: mode}
}

func TestBuildPublicAPIKeyMode(t *testing.T) {
	server := sheetsAPI(t, true, "")
	cfg := domain.SheetsConfig{BaseURL: server.URL, APIKey: "k-123"}

	f := New(server.Client(), cfg, sheetSource("", domain.AuthAPIKey), nil)
	data, err := f.Build(context.Background())
	require.NoError(t, err)

	require.Equal(t, "Tech Radar", data.Title)
	require.Equal(t, "Radar 2026", data.SheetName) // first sheet by default
	require.Equal(t, []string{"Radar 2026", "Archive"}, data.SheetNames)
	require.Equal(t, domain.HeaderSet{"name", "ring", "quadrant", "isNew", "description"}, data.Headers)
	require.Len(t, data.Cells, 2)
	// Non-string cells read the way they display.
	require.Equal(t, []string{"Kafka", "Trial", "platforms", "false", "42"}, data.Cells[1])
}

func TestBuildTargetsRequestedSheet(t *testing.T) {
	var valuesPath string
	server := sheetsAPI(t, true, "")
	base := server.Client().Transport
	server.Client().Transport = roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if strings.Contains(r.URL.Path, "/values/") {
			valuesPath = r.URL.Path
		}
		return base.RoundTrip(r)
	})

	cfg := domain.SheetsConfig{BaseURL: server.URL, APIKey: "k-123"}
	f := New(server.Client(), cfg, sheetSource("Archive", domain.AuthAPIKey), nil)

	data, err := f.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Archive", data.SheetName)
	require.Contains(t, valuesPath, "/values/Archive")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestBuildMissingDocumentFailsBeforeAuth(t *testing.T) {
	server := sheetsAPI(t, false, "")
	cfg := domain.SheetsConfig{BaseURL: server.URL}
	auth := &fakeAuth{token: "t"}

	f := New(server.Client(), cfg, sheetSource("", domain.AuthOAuth), auth)
	_, err := f.Build(context.Background())

	var notFound *domain.SheetNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "doc-1", notFound.SheetID)
	require.Empty(t, auth.forces, "no authentication may be attempted for a missing document")
}

func TestBuildAuthorizedOAuthFetch(t *testing.T) {
	server := sheetsAPI(t, true, "good-token")
	cfg := domain.SheetsConfig{BaseURL: server.URL}
	auth := &fakeAuth{token: "good-token", identity: "dev@example.com"}

	f := New(server.Client(), cfg, sheetSource("", domain.AuthOAuth), auth)
	data, err := f.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, []bool{false}, auth.forces)
	require.Len(t, data.Cells, 2)
}

func TestBuildForbiddenSurfacesUnauthorizedWithIdentity(t *testing.T) {
	server := sheetsAPI(t, true, "other-token")
	cfg := domain.SheetsConfig{BaseURL: server.URL}
	auth := &fakeAuth{token: "stale-token", identity: "dev@example.com"}

	f := New(server.Client(), cfg, sheetSource("", domain.AuthOAuth), auth)
	_, err := f.Build(context.Background())

	var unauthorized *domain.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	require.Equal(t, "dev@example.com", unauthorized.Identity)
}

func TestForceReauthRetriesWithFreshToken(t *testing.T) {
	server := sheetsAPI(t, true, "fresh-token")
	cfg := domain.SheetsConfig{BaseURL: server.URL}

	auth := &fakeAuth{token: "stale-token", identity: "dev@example.com"}
	auth.onLogin = func(force bool) {
		if force {
			auth.token = "fresh-token"
		}
	}

	f := New(server.Client(), cfg, sheetSource("", domain.AuthOAuth), auth)

	_, err := f.Build(context.Background())
	require.True(t, domain.IsKind(err, domain.KindUnauthorized))

	// The caller-invoked recovery action: force re-auth, then build again.
	f.ForceReauth()
	data, err := f.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, auth.forces)
	require.Len(t, data.Cells, 2)

	// The force flag must not stick to later builds.
	_, err = f.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, auth.forces)
}

func TestNamesReadsMetadataOnly(t *testing.T) {
	server := sheetsAPI(t, true, "never-issued")
	cfg := domain.SheetsConfig{BaseURL: server.URL}
	auth := &fakeAuth{token: "t"}

	f := New(server.Client(), cfg, sheetSource("", domain.AuthOAuth), auth)
	title, names, err := f.Names(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Tech Radar", title)
	require.Equal(t, []string{"Radar 2026", "Archive"}, names)
	require.Empty(t, auth.forces)
}
