package csvsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestBuildParsesHeaderAndRows(t *testing.T) {
	server := serve(t, http.StatusOK,
		"name,ring,quadrant,isNew,description\n"+
			"Go,Adopt,languages,TRUE,strongly typed\n"+
			"Kafka,Trial,platforms,false,event streaming\n")

	f := New(server.Client(), server.URL+"/radar.csv")
	data, err := f.Build(context.Background())
	require.NoError(t, err)

	require.Equal(t, domain.HeaderSet{"name", "ring", "quadrant", "isNew", "description"}, data.Headers)
	require.Len(t, data.Rows, 2)
	require.Equal(t, "Go", data.Rows[0].Get("name"))
	require.Equal(t, "event streaming", data.Rows[1].Get("description"))
	require.Equal(t, "radar.csv", data.Title)
	require.Nil(t, data.Cells)
	require.Empty(t, data.SheetName)
}

func TestBuildPadsRaggedRows(t *testing.T) {
	server := serve(t, http.StatusOK,
		"name,ring,quadrant\nGo,Adopt\n")

	f := New(server.Client(), server.URL+"/radar.csv")
	data, err := f.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, "", data.Rows[0].Get("quadrant"))
}

func TestBuildHeaderOnlyYieldsZeroRows(t *testing.T) {
	server := serve(t, http.StatusOK, "name,ring,quadrant,isNew,description\n")

	f := New(server.Client(), server.URL+"/radar.csv")
	data, err := f.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, data.Len())
	require.Len(t, data.Headers, 5)
}

func TestBuildNon2xxIsTransportError(t *testing.T) {
	server := serve(t, http.StatusInternalServerError, "boom")

	f := New(server.Client(), server.URL+"/radar.csv")
	_, err := f.Build(context.Background())
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.KindTransport))
}

func TestFileName(t *testing.T) {
	require.Equal(t, "radar.csv", FileName("https://example.com/a/b/radar.csv"))
	require.Equal(t, "radar.csv", FileName("https://example.com/radar.csv?x=1"))
}
