package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

func TestGetReturnsBodyAndStatus(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("denied"))
	}))
	defer server.Close()

	body, status, err := Get(context.Background(), server.Client(), server.URL, "tok-1")
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "denied", string(body))
	require.Equal(t, "Bearer tok-1", gotAuth)
}

func TestGetNoBearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, status, err := Get(context.Background(), server.Client(), server.URL, "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
}

func TestFetchFailsOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.Client(), server.URL)
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.KindTransport))
}

func TestGetConnectionErrorIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, _, err := Get(context.Background(), http.DefaultClient, url, "")
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.KindTransport))
}
