package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

// Source payloads are user-authored spreadsheets, not bulk data; 8MB is
// generous headroom.
const maxBodyBytes = 8 << 20

// Get performs a GET and returns the body and status code. Transport-level
// failures come back as domain transport errors; non-2xx statuses are the
// caller's to interpret (the spreadsheet source maps them onto its own
// taxonomy).
func Get(ctx context.Context, client *http.Client, rawURL string, bearer string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, &domain.OpError{
			Op:   "httpclient.get",
			Kind: domain.KindTransport,
			Path: rawURL,
			Err:  err,
		}
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, &domain.OpError{
			Op:   "httpclient.get",
			Kind: domain.KindTransport,
			Path: rawURL,
			Err:  err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, &domain.OpError{
			Op:   "httpclient.get",
			Kind: domain.KindTransport,
			Path: rawURL,
			Err:  err,
		}
	}

	return body, resp.StatusCode, nil
}

// Fetch performs a GET and fails on any non-2xx status. Flat sources use it
// directly since they have no status-specific branches.
func Fetch(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	body, status, err := Get(ctx, client, rawURL, "")
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &domain.OpError{
			Op:   "httpclient.fetch",
			Kind: domain.KindTransport,
			Path: rawURL,
			Err:  fmt.Errorf("unexpected status %d", status),
		}
	}
	return body, nil
}
