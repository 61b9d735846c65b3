// Package csvsource fetches a public CSV file over HTTP and parses it into
// the shared raw-row shape. The header set is inferred from the first line
// and kept alongside the rows, never inside them.
package csvsource

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/url"
	"path"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/httpclient"
	"github.com/IAG-Ent/build-your-own-radar/internal/ports"
)

type Fetcher struct {
	client *http.Client
	url    string
}

func New(client *http.Client, rawURL string) *Fetcher {
	return &Fetcher{client: client, url: rawURL}
}

var _ ports.SourceFetcher = (*Fetcher)(nil)

func (f *Fetcher) Build(ctx context.Context) (domain.SourceData, error) {
	body, err := httpclient.Fetch(ctx, f.client, f.url)
	if err != nil {
		return domain.SourceData{}, err
	}

	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1 // user-authored rows may be ragged
	records, err := r.ReadAll()
	if err != nil {
		return domain.SourceData{}, &domain.OpError{
			Op:   "csvsource.parse",
			Kind: domain.KindTransport,
			Path: f.url,
			Err:  err,
		}
	}

	data := domain.SourceData{Title: FileName(f.url)}
	if len(records) == 0 {
		return data, nil
	}

	data.Headers = domain.HeaderSet(records[0])
	for _, rec := range records[1:] {
		row := make(domain.RawRow, len(data.Headers))
		for i, h := range data.Headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		data.Rows = append(data.Rows, row)
	}

	return data, nil
}

// FileName derives the display title for a flat source: the last path
// segment of its URL, or the raw reference when it does not parse.
func FileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return rawURL
	}
	return path.Base(u.Path)
}
