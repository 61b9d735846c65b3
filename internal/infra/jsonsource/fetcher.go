// Package jsonsource fetches a public JSON file over HTTP. The expected body
// is a JSON array of flat objects; the header set is the key set of the
// first element.
package jsonsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/csvsource"
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

	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		return domain.SourceData{}, &domain.OpError{
			Op:   "jsonsource.parse",
			Kind: domain.KindTransport,
			Path: f.url,
			Err:  err,
		}
	}

	data := domain.SourceData{Title: csvsource.FileName(f.url)}
	if len(items) == 0 {
		return data, nil
	}

	// JSON objects are unordered; sort the keys so the header set is stable
	// across runs. Validation ignores order anyway.
	for k := range items[0] {
		data.Headers = append(data.Headers, k)
	}
	sort.Strings(data.Headers)

	for _, item := range items {
		row := make(domain.RawRow, len(item))
		for k, v := range item {
			row[k] = stringify(v)
		}
		data.Rows = append(data.Rows, row)
	}

	return data, nil
}

// stringify renders scalar JSON values the way their spreadsheet cell would
// read, so a JSON boolean true satisfies the isNew rule.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
