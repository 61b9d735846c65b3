// Package sheetsource reads a spreadsheet document through the provider's
// HTTP API. Two authorization modes exist: public reads via an API key, and
// user-authenticated reads via a bearer token from the auth capability.
// Either way the document's existence is probed first, so a missing document
// fails the same way before any auth is attempted.
package sheetsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/httpclient"
	"github.com/IAG-Ent/build-your-own-radar/internal/ports"
)

type Fetcher struct {
	client    *http.Client
	cfg       domain.SheetsConfig
	id        string
	sheetName string
	mode      domain.AuthMode
	auth      ports.Authenticator

	forceReauth bool
}

func New(client *http.Client, cfg domain.SheetsConfig, src domain.Source, auth ports.Authenticator) *Fetcher {
	return &Fetcher{
		client:    client,
		cfg:       cfg,
		id:        src.SheetID,
		sheetName: src.SheetName,
		mode:      src.Auth,
		auth:      auth,
	}
}

var _ ports.SourceFetcher = (*Fetcher)(nil)

// ForceReauth arms the next Build to discard the cached identity before
// requesting a token. Callers invoke it after an unauthorized failure; the
// retry itself is never automatic.
func (f *Fetcher) ForceReauth() { f.forceReauth = true }

// workbook is the metadata the existence probe yields.
type workbook struct {
	Title  string
	Sheets []string
}

func (f *Fetcher) Build(ctx context.Context) (domain.SourceData, error) {
	wb, err := f.probe(ctx)
	if err != nil {
		return domain.SourceData{}, err
	}

	sheet := f.sheetName
	if sheet == "" && len(wb.Sheets) > 0 {
		sheet = wb.Sheets[0]
	}

	var bearer string
	if f.mode == domain.AuthOAuth {
		force := f.forceReauth
		f.forceReauth = false

		bearer, err = f.auth.Login(ctx, force)
		if err != nil {
			return domain.SourceData{}, &domain.OpError{
				Op:   "sheetsource.login",
				Kind: domain.KindUnauthorized,
				Err:  err,
			}
		}
	}

	valuesURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		f.cfg.BaseURL, url.PathEscape(f.id), url.PathEscape(sheet))
	if f.mode == domain.AuthAPIKey {
		valuesURL += "?key=" + url.QueryEscape(f.cfg.APIKey)
	}

	body, status, err := httpclient.Get(ctx, f.client, valuesURL, bearer)
	if err != nil {
		return domain.SourceData{}, err
	}
	switch {
	case status == http.StatusForbidden:
		return domain.SourceData{}, &domain.UnauthorizedError{Identity: f.identity()}
	case status == http.StatusNotFound:
		return domain.SourceData{}, &domain.SheetNotFoundError{SheetID: f.id}
	case status < 200 || status > 299:
		return domain.SourceData{}, &domain.OpError{
			Op:   "sheetsource.values",
			Kind: domain.KindTransport,
			Path: valuesURL,
			Err:  fmt.Errorf("unexpected status %d", status),
		}
	}

	rows, err := parseValues(body)
	if err != nil {
		return domain.SourceData{}, &domain.OpError{
			Op:   "sheetsource.values",
			Kind: domain.KindTransport,
			Path: valuesURL,
			Err:  err,
		}
	}

	data := domain.SourceData{
		Title:      wb.Title,
		SheetName:  sheet,
		SheetNames: wb.Sheets,
	}
	if len(rows) == 0 {
		return data, nil
	}

	data.Headers = domain.HeaderSet(rows[0])
	data.Cells = rows[1:]
	return data, nil
}

// Names returns the document title and every sheet name in the workbook
// without reading any values.
func (f *Fetcher) Names(ctx context.Context) (string, []string, error) {
	wb, err := f.probe(ctx)
	if err != nil {
		return "", nil, err
	}
	return wb.Title, wb.Sheets, nil
}

// probe checks document existence and collects workbook metadata. It runs
// without user auth so a missing document is reported before any login.
func (f *Fetcher) probe(ctx context.Context) (workbook, error) {
	metaURL := fmt.Sprintf("%s/v4/spreadsheets/%s?fields=properties.title,sheets.properties.title",
		f.cfg.BaseURL, url.PathEscape(f.id))
	if f.cfg.APIKey != "" {
		metaURL += "&key=" + url.QueryEscape(f.cfg.APIKey)
	}

	body, status, err := httpclient.Get(ctx, f.client, metaURL, "")
	if err != nil {
		return workbook{}, err
	}
	if status == http.StatusNotFound {
		return workbook{}, &domain.SheetNotFoundError{SheetID: f.id}
	}
	if status < 200 || status > 299 {
		return workbook{}, &domain.OpError{
			Op:   "sheetsource.probe",
			Kind: domain.KindTransport,
			Path: metaURL,
			Err:  fmt.Errorf("unexpected status %d", status),
		}
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return workbook{}, &domain.OpError{
			Op:   "sheetsource.probe",
			Kind: domain.KindTransport,
			Path: metaURL,
			Err:  err,
		}
	}

	wb := workbook{Title: pathString(doc, "$.properties.title")}
	if titles, err := jsonpath.Get("$.sheets[*].properties.title", doc); err == nil {
		if list, ok := titles.([]any); ok {
			for _, t := range list {
				if s, ok := t.(string); ok {
					wb.Sheets = append(wb.Sheets, s)
				}
			}
		}
	}

	return wb, nil
}

func (f *Fetcher) identity() string {
	if f.auth == nil {
		return ""
	}
	return f.auth.CurrentIdentity()
}

func pathString(doc any, expr string) string {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// parseValues flattens the API's values payload into string cells, reading
// scalars the way their spreadsheet cell would display.
func parseValues(body []byte) ([][]string, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	raw, err := jsonpath.Get("$.values", doc)
	if err != nil {
		// A sheet with no values at all has no "values" member.
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("values is not an array")
	}

	rows := make([][]string, 0, len(list))
	for _, r := range list {
		cells, ok := r.([]any)
		if !ok {
			return nil, fmt.Errorf("values row is not an array")
		}
		row := make([]string, 0, len(cells))
		for _, c := range cells {
			row = append(row, cellString(c))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cellString(v any) string {
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
	default:
		return fmt.Sprintf("%v", t)
	}
}
