package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// SourceKind is the closed set of source protocols a reference can resolve to.
type SourceKind string

const (
	SourceNone  SourceKind = "none"
	SourceCSV   SourceKind = "csv"
	SourceJSON  SourceKind = "json"
	SourceSheet SourceKind = "sheet"
)

// AuthMode selects how the spreadsheet source authorizes its reads.
type AuthMode string

const (
	AuthAPIKey AuthMode = "api_key"
	AuthOAuth  AuthMode = "oauth"
)

// Source is the resolved form of an incoming reference. Exactly one variant
// applies: flat sources carry URL, spreadsheet sources carry SheetID (plus
// the auth mode picked once at resolution time).
type Source struct {
	Kind      SourceKind
	URL       string
	SheetID   string
	SheetName string
	Auth      AuthMode
}

var sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([0-9a-zA-Z\-_]+)`)

// ResolveSource inspects the query parameters of an incoming reference and
// picks the source protocol, in precedence order: a sheetId ending in .csv,
// one ending in .json, one hosted on the spreadsheet provider's domain, or
// none at all. It validates reference shape only, never content.
func ResolveSource(query url.Values, cfg Config) Source {
	ref := strings.TrimSpace(query.Get("sheetId"))
	if ref == "" {
		return Source{Kind: SourceNone}
	}

	switch {
	case strings.HasSuffix(ref, ".csv"):
		return Source{Kind: SourceCSV, URL: ref}
	case strings.HasSuffix(ref, ".json"):
		return Source{Kind: SourceJSON, URL: ref}
	}

	u, err := url.Parse(ref)
	if err != nil || !hostMatches(u.Host, cfg.Sheets.ProviderDomain) {
		return Source{Kind: SourceNone}
	}

	m := sheetIDPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return Source{Kind: SourceNone}
	}

	mode := AuthOAuth
	if cfg.Sheets.APIKey != "" {
		mode = AuthAPIKey
	}

	return Source{
		Kind:      SourceSheet,
		SheetID:   m[1],
		SheetName: strings.TrimSpace(query.Get("sheetName")),
		Auth:      mode,
	}
}

func hostMatches(host, domain string) bool {
	if domain == "" || host == "" {
		return false
	}
	host = strings.ToLower(host)
	domain = strings.ToLower(domain)
	return host == domain || strings.HasSuffix(host, "."+domain)
}
