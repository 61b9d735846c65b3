package domain

// Config represents the minimal radar configuration loaded from radar.yaml.
type Config struct {
	Sheets SheetsConfig

	// UIRefresh2022 gates which presentation path wraps the ingestion
	// result. Opaque to the pipeline itself.
	UIRefresh2022 bool
}

// SheetsConfig describes the spreadsheet provider this radar reads from.
type SheetsConfig struct {
	// BaseURL is the root of the spreadsheet read API.
	BaseURL string

	// ProviderDomain marks a reference as a spreadsheet document when its
	// host ends in this domain.
	ProviderDomain string

	// APIKey enables public (no user login) document reads when set.
	APIKey string

	OAuth OAuthConfig
}

// OAuthConfig carries the credentials the token-based Authenticator mints
// access tokens from. The browser-level consent flow is outside this core.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	RefreshToken string

	// Identity is the human-readable account name shown when the source
	// rejects an authenticated fetch.
	Identity string
}

// DefaultConfig provides sane defaults if radar.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Sheets: SheetsConfig{
			BaseURL:        "https://sheets.googleapis.com",
			ProviderDomain: "docs.google.com",
			OAuth: OAuthConfig{
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		},
	}
}
