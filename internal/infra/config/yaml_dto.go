package config

type YAMLConfig struct {
	Sheets        YAMLSheets `yaml:"sheets"`
	UIRefresh2022 bool       `yaml:"ui_refresh_2022"`
}

type YAMLSheets struct {
	BaseURL        string    `yaml:"base_url"`
	ProviderDomain string    `yaml:"provider_domain"`
	APIKey         string    `yaml:"api_key"`
	OAuth          YAMLOAuth `yaml:"oauth"`
}

type YAMLOAuth struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	TokenURL     string `yaml:"token_url"`
	RefreshToken string `yaml:"refresh_token"`
	Identity     string `yaml:"identity"`
}
