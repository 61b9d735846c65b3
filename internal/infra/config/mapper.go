package config

import (
	"strings"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

// Map turns the YAML DTO into a domain config, filling anything the file
// left out from the defaults.
func Map(dto YAMLConfig) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.UIRefresh2022 = dto.UIRefresh2022

	if v := strings.TrimSpace(dto.Sheets.BaseURL); v != "" {
		cfg.Sheets.BaseURL = strings.TrimSuffix(v, "/")
	}
	if v := strings.TrimSpace(dto.Sheets.ProviderDomain); v != "" {
		cfg.Sheets.ProviderDomain = v
	}
	cfg.Sheets.APIKey = strings.TrimSpace(dto.Sheets.APIKey)

	if v := strings.TrimSpace(dto.Sheets.OAuth.TokenURL); v != "" {
		cfg.Sheets.OAuth.TokenURL = v
	}
	cfg.Sheets.OAuth.ClientID = strings.TrimSpace(dto.Sheets.OAuth.ClientID)
	cfg.Sheets.OAuth.ClientSecret = strings.TrimSpace(dto.Sheets.OAuth.ClientSecret)
	cfg.Sheets.OAuth.RefreshToken = strings.TrimSpace(dto.Sheets.OAuth.RefreshToken)
	cfg.Sheets.OAuth.Identity = strings.TrimSpace(dto.Sheets.OAuth.Identity)

	return cfg
}
