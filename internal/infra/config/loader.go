package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

// DefaultPath is where Load looks when the caller gives no explicit path.
const DefaultPath = "radar.yaml"

// Load reads and maps a radar.yaml. A missing file is a not-found error;
// callers that tolerate absence should use LoadOrDefault.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindTransport
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindTransport,
			Path: path,
			Err:  err,
		}
	}

	return Map(dto), nil
}

// LoadOrDefault loads the given path, falling back to defaults when the file
// does not exist. An empty path means the default location.
func LoadOrDefault(path string) (domain.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}
	return cfg, nil
}
