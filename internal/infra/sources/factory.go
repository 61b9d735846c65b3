// Package sources maps resolved source variants onto concrete fetchers.
package sources

import (
	"net/http"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/csvsource"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/jsonsource"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/sheetsource"
	"github.com/IAG-Ent/build-your-own-radar/internal/ports"
)

type Factory struct {
	client *http.Client
	cfg    domain.Config
	auth   ports.Authenticator
}

func NewFactory(client *http.Client, cfg domain.Config, auth ports.Authenticator) *Factory {
	return &Factory{client: client, cfg: cfg, auth: auth}
}

var _ ports.FetcherResolver = (*Factory)(nil)

func (f *Factory) ForSource(src domain.Source, forceReauth bool) (ports.SourceFetcher, error) {
	switch src.Kind {
	case domain.SourceCSV:
		return csvsource.New(f.client, src.URL), nil
	case domain.SourceJSON:
		return jsonsource.New(f.client, src.URL), nil
	case domain.SourceSheet:
		sf := sheetsource.New(f.client, f.cfg.Sheets, src, f.auth)
		if forceReauth {
			sf.ForceReauth()
		}
		return sf, nil
	default:
		return nil, domain.ErrNoSource
	}
}
