package cli

import (
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/httpclient"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/logger"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/oauthtoken"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/sheetsource"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/sources"
	"github.com/IAG-Ent/build-your-own-radar/internal/ui/picker"
	"github.com/IAG-Ent/build-your-own-radar/internal/usecase"
)

func ingestCmd() *cobra.Command {
	var sheet string
	var format string
	var pick bool
	var forceReauth bool

	c := &cobra.Command{
		Use:   "ingest <url>",
		Short: "Fetch, validate, and build the radar model from a source reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			query := url.Values{}
			query.Set("sheetId", args[0])
			if sheet != "" {
				query.Set("sheetName", sheet)
			}

			client := httpclient.New(httpclient.DefaultConfig())
			auth := oauthtoken.New(cfg.Sheets.OAuth, client)
			factory := sources.NewFactory(client, cfg, auth)
			uc := usecase.NewIngest(cfg, factory, usecase.WithLogger(logger.L()))

			if pick && sheet == "" {
				src := domain.ResolveSource(query, cfg)
				if src.Kind == domain.SourceSheet {
					f := sheetsource.New(client, cfg.Sheets, src, auth)
					title, names, namesErr := f.Names(cmd.Context())
					if namesErr != nil {
						return presentError(namesErr)
					}
					if len(names) > 1 {
						choice, pickErr := picker.Choose(title, names)
						if pickErr != nil {
							return pickErr
						}
						query.Set("sheetName", choice)
					}
				}
			}

			run := uc.Execute
			if forceReauth {
				run = uc.ExecuteForced
			}

			res, err := run(cmd.Context(), query)
			if err != nil {
				return presentError(err)
			}

			return printResult(os.Stdout, res, cfg, format)
		},
	}

	c.Flags().StringVarP(&sheet, "sheet", "s", "", "Target sheet name within a workbook (defaults to the first sheet)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&pick, "pick", false, "Choose the sheet interactively when the workbook has several")
	c.Flags().BoolVar(&forceReauth, "force-reauth", false, "Discard the cached identity and re-authenticate before fetching")
	return c
}
