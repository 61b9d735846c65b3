package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/httpclient"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/oauthtoken"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/sheetsource"
)

func sheetsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sheets <url>",
		Short: "List the sheet names of a spreadsheet workbook without ingesting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			query := url.Values{}
			query.Set("sheetId", args[0])

			src := domain.ResolveSource(query, cfg)
			if src.Kind != domain.SourceSheet {
				return fmt.Errorf("%q is not a spreadsheet reference", args[0])
			}

			client := httpclient.New(httpclient.DefaultConfig())
			auth := oauthtoken.New(cfg.Sheets.OAuth, client)
			f := sheetsource.New(client, cfg.Sheets, src, auth)

			title, names, err := f.Names(cmd.Context())
			if err != nil {
				return presentError(err)
			}

			fmt.Fprintln(os.Stdout, title)
			for _, n := range names {
				fmt.Fprintf(os.Stdout, "  %s\n", n)
			}
			return nil
		},
	}
	return c
}
