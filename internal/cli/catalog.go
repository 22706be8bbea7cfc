package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/wort/pkg/catalog"
	"github.com/arthur-debert/wort/pkg/report"
)

func newCatalogCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   MsgCatalogShort,
		Example: MsgCatalogExample,
		GroupID: "tools",
	}

	var search string
	cmd.PersistentFlags().StringVarP(&search, "search", "s", "", MsgFlagSearch)

	cmd.AddCommand(&cobra.Command{
		Use:     "fermentables",
		Aliases: []string{"f"},
		Short:   MsgFermentablesLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd, report.CatalogFermentables(catalog.SearchFermentables(search)))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "cultures",
		Aliases: []string{"c", "yeast"},
		Short:   MsgCulturesLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd, report.CatalogCultures(catalog.SearchCultures(search)))
		},
	})
	return cmd
}
