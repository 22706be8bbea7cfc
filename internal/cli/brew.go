package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/wort/pkg/recipe"
	"github.com/arthur-debert/wort/pkg/report"
)

func newBrewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "brew <recipe.yaml>...",
		Short:   MsgBrewShort,
		Long:    MsgBrewLong,
		Example: MsgBrewExample,
		GroupID: "brew",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, overrides, err := opts.loadConfig()
			if err != nil {
				return err
			}

			results, err := recipe.EvaluateFiles(cmd.Context(), opts.fs, args, base, overrides)
			if err != nil {
				return err
			}

			var tables []report.Table
			for _, res := range results {
				tables = append(tables, report.FromEvaluation(res.Recipe.Name, res.Evaluation)...)
			}
			log.Info().Int("recipes", len(results)).Msg("Recipes evaluated")
			return opts.render(cmd, tables...)
		},
	}
}

func newIngredientsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "ingredients <recipe.yaml>",
		Short:   MsgIngredientsShort,
		GroupID: "brew",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.Load(opts.fs, args[0])
			if err != nil {
				return err
			}
			return opts.render(cmd, report.Ingredients(r.Name, r.Ingredients))
		},
	}
}

func newLogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "log <recipe.yaml>",
		Short:   MsgLogShort,
		Long:    MsgLogLong,
		GroupID: "brew",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, overrides, err := opts.loadConfig()
			if err != nil {
				return err
			}

			results, err := recipe.EvaluateFiles(cmd.Context(), opts.fs, args, base, overrides)
			if err != nil {
				return err
			}
			res := results[0]

			tbl, err := report.Log(res.Recipe.Name, res.Recipe.Log, res.Evaluation.Beer().SG)
			if err != nil {
				return err
			}
			return opts.render(cmd, tbl)
		},
	}
}
