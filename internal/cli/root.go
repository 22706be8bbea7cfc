// Package cli wires the wort packages into the command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/wort/internal/version"
	"github.com/arthur-debert/wort/pkg/config"
	"github.com/arthur-debert/wort/pkg/logging"
	"github.com/arthur-debert/wort/pkg/report"
)

// options are the persistent flags shared by every command.
type options struct {
	fs         afero.Fs
	verbosity  int
	format     string
	configPath string
	sets       []string
	overrides  []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	rootCmd := &cobra.Command{
		Use:     "wort",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	flags.StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	flags.StringArrayVarP(&opts.sets, "parameter-set", "p", nil, MsgFlagSet)
	flags.StringArrayVar(&opts.overrides, "set", nil, MsgFlagOverride)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return report.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: "brew", Title: "BREWING:"},
		&cobra.Group{ID: "tools", Title: "TOOLS:"},
		&cobra.Group{ID: "misc", Title: "MISC:"},
	)

	rootCmd.AddCommand(newBrewCmd(opts))
	rootCmd.AddCommand(newIngredientsCmd(opts))
	rootCmd.AddCommand(newLogCmd(opts))
	rootCmd.AddCommand(newCatalogCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newPrimingCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig resolves the brewing parameters below the recipe level. The
// --set overrides are returned apart so they can win over the recipe.
func (o *options) loadConfig() (base, overrides map[string]any, err error) {
	overrides, err = config.ParseOverrides(o.overrides)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(config.Options{
		Fs:   o.fs,
		Path: o.configPath,
		Sets: o.sets,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Debug().
		Str("file", cfg.File).
		Strs("sets", o.sets).
		Int("overrides", len(overrides)).
		Msg("Configuration loaded")
	return cfg.Values, overrides, nil
}

func (o *options) render(cmd *cobra.Command, tables ...report.Table) error {
	format, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), format, tables...)
}
