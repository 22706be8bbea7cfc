package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/wort/pkg/config"
)

func newGenConfigCmd(opts *options) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !write {
				content, err := config.GenerateContent()
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, content)
				return err
			}

			path := opts.configPath
			if path == "" {
				path = config.Path()
			}
			written, err := config.Write(opts.fs, path, force)
			if err != nil {
				return err
			}
			if written {
				fmt.Fprintf(out, MsgConfigWritten, path)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigExists, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
