package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SmitUplenchwar2687/worldclock/internal/config"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example config file",
		Long: `Writes an example config file with a local clock and three named
time zones. The format follows the file extension (.toml, .yaml/.yml, .json).
An existing file is left alone unless --force is given.`,
		Example: `  worldclock init
  worldclock init --config ./worldclock.yaml
  worldclock init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)

			path, err := opts.path()
			if err != nil {
				return err
			}

			log.Debug("writing example config", "path", path, "force", force)
			if err := config.WriteExample(path, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
