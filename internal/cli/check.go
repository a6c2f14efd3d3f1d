package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config file without printing clocks",
		Long: `Reads the config file and resolves every time zone, reporting the
first problem found. Exits non-zero on the same errors the clock display would.`,
		Example: `  worldclock check
  worldclock check --config ~/clocks.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := opts.load(opts.logger(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d clock(s) OK\n", path, len(cfg.Clocks))
			return nil
		},
	}
}
