package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SmitUplenchwar2687/worldclock/internal/clock"
	"github.com/SmitUplenchwar2687/worldclock/internal/config"
	"github.com/SmitUplenchwar2687/worldclock/internal/logger"
	"github.com/SmitUplenchwar2687/worldclock/internal/render"
	"github.com/SmitUplenchwar2687/worldclock/internal/table"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	level      slog.Level
}

// NewRootCmd creates the root worldclock command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(clock.NewRealClock())
}

func newRootCmd(clk clock.Clock) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "worldclock",
		Short: "Show the current time in multiple time zones",
		Long: `Shows the current time in multiple time zones.

The config file consists of a series of [[clocks]] definitions. Each may set
a time zone with the "tz" key; to list available time zones you can use
"timedatectl list-timezones". A clock without "tz" shows local time.
Optionally a clock sets a custom "name"; if omitted, the name of the time
zone is used. With no clocks at all, a single local clock is shown.

Example:

    # Local clock
    [[clocks]]

    [[clocks]]
    tz = "Europe/Berlin"

    [[clocks]]
    name = "Costa Rica"
    tz = "America/Costa_Rica"`,
		Example: `  worldclock
  worldclock --config ~/clocks.toml
  worldclock init`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.level = level
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)

			cfg, _, err := opts.load(log)
			if err != nil {
				return err
			}

			// One instant for every row.
			instant := clk.Now()
			log.Debug("rendering clocks", "count", len(cfg.Clocks), "instant", instant.UTC().Format(time.RFC3339))

			rows := render.Render(cfg.Clocks, instant, time.Local)
			return table.Print(cmd.OutOrStdout(), rows)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default <user config dir>/"+config.FileName+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", logger.DefaultLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newInitCmd(opts),
		newCheckCmd(opts),
	)

	return root
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logger.New(o.level, cmd.ErrOrStderr())
}

// path returns the --config value or the default config path.
func (o *rootOptions) path() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// load resolves the config path, then reads and validates the file.
func (o *rootOptions) load(log *slog.Logger) (config.Config, string, error) {
	path, err := o.path()
	if err != nil {
		return config.Config{}, "", err
	}

	log.Debug("loading config", "path", path)
	cfg, err := config.LoadFile(path)
	if err != nil {
		return config.Config{}, path, err
	}

	for _, key := range cfg.Undecoded {
		log.Warn("ignoring unknown config key", "path", path, "key", key)
	}
	return cfg, path, nil
}
