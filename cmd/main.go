package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ngld/quickshot/tools/pkg/config"
	"github.com/ngld/quickshot/tools/pkg/launch"
)

var rootCmd = &cobra.Command{
	Use:   "quickshot [configure] [debug] [build]",
	Short: "Rebuilds and launches the QuickShot demo",
	Long: `Optionally configures and builds the QuickShot demo, removes stale bitmap captures from the
current directory and launches the demo.

All three arguments are positional switches: any non-empty value enables them.
  configure  run cmake against the project directory
  debug      select the debug build type while configuring
  build      run make and wait for the build output to settle

Switches starting with "-" would be read as flags; pass them after "--",
i.e. quickshot -- -x`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, seq, err := setup(cmd)
		if err != nil {
			return err
		}

		flags := launch.ParseFlags(args)
		if len(args) > 3 {
			zerolog.Ctx(ctx).Debug().Strs("args", args[3:]).Msg("Ignoring extra arguments")
		}

		return seq.Run(ctx, flags)
	},
}

// setup loads the config and builds the logger and sequencer shared by all commands
func setup(cmd *cobra.Command) (context.Context, *launch.Sequencer, error) {
	flags := cmd.Flags()
	cfgFile, err := flags.GetString("config")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if flags.Changed("log-level") {
		level, err := flags.GetString("log-level")
		if err != nil {
			return nil, nil, err
		}

		if err = cfg.SetLogLevel(level); err != nil {
			return nil, nil, err
		}
	}

	if flags.Changed("json") {
		cfg.Log.JSON, err = flags.GetBool("json")
		if err != nil {
			return nil, nil, err
		}
	}

	dryRun, err := flags.GetBool("dry")
	if err != nil {
		return nil, nil, err
	}

	var logger zerolog.Logger
	if cfg.Log.JSON {
		logger = zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(NewConsoleWriter(cmd.ErrOrStderr()))
	}
	logger = logger.Level(cfg.LogLevel())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx)
	ctx = launch.WithLogger(ctx, &logger)

	seq := launch.NewSequencer(launch.Options{
		Dir: ".",
		Commands: launch.Commands{
			Configure:   cfg.Commands.Configure,
			DebugOption: cfg.DebugOption,
			Project:     cfg.Project,
			Build:       cfg.Commands.Build,
			Demo:        cfg.Commands.Demo,
		},
		ImageMarker: cfg.ImageMarker,
		SettleDelay: cfg.SettleDelay,
		DryRun:      dryRun,
	}, launch.NewShellRunner("."), launch.NewBarSleeper(cfg.Log.JSON))

	return ctx, seq, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("dry", "n", false, "dry run; only print the commands, don't execute or delete anything")
	flags.StringP("config", "c", config.DefaultFile, "TOML config file; ignored if it doesn't exist")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Bool("json", false, "output JSON log lines instead of pretty console messages")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
