package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AbhishekDinesan/hedgehog/internal/demo"
	"github.com/AbhishekDinesan/hedgehog/internal/infra/config"
	"github.com/AbhishekDinesan/hedgehog/internal/infra/logger"
	"github.com/AbhishekDinesan/hedgehog/internal/infra/prompt"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	values      []int
	pauseAfter  int
	remove      []int
	interactive bool
	debug       bool
	logFile     string
	noColor     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "listdemo",
		Short:        "Build a linked list step by step and print its chain",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			// stderr only carries logs when asked for with --debug
			logCfg := logger.Config{Path: opts.logFile, Debug: opts.debug}
			if opts.debug {
				logCfg.Writer = cmd.ErrOrStderr()
			}
			cleanup, err := logger.Setup(logCfg)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			r := demo.Runner{
				Out:    cmd.OutOrStdout(),
				Logger: logger.L(),
				Color:  !opts.noColor && !color.NoColor,
			}
			if opts.interactive {
				r.Pause = prompt.Pause()
			}

			_, err = r.Run(cmd.Context(), cfg)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML file with values, pause_after and remove")
	f.IntSliceVar(&opts.values, "values", nil, "values to append (default 10,20,30,40,50)")
	f.IntVar(&opts.pauseAfter, "pause-after", 0, "pause after this many appends, 0 disables")
	f.IntSliceVar(&opts.remove, "remove", nil, "values to remove after appending")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "wait for Enter at the pause point")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file (or the
// defaults when no file is given).
func resolveConfig(cmd *cobra.Command, opts options) (demo.Config, error) {
	cfg := demo.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return demo.Config{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("values") {
		cfg = cfg.WithValues(opts.values)
	}
	if f.Changed("pause-after") {
		cfg.PauseAfter = opts.pauseAfter
	}
	if f.Changed("remove") {
		cfg.Remove = opts.remove
	}

	if err := cfg.Validate(); err != nil {
		return demo.Config{}, &demo.OpError{Op: "cli.resolve_config", Kind: demo.KindInvalidConfig, Err: err}
	}
	return cfg, nil
}
