package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo/internal/app"
	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/store"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// UIFunc runs the interactive UI for an app.
type UIFunc func(a *app.App, charLimit int) error

// Options wires the command to its environment.
type Options struct {
	Stdout, Stderr io.Writer
	RunUI          UIFunc
}

// usageError marks bad invocations (exit code 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Run executes the CLI and returns the process exit code.
func Run(args []string, opt Options) int {
	if opt.RunUI == nil {
		opt.RunUI = tui.Run
	}
	cmd := newRootCmd(opt)
	cmd.SetArgs(args)
	cmd.SetOut(opt.Stdout)
	cmd.SetErr(opt.Stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{err}
	})

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(opt.Stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(opt.Stderr)
		fmt.Fprint(opt.Stderr, cmd.UsageString())
		return 2
	}
	return 1
}

func newRootCmd(opt Options) *cobra.Command {
	var (
		configFile, theme, logFile, logLevel, seed string
		dark                                       bool
	)

	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - a tiny terminal to-do list",
		Long: `todo - a tiny terminal to-do list

Keys:
  a        add an item
  space    mark done / not done
  d        remove the selected item
  /        search (case-sensitive)
  t        toggle light/dark theme
  q        quit

Items live in memory only; --seed imports a JSON list at startup.`,
		Example: `  todo
  todo --dark
  todo --seed items.json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown subcommand: %s", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ov := config.Overrides{}
			flags := cmd.Flags()
			if flags.Changed("config") {
				ov.ConfigFile = &configFile
			}
			if flags.Changed("theme") {
				ov.Theme = &theme
			}
			if flags.Changed("dark") {
				t := config.ThemeLight
				if dark {
					t = config.ThemeDark
				}
				ov.Theme = &t
			}
			if flags.Changed("log-file") {
				ov.LogFile = &logFile
			}
			if flags.Changed("log-level") {
				ov.LogLevel = &logLevel
			}
			if flags.Changed("seed") {
				ov.Seed = &seed
			}
			return run(ov, opt)
		},
	}

	f := root.Flags()
	f.StringVar(&configFile, "config", "", "path to a TOML config file")
	f.StringVar(&theme, "theme", config.ThemeLight, "initial theme (light|dark)")
	f.BoolVar(&dark, "dark", false, "start in the dark theme (overrides --theme)")
	f.StringVar(&logFile, "log-file", "", "write logs to this file")
	f.StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	f.StringVar(&seed, "seed", "", "import items from a JSON file at startup")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "todo", Version)
		},
	})
	return root
}

func run(ov config.Overrides, opt Options) error {
	cfg, err := config.Load(ov)
	if err != nil {
		return usageError{fmt.Errorf("config: %w", err)}
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closeLog()

	a := app.New(store.New(), cfg.Dark(), logger)
	if cfg.Seed != "" {
		seeds, err := jsonstore.Load(cfg.Seed)
		if err != nil {
			return fmt.Errorf("seed %s: %w", cfg.Seed, err)
		}
		a.Seed(seeds)
	}

	logger.Info("starting", "theme", cfg.Theme, "items", a.Store.Len())
	if err := opt.RunUI(a, cfg.CharLimit); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	done, pending := a.Store.Stats()
	logger.Info("exiting", "done", done, "pending", pending)
	return nil
}
