package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyrange/creducido/internal/config"
	"github.com/tinyrange/creducido/internal/diag"
	"github.com/tinyrange/creducido/internal/driver"
	"github.com/tinyrange/creducido/internal/logging"
)

// errDiagnostics signals that diagnostics were already printed and only
// the exit status is left to set.
var errDiagnostics = errors.New("diagnostics reported")

type app struct {
	stdout, stderr io.Writer

	cfgFile  string
	logLevel string
	color    string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "creducido",
		Short: "Scanner and parser for the C-reducido language",
		Long: `creducido checks programs written in C-reducido, a small subset of C
with int/char scalars, prototypes, if/else, while and return.

Commands:
  tokens  - print the token stream of a file
  parse   - print the syntax tree of a file
  check   - parse many files and report diagnostics
  watch   - re-check files whenever they change`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./creducido.toml if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.color, "color", "", "colored diagnostics: auto, always, never")

	root.AddCommand(
		a.tokensCmd(),
		a.parseCmd(),
		a.checkCmd(),
		a.watchCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.cfgFile
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = config.Discover(wd)
		}
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.color
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("jobs") {
		cfg.Check.Jobs, _ = flags.GetInt("jobs")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	if path != "" {
		log.Debug("loaded config", "path", path)
	}
	return nil
}

func (a *app) printer() *diag.Printer {
	switch a.cfg.Output.Color {
	case "never":
		return &diag.Printer{W: a.stderr}
	case "always":
		return &diag.Printer{W: a.stderr, Styled: true, Force: true}
	default:
		return &diag.Printer{W: a.stderr, Styled: true}
	}
}

func (a *app) driver() *driver.Driver {
	return &driver.Driver{Log: a.log, Jobs: a.cfg.Check.Jobs}
}

// report prints the diagnostics of r and returns errDiagnostics if any.
func (a *app) report(r *driver.Result) error {
	if len(r.Diags) == 0 {
		return nil
	}
	if err := a.printer().PrintAll(r.Diags, r.Src); err != nil {
		return err
	}
	return errDiagnostics
}
