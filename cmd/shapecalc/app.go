package main

import (
	"io"
	"log/slog"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/internal/config"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	cfg        *config.Config
	format     string
	log        *slog.Logger

	// errorHandled is set by outputError so main doesn't double-print.
	errorHandled bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shapecalc",
		Short: "Compute the area of geometric figures",
		Long: "shapecalc validates circle and triangle dimensions and prints their area.\n" +
			"Settings may also come from SHAPECALC_* environment variables or a config file.",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		// No Run: prints help by default.
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	pf.String(config.FlagName(config.KeyFormat), config.DefaultFormat, "output format: json|text")
	pf.Int(config.FlagName(config.KeyPrecision), config.DefaultPrecision, "decimal places in text output (0-15)")
	pf.String(config.FlagName(config.KeyLang), config.DefaultLang, "BCP 47 language tag for number formatting in text output")
	pf.String(config.FlagName(config.KeyLogLevel), config.DefaultLogLevel, "log level: debug|info|warn|error")

	root.AddCommand(a.circleCmd())
	root.AddCommand(a.triangleCmd())
	return root
}

// setup loads configuration and installs the logger before any subcommand
// runs. A config error is reported in the format requested by flag or
// environment; a format set only in the config file is not known yet.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		a.format = config.RequestedFormat(cmd.Flags())
		return a.outputError(cmd.Name(), err)
	}
	a.cfg = cfg
	a.format = cfg.Format

	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	shape.SetLogger(a.log)
	return nil
}
