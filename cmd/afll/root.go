package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrithik-sp/afll/internal/config"
	"github.com/hrithik-sp/afll/internal/logger"
)

// errFailed is returned by commands that already reported their
// diagnostics and only need a non-zero exit status.
var errFailed = errors.New("failed")

// options carries the persistent flags and the configuration resolved
// from them before any subcommand runs.
type options struct {
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool

	cfg    config.Config
	styles styles
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "afll",
		Short: "afll - tokenizer and parser for a small imperative language",
		Long: `afll scans and parses programs written in a small imperative language
with assignments, calls, if/else, for-in-range loops, switch/case and
function definitions.

Commands:
  tokens   - print the token stream of a file
  parse    - print the syntax tree of a file
  check    - report whether files parse
  demo     - parse the built-in sample programs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file, TOML or YAML (default: $AFLL_CONFIG or ./afll.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newTokensCmd(opts),
		newParseCmd(opts),
		newCheckCmd(opts),
		newDemoCmd(opts),
		newVersionCmd(),
	)
	return root
}

// setup resolves the configuration. Explicit flags win over the file,
// the file wins over defaults.
func (o *options) setup(cmd *cobra.Command) error {
	path := o.cfgFile
	if path == "" {
		path = config.Discover(".")
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		o.cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		o.cfg.Log.Format = o.logFormat
	}
	if o.noColor {
		o.cfg.Output.Color = false
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(o.cfg.Log.Level)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Config{
		Level:   level,
		Format:  o.cfg.Log.Format,
		Output:  cmd.ErrOrStderr(),
		LogFile: o.cfg.Log.File,
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	o.styles = newStyles(o.cfg.Output.Color)
	logger.Debug("Configuration loaded", "config", path, "level", o.cfg.Log.Level, "output", o.cfg.Output.Format)
	return nil
}

// readSource reads the named file, or standard input for "-".
func readSource(cmd *cobra.Command, filename string) (string, error) {
	var (
		data []byte
		err  error
	)
	if filename == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
