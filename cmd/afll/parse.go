package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrithik-sp/afll/internal/logger"
	"github.com/hrithik-sp/afll/internal/syntax"
)

func newParseCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file",
		Long: `Parse FILE and print its syntax tree as indented text, JSON or YAML.
Parsing stops at the first syntax error, which is reported on stderr
with exit status 1. Use - to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = opts.cfg.Output.Format
			}
			return opts.runParse(cmd, args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func (o *options) runParse(cmd *cobra.Command, filename, format string) error {
	var dump func(io.Writer, syntax.Node) error
	switch format {
	case "text":
		dump = func(w io.Writer, n syntax.Node) error {
			syntax.Fprint(w, n)
			return nil
		}
	case "json":
		dump = syntax.FprintJSON
	case "yaml":
		dump = syntax.FprintYAML
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}

	src, err := readSource(cmd, filename)
	if err != nil {
		return err
	}

	prog, _, err := o.parse(cmd.ErrOrStderr(), filename, src)
	if err != nil {
		return errFailed
	}
	return dump(cmd.OutOrStdout(), prog)
}

// parse parses src. Lexical errors are printed to w as warnings and
// returned alongside the tree; a syntax error is printed as a failure.
func (o *options) parse(w io.Writer, filename, src string) (*syntax.Program, syntax.ErrorList, error) {
	var lexErrs syntax.ErrorList
	errh := func(err error) {
		var le *syntax.LexicalError
		if errors.As(err, &le) {
			lexErrs = append(lexErrs, le)
			logger.LogLexicalError(filename, int(le.Pos.Line()), le.Error())
		}
		fmt.Fprintln(w, o.styles.warn.Render(err.Error()))
	}

	start := time.Now()
	prog, err := syntax.Parse(filename, src, errh)
	elapsed := time.Since(start)
	if err != nil {
		var se *syntax.SyntaxError
		if errors.As(err, &se) {
			logger.LogSyntaxError(filename, int(se.Pos.Line()), se.Error())
		}
		fmt.Fprintln(w, o.styles.fail.Render(err.Error()))
		return nil, lexErrs, err
	}

	logger.LogParsing(filename, syntax.Count(prog).Nodes, elapsed)
	return prog, lexErrs, nil
}
