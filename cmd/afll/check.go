package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hrithik-sp/afll/internal/logger"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report whether files parse",
		Long: `Parse each FILE and print one pass/fail line per file. A file passes
when it parses without syntax errors and contains no illegal characters.
The command exits with status 1 if any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runCheck(cmd, args)
		},
	}
}

func (o *options) runCheck(cmd *cobra.Command, files []string) error {
	out := cmd.OutOrStdout()

	failed := 0
	for _, filename := range files {
		logger.LogFileProcessing(filename)
		if !o.checkFile(cmd, out, filename) {
			failed++
		}
	}

	if failed > 0 {
		fmt.Fprintf(out, "%d of %d files failed\n", failed, len(files))
		return errFailed
	}
	return nil
}

// checkFile prints one result line for filename. Diagnostics from the
// reader and the parser already name the file.
func (o *options) checkFile(cmd *cobra.Command, out io.Writer, filename string) bool {
	src, err := readSource(cmd, filename)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", o.styles.fail.Render("FAIL"), err)
		return false
	}

	prog, lexErrs, err := o.parse(cmd.ErrOrStderr(), filename, src)
	switch {
	case err != nil:
		fmt.Fprintf(out, "%s %v\n", o.styles.fail.Render("FAIL"), err)
		return false
	case len(lexErrs) > 0:
		fmt.Fprintf(out, "%s %v\n", o.styles.fail.Render("FAIL"), lexErrs.Err())
		return false
	}

	fmt.Fprintf(out, "%s   %s %s\n", o.styles.ok.Render("ok"), filename,
		o.styles.muted.Render(fmt.Sprintf("(%d statements)", len(prog.Stmts))))
	return true
}
