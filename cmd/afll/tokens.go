package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrithik-sp/afll/internal/logger"
	"github.com/hrithik-sp/afll/internal/syntax"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Long: `Print every token of FILE with its position, kind and text.
Illegal characters are skipped and listed after the table; any of them
makes the command exit with status 1. Use - to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTokens(cmd, args[0])
		},
	}
}

func (o *options) runTokens(cmd *cobra.Command, filename string) error {
	src, err := readSource(cmd, filename)
	if err != nil {
		return err
	}

	start := time.Now()
	toks, errs := syntax.Tokenize(filename, src)
	logger.LogLexing(filename, len(toks), time.Since(start))

	out := cmd.OutOrStdout()
	printTokens(out, toks, o.styles)

	if len(errs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, o.styles.fail.Render("Errors:"))
		for _, e := range errs {
			logger.LogLexicalError(filename, int(e.Pos.Line()), e.Error())
			fmt.Fprintf(out, "  %s\n", o.styles.warn.Render(e.Error()))
		}
		return errFailed
	}
	return nil
}

// printTokens writes toks as a three-column table.
func printTokens(w io.Writer, toks []syntax.Lexeme, st styles) {
	header := fmt.Sprintf("%-12s %-12s %s", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintln(w, st.title.Render(header))
	fmt.Fprintf(w, "%-12s %-12s %s\n", strings.Repeat("-", 12), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for _, tok := range toks {
		pos := fmt.Sprintf("%d:%d", tok.Pos.Line(), tok.Pos.Col())
		fmt.Fprintf(w, "%-12s %-12s %s\n", pos, tok.Tok.Kind(), formatLiteral(tok.Lit))
	}
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	// Show the content with escapes visible for readability
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
