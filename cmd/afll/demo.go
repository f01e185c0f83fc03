package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// samples are the programs run by the demo command, one per
// statement form.
var samples = []struct {
	name string
	src  string
}{
	{"for loop", "for i in range(10){ \n    break; \n    } \n    "},
	{"if/else", "if (x < y) { \n    something(); \n    } else { \n    something_else(); \n    }"},
	{"switch", "switch (x) { \n    case 1:  \n    something();  \n    break; \n    case 2:  \n    something_else();  \n    break; \n    }"},
	{"function definition", "def function(): \n    return 0;"},
	{"arithmetic", "x = 5 + 3 * (10 - 4);"},
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Parse the built-in sample programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runDemo(cmd)
		},
	}
}

func (o *options) runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	failed := 0
	for _, s := range samples {
		fmt.Fprintf(out, "\n%s\n%s\n", o.styles.title.Render("Parsing "+s.name+":"), s.src)

		if _, _, err := o.parse(cmd.ErrOrStderr(), "<"+s.name+">", s.src); err != nil {
			fmt.Fprintf(out, "%s %v\n", o.styles.fail.Render("Parse failed:"), err)
			failed++
			continue
		}
		fmt.Fprintln(out, o.styles.ok.Render("Parse successful!"))
	}

	if failed > 0 {
		return errFailed
	}
	return nil
}
