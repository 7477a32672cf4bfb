package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rprovost11-sketch/Lyps/pkg/lyps"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lyps read-eval-print loop",
	Long: `Start an interactive session that reads one expression at a time from
standard input, evaluates it against a persistent global environment, and
prints the result.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	it := lyps.NewInterpreter(os.Stdout, os.Stdin)
	scanner := bufio.NewScanner(os.Stdin)

	var pending strings.Builder
	fmt.Fprint(os.Stdout, "lyps> ")
	for scanner.Scan() {
		pending.WriteString(scanner.Text())
		pending.WriteString("\n")

		result, err := it.Eval(pending.String())
		if err != nil {
			if looksIncomplete(err) {
				fmt.Fprint(os.Stdout, "...   ")
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			pending.Reset()
			fmt.Fprint(os.Stdout, "lyps> ")
			continue
		}
		fmt.Fprintln(os.Stdout, result)
		pending.Reset()
		fmt.Fprint(os.Stdout, "lyps> ")
	}
	fmt.Fprintln(os.Stdout)
	return scanner.Err()
}

// looksIncomplete reports whether err is the kind of parse error a REPL
// should treat as "keep reading more lines" rather than a hard failure —
// an unclosed list or a bare end-of-input, never a malformed literal or
// trailing-input error.
func looksIncomplete(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unexpected end of input")
}
