// Package cmd wires the Lyps CLI's Cobra command tree, grounded on the
// teacher's cmd/dwscript/cmd package layout (one file per subcommand, a
// package-level rootCmd, an Execute entry point).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lyps",
	Short: "Lyps interpreter",
	Long: `lyps is a Go implementation of Lyps, a small Lisp dialect.

Lyps has an arbitrary-precision numeric tower (integer, rational, float),
a reader with quote/quasiquote/unquote reader macros, and a tree-walking
evaluator over a lexically scoped environment chain.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
