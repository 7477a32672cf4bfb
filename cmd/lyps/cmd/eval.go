package cmd

import (
	"fmt"
	"os"

	"github.com/rprovost11-sketch/Lyps/pkg/lyps"
	"github.com/spf13/cobra"
)

var evalExpr string

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a Lyps file or expression",
	Long: `Evaluate a single Lyps expression from a file or inline text.

Examples:
  # Evaluate a script file
  lyps eval script.lyps

  # Evaluate an inline expression
  lyps eval -e "(+ 1 2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runEval(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	it := lyps.NewInterpreter(os.Stdout, os.Stdin)
	result, err := it.Eval(source)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
