// Command lyps is the Lyps interpreter's command-line driver.
package main

import (
	"fmt"
	"os"

	"github.com/rprovost11-sketch/Lyps/cmd/lyps/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
