package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/rprovost11-sketch/Lyps/cmd/lyps/cmd"
	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript build and invoke this binary as the `lyps`
// command inside each script, the way the teacher's CLI tests drive
// dwscript end-to-end rather than calling its Go API directly.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"lyps": mainForTestscript,
	}))
}

// mainForTestscript mirrors main()'s body but returns an exit code instead
// of calling os.Exit: RunMain execs this in a child goroutine and reports
// the returned code as the script's exit status, so an os.Exit here would
// tear down the whole test binary instead of just this virtual process.
func mainForTestscript() int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func TestCLIScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
