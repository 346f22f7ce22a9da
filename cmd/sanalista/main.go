package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	cmd := newRootCommand()
	os.Exit(reportError(os.Stderr, cmd.Execute()))
}

// reportError prints err to w, interrupted runs included, and returns the
// process exit code.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(w, err)
	return 1
}
