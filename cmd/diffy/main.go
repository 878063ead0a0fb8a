// Command diffy compares two files line by line.
//
// Usage:
//
//	diffy [flags] old new
//
// The exit status is 0 if the files are the same, 1 if they
// differ, and 2 if there was trouble.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// Exit statuses, as diff(1).
const (
	exitSame    = 0
	exitChanged = 1
	exitTrouble = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	status := exitSame
	cmd := newRootCmd(&status)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log.Error("diffy failed", "err", err)
		return exitTrouble
	}
	return status
}
