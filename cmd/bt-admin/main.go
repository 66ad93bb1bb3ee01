// Package main provides the entry point for bt-admin.
//
// bt-admin is the command-line administration tool for the
// business-tracking backend, supporting both single-command mode and
// interactive REPL mode.
package main

import (
	"fmt"
	"os"

	"github.com/ntgen1/bt-admin/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
