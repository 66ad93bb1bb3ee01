// Package command provides CLI command definitions for bt-admin.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/cli/repl"
)

// REPLCommand returns the interactive-mode command.
func REPLCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Interactive mode",
		Action: replAction,
	}
}

func replAction(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	app := c.App
	runner := func(args []string) error {
		return app.Run(append([]string{app.Name}, args...))
	}

	fmt.Fprintf(env.Out, "bt-admin interactive mode (server %s). Type 'help' for commands, 'exit' to leave.\n", env.Config.Server)
	return repl.New(runner, commandNames(app)).Run()
}

// commandNames flattens the command tree one level deep for the
// completer and help listing.
func commandNames(app *cli.App) []string {
	var names []string
	for _, cmd := range app.Commands {
		if cmd.Name == "repl" {
			continue
		}
		if len(cmd.Subcommands) == 0 {
			names = append(names, cmd.Name)
			continue
		}
		for _, sub := range cmd.Subcommands {
			names = append(names, cmd.Name+" "+sub.Name)
		}
	}
	return names
}
