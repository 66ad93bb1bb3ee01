// Package command provides CLI command definitions for bt-admin.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/cli/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Local configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "init",
				Usage:  "Write the current configuration to the config file",
				Action: configInit,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, env.Config)
}

func configInit(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	path := c.String("config")
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.Save(env.Config, path); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Configuration written to %s\n", path)
	return nil
}
