// Package command provides CLI command definitions for bt-admin.
package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// commandTimeout bounds every single API call issued by a command.
// The gateway itself imposes no timeout; cancellation is the caller's
// job.
const commandTimeout = 30 * time.Second

// LoginCommand returns the login command.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in and store a session token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Account username (prompted if omitted)",
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Account password (prompted if omitted)",
			},
			&cli.StringFlag{
				Name:  "provider",
				Usage: "OAuth provider (e.g. google); uses --credential instead of a password",
			},
			&cli.StringFlag{
				Name:  "credential",
				Usage: "OAuth credential for --provider",
			},
		},
		Action: loginAction,
	}
}

func loginAction(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	// Suppress the session-expired redirect while authenticating.
	env.Hint.SetActive(true)
	defer env.Hint.SetActive(false)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var token string
	if provider := c.String("provider"); provider != "" {
		credential := c.String("credential")
		if credential == "" {
			return fmt.Errorf("--credential required with --provider")
		}
		token, err = env.API.LoginOAuth(ctx, provider, credential)
	} else {
		username := c.String("username")
		if username == "" {
			username = prompt("Username: ")
		}
		password := c.String("password")
		if password == "" {
			password = prompt("Password: ")
		}
		token, err = env.API.Login(ctx, username, password)
	}
	if err != nil {
		return err
	}

	if err := env.Store.Login(nil, token); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	fmt.Fprintln(env.Out, "Logged in.")
	return nil
}

// LogoutCommand returns the logout command.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Clear the stored session",
		Action: logoutAction,
	}
}

func logoutAction(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	if !env.Store.IsAuthenticated() {
		fmt.Fprintln(env.Out, "Not logged in.")
		return nil
	}

	if err := env.Store.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(env.Out, "Logged out.")
	return nil
}

// WhoamiCommand returns the whoami command.
func WhoamiCommand() *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Usage:  "Show session status",
		Action: whoamiAction,
	}
}

func whoamiAction(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Server: %s\n", env.Config.Server)
	if !env.Store.IsAuthenticated() {
		fmt.Fprintln(env.Out, "Status: not logged in")
		return nil
	}

	fmt.Fprintln(env.Out, "Status: logged in")
	if p := env.Store.Profile(); p != nil {
		if p.Name != "" {
			fmt.Fprintf(env.Out, "Name:   %s\n", p.Name)
		}
		if p.Email != "" {
			fmt.Fprintf(env.Out, "Email:  %s\n", p.Email)
		}
	}
	return nil
}

// prompt reads one line from stdin.
func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
