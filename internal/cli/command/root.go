// Package command provides CLI command definitions for bt-admin.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive REPL mode.
package command

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/api"
	"github.com/ntgen1/bt-admin/internal/cli/config"
	"github.com/ntgen1/bt-admin/internal/cli/output"
	"github.com/ntgen1/bt-admin/internal/client"
	"github.com/ntgen1/bt-admin/internal/infra/buildinfo"
	"github.com/ntgen1/bt-admin/internal/session"
	"github.com/ntgen1/bt-admin/internal/telemetry/logger"
)

// Env bundles the shared collaborators every command needs: the
// loaded config, the session store and the API service built on the
// request gateway.
type Env struct {
	Config *config.Config
	Store  *session.Store
	API    *api.Service
	Log    logger.Logger
	Hint   *LoginHint

	Out io.Writer
	Err io.Writer
}

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "bt-admin",
		Usage:   "Administration tool for the business-tracking backend",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoginCommand(),
			LogoutCommand(),
			WhoamiCommand(),
			DashboardCommand(),
			BuyerCommand(),
			ItemCommand(),
			AddressCommand(),
			RecordCommand(),
			InventoryCommand(),
			PaymentCommand(),
			ConfigCommand(),
			REPLCommand(),
		},
		Before: func(c *cli.Context) error {
			if _, ok := c.App.Metadata["env"]; ok {
				return nil // already initialized (REPL or tests)
			}
			env, err := BuildEnv(c)
			if err != nil {
				return err
			}
			c.App.Metadata["env"] = env
			return nil
		},
	}
	app.Metadata = map[string]any{}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Backend base URL",
			EnvVars: []string{"BT_SERVER"},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file",
			EnvVars: []string{"BT_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

// BuildEnv assembles the shared environment from flags and config.
// Precedence for the server and output format: flag > env > file >
// default (config.Load already folds env over file).
func BuildEnv(c *cli.Context) (*Env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if s := c.String("server"); s != "" {
		cfg.Server = s
	}
	if o := c.String("output"); o != "" {
		cfg.Output = o
	}

	level := cfg.LogLevel
	if c.Bool("verbose") {
		level = "debug"
	}
	log := logger.New(logger.Config{Level: level, Format: "text"})

	store, err := session.Open(cfg.SessionFile)
	if err != nil {
		return nil, err
	}

	hint := &LoginHint{out: os.Stderr}
	gw := client.New(cfg.Server, store,
		client.WithNavigator(hint),
		client.WithLogger(log),
	)

	return &Env{
		Config: cfg,
		Store:  store,
		API:    api.New(gw),
		Log:    log,
		Hint:   hint,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}, nil
}

// GetEnv retrieves the shared environment from the CLI context.
func GetEnv(c *cli.Context) (*Env, error) {
	if env, ok := c.App.Metadata["env"].(*Env); ok {
		return env, nil
	}
	return nil, fmt.Errorf("environment not initialized")
}

// formatter builds the output formatter from flags and config.
func (e *Env) formatter(c *cli.Context) output.Formatter {
	format := e.Config.Output
	if o := c.String("output"); o != "" {
		format = o
	}
	return output.NewFormatter(output.Format(format), c.Bool("wide"))
}

// LoginHint is the CLI's navigator: a terminal has no login page to
// redirect to, so "navigation" is a hint on stderr. While the login
// command itself runs, the hint is suppressed.
type LoginHint struct {
	mu     sync.Mutex
	active bool
	out    io.Writer
}

// SetActive marks the login flow as running.
func (h *LoginHint) SetActive(active bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = active
}

// AtLogin reports whether the login flow is running.
func (h *LoginHint) AtLogin() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// RedirectToLogin prints the re-authentication hint.
func (h *LoginHint) RedirectToLogin() {
	fmt.Fprintln(h.out, "Session expired. Run 'bt-admin login' to sign in again.")
}

// confirm asks for a y/N confirmation unless --force is set.
func confirm(c *cli.Context, prompt string) bool {
	if c.Bool("force") {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}

// forceFlag is the shared --force flag for destructive commands.
func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "Skip confirmation",
	}
}
