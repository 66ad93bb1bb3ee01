package command

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/api"
	"github.com/ntgen1/bt-admin/internal/cli/config"
	"github.com/ntgen1/bt-admin/internal/client"
	"github.com/ntgen1/bt-admin/internal/session"
	"github.com/ntgen1/bt-admin/internal/telemetry/logger"
)

// testEnv is a fully wired Env against a mock backend, with output
// captured in buffers.
type testEnv struct {
	app  *cli.App
	env  *Env
	out  *bytes.Buffer
	err  *bytes.Buffer
	hint *bytes.Buffer
}

// newTestEnv builds an app whose Before hook is bypassed via the
// preset env metadata, the same path the REPL takes.
func newTestEnv(t *testing.T, handler http.HandlerFunc, token string) *testEnv {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMemory()
	if token != "" {
		if err := store.Login(nil, token); err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	hintOut := &bytes.Buffer{}

	hint := &LoginHint{out: hintOut}
	gw := client.New(server.URL, store,
		client.WithNavigator(hint),
		client.WithLogger(logger.Nop()),
	)

	cfg := config.Default()
	cfg.Server = server.URL

	env := &Env{
		Config: cfg,
		Store:  store,
		API:    api.New(gw),
		Log:    logger.Nop(),
		Hint:   hint,
		Out:    out,
		Err:    errOut,
	}

	app := App()
	app.Metadata["env"] = env
	app.Writer = out
	app.ErrWriter = errOut

	return &testEnv{app: app, env: env, out: out, err: errOut, hint: hintOut}
}

// run executes one command line against the test app.
func (te *testEnv) run(args ...string) error {
	return te.app.Run(append([]string{"bt-admin"}, args...))
}
