package command

import (
	"encoding/json"
	"flag"
	"net/http"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/client"
)

func TestLoginStoresToken(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token/" {
			t.Errorf("path = %q, want /token/", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q on login, want empty", got)
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["username"] != "admin" || creds["password"] != "pw" {
			t.Errorf("credentials = %v", creds)
		}
		w.Write([]byte(`{"access":"new-token"}`))
	}, "")

	if err := te.run("login", "--username", "admin", "--password", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	tok, ok := te.env.Store.Token()
	if !ok || tok != "new-token" {
		t.Errorf("stored token = %q, %v", tok, ok)
	}
	if !strings.Contains(te.out.String(), "Logged in.") {
		t.Errorf("output = %q", te.out.String())
	}
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"bad credentials"}`))
	}, "")

	err := te.run("login", "--username", "admin", "--password", "wrong")
	if err == nil {
		t.Fatal("login with bad credentials succeeded")
	}
	if te.env.Store.IsAuthenticated() {
		t.Error("session established despite failed login")
	}
	// The 401 arrived while the login flow was active; the re-login
	// hint must stay quiet.
	if te.hint.Len() != 0 {
		t.Errorf("hint printed during login: %q", te.hint.String())
	}
}

func TestLogout(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {}, "tok")

	if err := te.run("logout"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if te.env.Store.IsAuthenticated() {
		t.Error("still authenticated after logout")
	}
	if !strings.Contains(te.out.String(), "Logged out.") {
		t.Errorf("output = %q", te.out.String())
	}

	te.out.Reset()
	if err := te.run("logout"); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
	if !strings.Contains(te.out.String(), "Not logged in.") {
		t.Errorf("output = %q", te.out.String())
	}
}

func TestWhoami(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {}, "tok")

	if err := te.run("whoami"); err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	out := te.out.String()
	if !strings.Contains(out, "logged in") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, te.env.Config.Server) {
		t.Errorf("server missing from output: %q", out)
	}
}

func TestBuyerList(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.Header.Get("Authorization"), "Bearer tok"; got != want {
			t.Errorf("Authorization = %q, want %q", got, want)
		}
		w.Write([]byte(`[{"id":1,"name":"Acme","email":"a@x.com"}]`))
	}, "tok")

	if err := te.run("buyer", "list"); err != nil {
		t.Fatalf("buyer list failed: %v", err)
	}
	if !strings.Contains(te.out.String(), "Acme") {
		t.Errorf("output = %q", te.out.String())
	}
}

func TestBuyerCreate(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/buyers/" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "Acme" || body["phone_no"] != "9999" {
			t.Errorf("payload = %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":8,"name":"Acme"}`))
	}, "tok")

	if err := te.run("buyer", "create", "--name", "Acme", "--phone", "9999"); err != nil {
		t.Fatalf("buyer create failed: %v", err)
	}
	if !strings.Contains(te.out.String(), "Buyer 8 created.") {
		t.Errorf("output = %q", te.out.String())
	}
}

func TestBuyerDeleteForced(t *testing.T) {
	deleted := false
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/buyers/4/" {
			deleted = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
		t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
	}, "tok")

	if err := te.run("buyer", "delete", "--force", "4"); err != nil {
		t.Fatalf("buyer delete failed: %v", err)
	}
	if !deleted {
		t.Error("DELETE never reached the backend")
	}
}

func TestExpiredSessionPrintsHint(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "stale")

	err := te.run("item", "list")
	if !client.IsAuthExpired(err) {
		t.Fatalf("err = %v, want auth-expired", err)
	}
	if te.env.Store.IsAuthenticated() {
		t.Error("session survived the 401")
	}
	if !strings.Contains(te.hint.String(), "bt-admin login") {
		t.Errorf("hint = %q, want re-login instruction", te.hint.String())
	}
}

func TestJSONOutputFlag(t *testing.T) {
	te := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"item_name":"Drill","item_code":"D-1"}]`))
	}, "tok")

	if err := te.run("--output", "json", "item", "list"); err != nil {
		t.Fatalf("item list failed: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(te.out.Bytes(), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, te.out.String())
	}
	if len(rows) != 1 || rows[0]["item_name"] != "Drill" {
		t.Errorf("rows = %v", rows)
	}
}

func TestIDArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantID  int64
		wantErr bool
	}{
		{"valid", []string{"42"}, 42, false},
		{"missing", nil, 0, true},
		{"not a number", []string{"abc"}, 0, true},
		{"zero", []string{"0"}, 0, true},
		{"negative", []string{"-3"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := flag.NewFlagSet("test", flag.ContinueOnError)
			if err := set.Parse(append([]string{"--"}, tt.args...)); err != nil {
				t.Fatal(err)
			}
			c := cli.NewContext(nil, set, nil)

			id, err := idArg(c, "buyer")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("idArg failed: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("id = %d, want %d", id, tt.wantID)
			}
		})
	}
}
