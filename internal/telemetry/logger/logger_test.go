package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactSensitiveKeys(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{"password", slog.String("password", "hunter2"), redactedValue},
		{"nested key name", slog.String("db_password", "hunter2"), redactedValue},
		{"token", slog.String("access_token", "abc123"), redactedValue},
		{"authorization", slog.String("Authorization", "Basic xyz"), redactedValue},
		{"case insensitive", slog.String("PASSWORD", "hunter2"), redactedValue},
		{"plain key untouched", slog.String("username", "admin"), "admin"},
		{"empty value untouched", slog.String("password", ""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactSensitive(tt.attr)
			if got.Value.String() != tt.want {
				t.Errorf("redacted value = %q, want %q", got.Value.String(), tt.want)
			}
		})
	}
}

func TestRedactBearerValues(t *testing.T) {
	// "Bearer <token>" is masked even under a harmless key name.
	got := redactSensitive(slog.String("header", "Bearer abcdef1234567890"))
	val := got.Value.String()
	if strings.Contains(val, "abcdef1234567890") {
		t.Fatalf("full token survived redaction: %q", val)
	}
	if !strings.HasPrefix(val, "Bearer ") {
		t.Errorf("masked value = %q, want Bearer prefix kept", val)
	}
	if val != "Bearer abcd...7890" {
		t.Errorf("masked value = %q", val)
	}

	short := redactSensitive(slog.String("header", "Bearer tiny"))
	if short.Value.String() != "Bearer ***" {
		t.Errorf("short token mask = %q", short.Value.String())
	}
}

func TestRedactGroup(t *testing.T) {
	attr := slog.Group("request",
		slog.String("path", "/buyers/"),
		slog.String("token", "abc123"),
	)
	got := redactSensitive(attr)

	attrs := got.Value.Group()
	var tokenVal string
	for _, a := range attrs {
		if a.Key == "token" {
			tokenVal = a.Value.String()
		}
	}
	if tokenVal != redactedValue {
		t.Errorf("grouped token = %q, want redacted", tokenVal)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	for key, want := range map[string]bool{
		"password":      true,
		"api_secret":    true,
		"bearer_token":  true,
		"Authorization": true,
		"username":      false,
		"path":          false,
	} {
		if got := IsSensitiveKey(key); got != want {
			t.Errorf("IsSensitiveKey(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestNewRedactsThroughHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})

	log.Info("login ok", "username", "admin", "password", "hunter2")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if record["password"] != redactedValue {
		t.Errorf("password = %v, want redacted", record["password"])
	}
	if record["username"] != "admin" {
		t.Errorf("username = %v, want passthrough", record["username"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "text", Output: &buf})

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level records leaked:\n%s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn record missing:\n%s", out)
	}
}

func TestWithCarriesAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "text", Output: &buf})

	log.With("component", "gateway").Info("request done")

	if !strings.Contains(buf.String(), "component=gateway") {
		t.Errorf("With attr missing:\n%s", buf.String())
	}
}
