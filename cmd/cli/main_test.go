package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/auth"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestTokenCmd(t *testing.T) {
	cmd := tokenCmd()
	cmd.SetArgs([]string{"--secret", "s3cret", "--user", "u1", "--name", "Maria", "--role", "admin"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	token := strings.TrimSpace(out)
	if token == "" {
		t.Fatal("expected a token on stdout")
	}

	claims, err := auth.NewJWTManager("s3cret", time.Minute).Verify(token)
	if err != nil {
		t.Fatalf("expected generated token to verify, got %v", err)
	}
	if claims.UserID != "u1" || string(claims.Role) != "admin" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}
