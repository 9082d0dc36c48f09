package main

import (
	"os"
	"strings"
	"testing"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

func TestListEmptyStore(t *testing.T) {
	setupStore(t)
	out, _, err := runCommand(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, messages.ListEmpty) {
		t.Fatalf("expected empty-store message, got %q", out)
	}
}

func TestListMarksCurrentProfile(t *testing.T) {
	store := setupStore(t)
	saveTokenProfile(t, store, "staging", "acct-stg", "tok-stg")
	saveOAuthProfile(t, store, "prod", "acct-prod")
	if err := store.SetCurrent("prod"); err != nil {
		t.Fatalf("set current: %v", err)
	}

	out, _, err := runCommand(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %q", out)
	}
	// Lexicographic order: prod before staging.
	if !strings.Contains(lines[0], "prod") || !strings.Contains(lines[0], "oauth") {
		t.Fatalf("unexpected first row %q", lines[0])
	}
	if !strings.Contains(lines[0], "*") {
		t.Fatalf("expected active marker on prod row, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "staging") || !strings.Contains(lines[1], "api_token") {
		t.Fatalf("unexpected second row %q", lines[1])
	}
	if strings.Contains(lines[1], "*") {
		t.Fatalf("unexpected marker on inactive row %q", lines[1])
	}
	if !strings.Contains(lines[1], "acct-stg") {
		t.Fatalf("expected account on staging row, got %q", lines[1])
	}
}

func TestListObfuscatesToken(t *testing.T) {
	store := setupStore(t)
	token := "AbCdEfGhIjKlMnOpQrStUvWxYz0123456789AbCd"
	saveTokenProfile(t, store, "staging", "acct", token)

	out, _, err := runCommand(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if strings.Contains(out, token) {
		t.Fatalf("full token leaked into listing: %q", out)
	}
	if !strings.Contains(out, "AbCd"+strings.Repeat("*", 32)+"AbCd") {
		t.Fatalf("expected obfuscated token, got %q", out)
	}
}

func TestListSkipsCorruptRecord(t *testing.T) {
	store := setupStore(t)
	saveTokenProfile(t, store, "good", "acct", "tok")
	if err := os.WriteFile(store.RecordPath("broken"), []byte("not toml ["), 0o600); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	out, errOut, err := runCommand(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "good") {
		t.Fatalf("expected surviving row, got %q", out)
	}
	if strings.Contains(out, "broken") {
		t.Fatalf("corrupt profile leaked into listing: %q", out)
	}
	if !strings.Contains(errOut, "broken") {
		t.Fatalf("expected warning naming the corrupt profile, got %q", errOut)
	}
}
