package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/nac-codes/wrangler-profiles/internal/activate"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/profile"
	"github.com/nac-codes/wrangler-profiles/internal/wrangler"
)

func TestUseTokenProfileSetsPointer(t *testing.T) {
	store := setupStore(t)
	saveTokenProfile(t, store, "staging", "acct", "tok")

	out, _, err := runCommand(t, "use", "staging")
	if err != nil {
		t.Fatalf("use error: %v", err)
	}
	if !strings.Contains(out, "Now using profile staging") {
		t.Fatalf("expected switch message, got %q", out)
	}
	if !strings.Contains(out, messages.UseTokenNote) {
		t.Fatalf("expected token note, got %q", out)
	}

	name, ok, err := store.Current()
	if err != nil || !ok || name != "staging" {
		t.Fatalf("pointer = %q ok=%v err=%v", name, ok, err)
	}
}

func TestUseOAuthProfileInstallsSession(t *testing.T) {
	store := setupStore(t)
	saveOAuthProfile(t, store, "prod", "acct")
	if err := os.MkdirAll(store.Dir(), 0o700); err != nil {
		t.Fatalf("mkdir store: %v", err)
	}
	if err := os.WriteFile(store.BlobPath("prod"), []byte("session-bytes"), 0o600); err != nil {
		t.Fatalf("write session: %v", err)
	}

	out, _, err := runCommand(t, "use", "prod")
	if err != nil {
		t.Fatalf("use error: %v", err)
	}
	if !strings.Contains(out, messages.UseOAuthNote) {
		t.Fatalf("expected oauth note, got %q", out)
	}

	slot, err := wrangler.ConfigSlot()
	if err != nil {
		t.Fatalf("resolve slot: %v", err)
	}
	installed, err := os.ReadFile(slot)
	if err != nil {
		t.Fatalf("read slot: %v", err)
	}
	if string(installed) != "session-bytes" {
		t.Fatalf("unexpected slot content %q", installed)
	}
}

func TestUseUnknownProfile(t *testing.T) {
	setupStore(t)
	_, _, err := runCommand(t, "use", "ghost")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUseOAuthProfileWithoutSessionKeepsPointer(t *testing.T) {
	store := setupStore(t)
	saveTokenProfile(t, store, "staging", "acct", "tok")
	saveOAuthProfile(t, store, "prod", "acct")
	if err := store.SetCurrent("staging"); err != nil {
		t.Fatalf("set current: %v", err)
	}

	_, _, err := runCommand(t, "use", "prod")
	if !errors.Is(err, activate.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	name, ok, err := store.Current()
	if err != nil || !ok || name != "staging" {
		t.Fatalf("pointer must survive failed switch, got %q ok=%v err=%v", name, ok, err)
	}
}
