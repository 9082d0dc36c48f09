package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/profile"
	"github.com/nac-codes/wrangler-profiles/internal/testutil"
	"github.com/nac-codes/wrangler-profiles/internal/wrangler"
)

func TestAddRejectsConflictingMethodFlags(t *testing.T) {
	setupStore(t)
	_, _, err := runCommand(t, "add", "prod", "--oauth", "--api-token")
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAddRejectsTokenFlagWithOAuth(t *testing.T) {
	setupStore(t)
	_, _, err := runCommand(t, "add", "prod", "--oauth", "--token", "tok")
	if err == nil || !strings.Contains(err.Error(), "--token") {
		t.Fatalf("expected token-flag error, got %v", err)
	}
}

func TestAddRejectsDuplicateName(t *testing.T) {
	store := setupStore(t)
	saveTokenProfile(t, store, "prod", "acct", "tok")
	_, _, err := runCommand(t, "add", "prod", "--api-token", "--account-id", "acct", "--token", "tok")
	if !errors.Is(err, profile.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestAddRequiresTerminalWithoutMethodFlags(t *testing.T) {
	setupStore(t)
	stubNonInteractive(t)
	_, _, err := runCommand(t, "add", "prod")
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestAddAPITokenFromFlags(t *testing.T) {
	store := setupStore(t)
	out, _, err := runCommand(t, "add", "staging", "--api-token", "--account-id", "acct-1", "--token", "tok-1")
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if !strings.Contains(out, "Added profile staging") {
		t.Fatalf("expected creation message, got %q", out)
	}
	if !strings.Contains(out, "wp use staging") {
		t.Fatalf("expected activation hint, got %q", out)
	}

	rec, err := store.Load("staging")
	if err != nil {
		t.Fatalf("load saved profile: %v", err)
	}
	cred, ok := rec.TokenCredential()
	if !ok {
		t.Fatalf("expected api token profile, got %s", rec.Auth.Method())
	}
	if cred.Account != "acct-1" || cred.Token != "tok-1" {
		t.Fatalf("unexpected credential %+v", cred)
	}

	envData, err := os.ReadFile(store.LegacyEnvPath("staging"))
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if !strings.Contains(string(envData), profile.EnvAPIToken) {
		t.Fatalf("env file missing token key: %q", envData)
	}
}

func TestAddAPITokenPromptsForMissingFields(t *testing.T) {
	store := setupStore(t)
	stubUI(t, &testutil.ScriptedUI{
		Selections: []string{messages.AddMethodOptionAPIToken},
		Inputs:     []string{"acct-2"},
		Secrets:    []string{"tok-2"},
	})

	_, _, err := runCommand(t, "add", "dev")
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	rec, err := store.Load("dev")
	if err != nil {
		t.Fatalf("load saved profile: %v", err)
	}
	cred, ok := rec.TokenCredential()
	if !ok || cred.Account != "acct-2" || cred.Token != "tok-2" {
		t.Fatalf("unexpected credential %+v ok=%v", cred, ok)
	}
}

func TestAddAPITokenRejectsEmptyPromptedToken(t *testing.T) {
	setupStore(t)
	stubUI(t, &testutil.ScriptedUI{Secrets: []string{"   "}})

	_, _, err := runCommand(t, "add", "dev", "--api-token", "--account-id", "acct")
	if err == nil || !strings.Contains(err.Error(), "must not be empty") {
		t.Fatalf("expected empty-input error, got %v", err)
	}
}

func TestAddOAuthCapturesLoginSession(t *testing.T) {
	store := setupStore(t)
	slot, err := wrangler.ConfigSlot()
	if err != nil {
		t.Fatalf("resolve slot: %v", err)
	}

	binDir := t.TempDir()
	testutil.WriteWranglerLoginStub(t, binDir, slot, "oauth-session-bytes")
	t.Setenv("PATH", binDir)

	out, _, err := runCommand(t, "add", "prod", "--oauth")
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if !strings.Contains(out, messages.AddNoAccountDetected) {
		t.Fatalf("expected no-account notice, got %q", out)
	}

	blob, err := os.ReadFile(store.BlobPath("prod"))
	if err != nil {
		t.Fatalf("read stored session: %v", err)
	}
	if string(blob) != "oauth-session-bytes" {
		t.Fatalf("unexpected stored session %q", blob)
	}

	rec, err := store.Load("prod")
	if err != nil {
		t.Fatalf("load saved profile: %v", err)
	}
	if rec.Auth.Method() != profile.MethodOAuth {
		t.Fatalf("expected oauth profile, got %s", rec.Auth.Method())
	}
	if rec.Auth.AccountID() != "" {
		t.Fatalf("expected empty account, got %q", rec.Auth.AccountID())
	}
}

func TestAddOAuthDetectsAccountFromWhoami(t *testing.T) {
	store := setupStore(t)
	slot, err := wrangler.ConfigSlot()
	if err != nil {
		t.Fatalf("resolve slot: %v", err)
	}

	accountID := "0123456789abcdef0123456789abcdef"
	binDir := t.TempDir()
	script := `#!/bin/sh
PATH="$PATH:/usr/bin:/bin"
case "$1" in
login)
  mkdir -p "` + filepath.Dir(slot) + `"
  printf 'session' > "` + slot + `"
  ;;
whoami)
  printf 'Account ID: ` + accountID + `\nEmail: dev@example.com\n'
  ;;
esac
exit 0
`
	if err := os.WriteFile(filepath.Join(binDir, "wrangler"), []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	out, _, err := runCommand(t, "add", "prod", "--oauth")
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if !strings.Contains(out, accountID) {
		t.Fatalf("expected detected account in output, got %q", out)
	}

	rec, err := store.Load("prod")
	if err != nil {
		t.Fatalf("load saved profile: %v", err)
	}
	if rec.Auth.AccountID() != accountID {
		t.Fatalf("expected detected account, got %q", rec.Auth.AccountID())
	}
}

func TestAddOAuthFailsWhenLoginFails(t *testing.T) {
	store := setupStore(t)
	binDir := t.TempDir()
	testutil.WriteStubWithExit(t, binDir, "wrangler", 1)
	t.Setenv("PATH", binDir)

	_, _, err := runCommand(t, "add", "prod", "--oauth")
	if !errors.Is(err, wrangler.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if exists, _ := store.Exists("prod"); exists {
		t.Fatal("profile must not be created when login fails")
	}
}
