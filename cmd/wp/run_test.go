package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nac-codes/wrangler-profiles/internal/profile"
	"github.com/nac-codes/wrangler-profiles/internal/testutil"
)

func TestRunWithoutActiveProfile(t *testing.T) {
	setupStore(t)
	_, _, err := runCommand(t, "run", "deploy")
	if err == nil || !strings.Contains(err.Error(), "no active profile") {
		t.Fatalf("expected no-active error, got %v", err)
	}
}

func TestRunOverlaysTokenCredentials(t *testing.T) {
	store := setupStore(t)
	saveTokenProfile(t, store, "staging", "acct-1", "tok-1")
	if err := store.SetCurrent("staging"); err != nil {
		t.Fatalf("set current: %v", err)
	}

	binDir := t.TempDir()
	recordPath := filepath.Join(t.TempDir(), "invocation.txt")
	testutil.WriteWranglerEchoStub(t, binDir, recordPath, 0)
	t.Setenv("PATH", binDir)

	_, _, err := runCommand(t, "run", "deploy", "--", "--dry-run")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	recorded, err := os.ReadFile(recordPath)
	if err != nil {
		t.Fatalf("read invocation record: %v", err)
	}
	got := string(recorded)
	if !strings.Contains(got, "args: deploy --dry-run") {
		t.Fatalf("unexpected args line in %q", got)
	}
	if !strings.Contains(got, "account: acct-1") {
		t.Fatalf("account env missing in %q", got)
	}
	if !strings.Contains(got, "token: tok-1") {
		t.Fatalf("token env missing in %q", got)
	}
}

func TestRunAppendsWranglerEnvFlag(t *testing.T) {
	store := setupStore(t)
	saveTokenProfile(t, store, "staging", "acct-1", "tok-1")

	binDir := t.TempDir()
	recordPath := filepath.Join(t.TempDir(), "invocation.txt")
	testutil.WriteWranglerEchoStub(t, binDir, recordPath, 0)
	t.Setenv("PATH", binDir)

	_, _, err := runCommand(t, "run", "--profile", "staging", "--env", "preview", "deploy")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	recorded, err := os.ReadFile(recordPath)
	if err != nil {
		t.Fatalf("read invocation record: %v", err)
	}
	if !strings.Contains(string(recorded), "args: deploy --env preview") {
		t.Fatalf("expected --env passthrough, got %q", recorded)
	}
}

func TestRunStripsInheritedTokenForOAuthProfile(t *testing.T) {
	store := setupStore(t)
	saveOAuthProfile(t, store, "prod", "acct-oauth")
	t.Setenv(profile.EnvAPIToken, "inherited-token")

	binDir := t.TempDir()
	recordPath := filepath.Join(t.TempDir(), "invocation.txt")
	testutil.WriteWranglerEchoStub(t, binDir, recordPath, 0)
	t.Setenv("PATH", binDir)

	_, _, err := runCommand(t, "run", "--profile", "prod", "whoami")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	recorded, err := os.ReadFile(recordPath)
	if err != nil {
		t.Fatalf("read invocation record: %v", err)
	}
	got := string(recorded)
	if !strings.Contains(got, "account: acct-oauth") {
		t.Fatalf("account env missing in %q", got)
	}
	if strings.Contains(got, "inherited-token") {
		t.Fatalf("inherited token leaked into %q", got)
	}
}

func TestRunPropagatesWranglerExitError(t *testing.T) {
	store := setupStore(t)
	saveTokenProfile(t, store, "staging", "acct-1", "tok-1")
	if err := store.SetCurrent("staging"); err != nil {
		t.Fatalf("set current: %v", err)
	}

	binDir := t.TempDir()
	recordPath := filepath.Join(t.TempDir(), "invocation.txt")
	testutil.WriteWranglerEchoStub(t, binDir, recordPath, 9)
	t.Setenv("PATH", binDir)

	_, _, err := runCommand(t, "run", "deploy")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exec.ExitError, got %v", err)
	}
	if exitErr.ExitCode() != 9 {
		t.Fatalf("expected exit code 9, got %d", exitErr.ExitCode())
	}
}
