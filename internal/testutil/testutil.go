// Package testutil provides helpers for tests that stand in for the
// external wrangler CLI and the interactive prompt UI.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the
// executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the
// provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	writeExecutable(t, dir, name, fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteWranglerLoginStub writes a wrangler stub whose 'login' subcommand
// deposits content at slot, mimicking the browser flow regenerating the
// config slot. Every other subcommand exits zero silently.
func WriteWranglerLoginStub(t *testing.T, dir string, slot string, content string) {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
PATH="$PATH:/usr/bin:/bin"
if [ "$1" = "login" ]; then
  mkdir -p %q
  printf '%%s' %q > %q
fi
exit 0
`, filepath.Dir(slot), content, slot)
	writeExecutable(t, dir, "wrangler", script)
}

// WriteWranglerWhoamiStub writes a wrangler stub whose 'whoami'
// subcommand prints output and exits zero.
func WriteWranglerWhoamiStub(t *testing.T, dir string, output string) {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
if [ "$1" = "whoami" ]; then
  printf '%%s' %q
fi
exit 0
`, output)
	writeExecutable(t, dir, "wrangler", script)
}

// WriteWranglerEchoStub writes a wrangler stub that records its arguments
// and selected environment variables into recordPath, then exits with
// exitCode.
func WriteWranglerEchoStub(t *testing.T, dir string, recordPath string, exitCode int) {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
{
  echo "args: $@"
  echo "account: $CLOUDFLARE_ACCOUNT_ID"
  echo "token: $CLOUDFLARE_API_TOKEN"
} > %q
exit %d
`, recordPath, exitCode)
	writeExecutable(t, dir, "wrangler", script)
}

func writeExecutable(t *testing.T, dir string, name string, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}
