package wrangler

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

const (
	// EnvWranglerHome overrides the wrangler home directory that contains
	// the well-known config slot.
	EnvWranglerHome = "WRANGLER_HOME"
	// EnvStoreDir overrides the profile storage directory.
	EnvStoreDir = "WRANGLER_PROFILES_DIR"

	wranglerDirName = ".wrangler"
	storeDirName    = ".wrangler-profiles"
)

// ConfigSlot returns the single file wrangler reads its own OAuth session
// from. Installing a profile's stored session means overwriting this
// file; wrangler owns it afterwards and may freely rewrite it.
func ConfigSlot() (string, error) {
	if home := os.Getenv(EnvWranglerHome); home != "" {
		return filepath.Join(home, "config", "default.toml"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.PathsResolveHomeFailedFmt, err)
	}
	return filepath.Join(home, wranglerDirName, "config", "default.toml"), nil
}

// StoreDir returns the profile storage directory.
func StoreDir() (string, error) {
	if dir := os.Getenv(EnvStoreDir); dir != "" {
		return dir, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.PathsResolveHomeFailedFmt, err)
	}
	return filepath.Join(home, storeDirName), nil
}
