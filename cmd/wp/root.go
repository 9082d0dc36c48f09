package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/activate"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/profile"
	"github.com/nac-codes/wrangler-profiles/internal/prompt"
	"github.com/nac-codes/wrangler-profiles/internal/terminal"
	"github.com/nac-codes/wrangler-profiles/internal/wrangler"
)

// Seams for tests; production wiring stays in these defaults.
var (
	wranglerSystem wrangler.System = wrangler.RealSystem{}
	activateSystem activate.System = activate.RealSystem{}
	newUIFunc                      = func() prompt.UI { return prompt.NewHuhUI() }
	isTerminalFunc                 = terminal.IsInteractive
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newUseCmd())
	cmd.AddCommand(newCurrentCmd())
	cmd.AddCommand(newEnvPathCmd())
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newRemoveCmd())
	return cmd
}

// openStore resolves the profile directory and returns a store over it.
func openStore() (*profile.Store, error) {
	dir, err := wrangler.StoreDir()
	if err != nil {
		return nil, err
	}
	return profile.NewStore(dir), nil
}

// requireCurrent returns the active profile name, failing when no
// profile is active.
func requireCurrent(store *profile.Store) (string, error) {
	name, ok, err := store.Current()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf(messages.CurrentNoProfile)
	}
	return name, nil
}
