package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/activate"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/wrangler"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.LoginUse,
		Short: messages.LoginShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				name, err = requireCurrent(store)
				if err != nil {
					return err
				}
			}
			rec, err := store.Load(name)
			if err != nil {
				return err
			}
			if _, ok := rec.TokenCredential(); ok {
				return fmt.Errorf(messages.LoginNotOAuthFmt, name)
			}
			if err := wrangler.Login(wranglerSystem); err != nil {
				return err
			}
			slot, err := wrangler.ConfigSlot()
			if err != nil {
				return err
			}
			if err := activate.CaptureOAuth(activateSystem, store, slot, name); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.LoginDoneFmt, name)
			return nil
		},
	}

	return cmd
}
