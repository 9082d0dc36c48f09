package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/activate"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/wrangler"
)

func newUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.UseUse,
		Short: messages.UseShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			slot, err := wrangler.ConfigSlot()
			if err != nil {
				return err
			}
			rec, err := activate.Use(activateSystem, store, slot, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.UseSwitchFmt, rec.Name, rec.Auth.Method())
			if _, ok := rec.TokenCredential(); ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.UseTokenNote)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.UseSourceHint)
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.UseOAuthNote)
			}
			return nil
		},
	}

	return cmd
}
