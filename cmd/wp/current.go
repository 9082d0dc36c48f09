package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/profile"
)

func newCurrentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.CurrentUse,
		Short: messages.CurrentShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			name, err := requireCurrent(store)
			if err != nil {
				return err
			}
			rec, err := store.Load(name)
			if errors.Is(err, profile.ErrNotFound) {
				return fmt.Errorf(messages.CurrentProfileGoneFmt, name)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.CurrentFmt, rec.Name, rec.Auth.Method())
			return nil
		},
	}

	return cmd
}
