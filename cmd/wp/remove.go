package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/profile"
)

func newRemoveCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   messages.RemoveUse,
		Short: messages.RemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			store, err := openStore()
			if err != nil {
				return err
			}
			exists, err := store.Exists(name)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf(messages.RecordProfileNotFoundFmt, profile.ErrNotFound, name)
			}
			if !force {
				if !isTerminalFunc() {
					return fmt.Errorf(messages.RemoveRequiresTerminal)
				}
				confirmed := false
				if err := newUIFunc().Confirm(fmt.Sprintf(messages.RemoveConfirmFmt, name), &confirmed); err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.RemoveAborted)
					return &SilentExitError{Code: 1}
				}
			}
			if err := store.Remove(name); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.RemoveDoneFmt, name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.RemoveFlagForce)

	return cmd
}
