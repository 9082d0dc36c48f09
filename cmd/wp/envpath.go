package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

func newEnvPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.EnvPathUse,
		Short: messages.EnvPathShort,
		Long:  messages.EnvPathLong,
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
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), store.LegacyEnvPath(name))
			return nil
		},
	}

	return cmd
}
