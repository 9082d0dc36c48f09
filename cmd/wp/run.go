package main

import (
	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/wrangler"
)

func newRunCmd() *cobra.Command {
	var (
		profileName string
		wranglerEnv string
	)
	cmd := &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		Long:  messages.RunLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			name := profileName
			if name == "" {
				name, err = requireCurrent(store)
				if err != nil {
					return err
				}
			}
			rec, err := store.Load(name)
			if err != nil {
				return err
			}
			return wrangler.Invoke(wranglerSystem, rec, wranglerEnv, args)
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", messages.RunFlagProfile)
	cmd.Flags().StringVar(&wranglerEnv, "env", "", messages.RunFlagEnv)

	return cmd
}
