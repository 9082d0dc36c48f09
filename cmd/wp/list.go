package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			names, err := store.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.ListEmpty)
				return nil
			}
			current, _, err := store.Current()
			if err != nil {
				return err
			}
			for _, name := range names {
				rec, err := store.Load(name)
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), messages.ListCorruptWarnFmt, name, err)
					continue
				}
				account := rec.Auth.AccountID()
				if account == "" {
					account = "-"
				}
				credential := ""
				if cred, ok := rec.TokenCredential(); ok {
					credential = obfuscateString(cred.Token, 4)
				}
				marker := " "
				if name == current {
					marker = color.GreenString("*")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ListEntryFmt, marker, name, rec.Auth.Method(), account, credential)
			}
			return nil
		},
	}

	return cmd
}

// obfuscateString masks all but the first and last n characters.
func obfuscateString(s string, n int) string {
	var ret string
	for i, v := range s {
		if i >= n && i < len(s)-n {
			ret += "*"
		} else {
			ret += string(v)
		}
	}
	return ret
}
