package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nac-codes/wrangler-profiles/internal/activate"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/profile"
	"github.com/nac-codes/wrangler-profiles/internal/prompt"
	"github.com/nac-codes/wrangler-profiles/internal/wrangler"
)

func newAddCmd() *cobra.Command {
	var (
		useOAuth  bool
		useToken  bool
		accountID string
		apiToken  string
	)
	cmd := &cobra.Command{
		Use:   messages.AddUse,
		Short: messages.AddShort,
		Long:  messages.AddLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if useOAuth && useToken {
				return fmt.Errorf(messages.AddBothMethodsFlagged)
			}
			if useOAuth && apiToken != "" {
				return fmt.Errorf(messages.AddTokenFlagWithOAuth)
			}
			store, err := openStore()
			if err != nil {
				return err
			}
			exists, err := store.Exists(name)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf(messages.RecordProfileExistsFmt, profile.ErrExists, name)
			}

			method, err := resolveAddMethod(useOAuth, useToken)
			if err != nil {
				return err
			}
			var rec profile.Record
			switch method {
			case profile.MethodOAuth:
				rec, err = addOAuthProfile(cmd, store, name)
			default:
				rec, err = addAPITokenProfile(name, accountID, apiToken)
			}
			if err != nil {
				return err
			}
			if err := store.Save(rec); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.AddCreatedFmt, rec.Name, rec.Auth.Method())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.AddActivateHintFmt, rec.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useOAuth, "oauth", false, messages.AddFlagOAuth)
	cmd.Flags().BoolVar(&useToken, "api-token", false, messages.AddFlagAPIToken)
	cmd.Flags().StringVar(&accountID, "account-id", "", messages.AddFlagAccountID)
	cmd.Flags().StringVar(&apiToken, "token", "", messages.AddFlagToken)

	return cmd
}

// resolveAddMethod picks the auth method from flags, prompting when
// neither flag selects one.
func resolveAddMethod(useOAuth bool, useToken bool) (profile.Method, error) {
	if useOAuth {
		return profile.MethodOAuth, nil
	}
	if useToken {
		return profile.MethodAPIToken, nil
	}
	if !isTerminalFunc() {
		return "", fmt.Errorf(messages.AddRequiresTerminal)
	}
	choice := messages.AddMethodOptionOAuth
	err := newUIFunc().Select(messages.AddMethodPromptTitle, []string{
		messages.AddMethodOptionOAuth,
		messages.AddMethodOptionAPIToken,
	}, &choice)
	if err != nil {
		return "", err
	}
	if choice == messages.AddMethodOptionAPIToken {
		return profile.MethodAPIToken, nil
	}
	return profile.MethodOAuth, nil
}

// addOAuthProfile runs the browser login, stores the resulting session
// for the new profile, and best-effort detects the account ID.
func addOAuthProfile(cmd *cobra.Command, store *profile.Store, name string) (profile.Record, error) {
	if err := wrangler.Login(wranglerSystem); err != nil {
		return profile.Record{}, err
	}
	slot, err := wrangler.ConfigSlot()
	if err != nil {
		return profile.Record{}, err
	}
	if err := activate.CaptureOAuth(activateSystem, store, slot, name); err != nil {
		return profile.Record{}, err
	}
	account := ""
	if identity, ok := wrangler.Whoami(cmd.Context(), wranglerSystem); ok && identity.AccountID != "" {
		account = identity.AccountID
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.AddDetectedAccountFmt, account)
	} else {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.AddNoAccountDetected)
	}
	return profile.NewOAuthRecord(name, account, time.Now().UTC()), nil
}

// addAPITokenProfile assembles a token record from flags, prompting for
// whichever fields the flags left unset.
func addAPITokenProfile(name string, accountID string, apiToken string) (profile.Record, error) {
	var ui prompt.UI
	ensureUI := func() (prompt.UI, error) {
		if ui != nil {
			return ui, nil
		}
		if !isTerminalFunc() {
			return nil, fmt.Errorf(messages.AddRequiresTerminal)
		}
		ui = newUIFunc()
		return ui, nil
	}
	if accountID == "" {
		u, err := ensureUI()
		if err != nil {
			return profile.Record{}, err
		}
		if err := u.Input(messages.AddAccountPromptTitle, messages.AddAccountPlaceholder, &accountID); err != nil {
			return profile.Record{}, err
		}
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return profile.Record{}, fmt.Errorf(messages.PromptEmptyInputFmt, messages.AddAccountPromptTitle)
	}
	if apiToken == "" {
		u, err := ensureUI()
		if err != nil {
			return profile.Record{}, err
		}
		if err := u.SecretInput(messages.AddTokenPromptTitle, &apiToken); err != nil {
			return profile.Record{}, err
		}
	}
	apiToken = strings.TrimSpace(apiToken)
	if apiToken == "" {
		return profile.Record{}, fmt.Errorf(messages.PromptEmptyInputFmt, messages.AddTokenPromptTitle)
	}
	return profile.NewAPITokenRecord(name, accountID, apiToken, time.Now().UTC()), nil
}
