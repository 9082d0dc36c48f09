package testutil

import (
	"fmt"

	"github.com/nac-codes/wrangler-profiles/internal/prompt"
)

// ScriptedUI implements prompt.UI with queued responses so command tests
// can drive interactive flows without a terminal. Each call pops the
// next response from the matching queue; an empty queue fails the call.
type ScriptedUI struct {
	Selections []string
	Inputs     []string
	Secrets    []string
	Confirms   []bool

	// Abort causes every prompt to return prompt.ErrAborted.
	Abort bool
}

var _ prompt.UI = (*ScriptedUI)(nil)

// Select pops the next scripted selection.
func (ui *ScriptedUI) Select(title string, options []string, value *string) error {
	if ui.Abort {
		return prompt.ErrAborted
	}
	if len(ui.Selections) == 0 {
		return fmt.Errorf("scripted ui: unexpected select %q", title)
	}
	*value = ui.Selections[0]
	ui.Selections = ui.Selections[1:]
	return nil
}

// Input pops the next scripted input line.
func (ui *ScriptedUI) Input(title string, placeholder string, value *string) error {
	if ui.Abort {
		return prompt.ErrAborted
	}
	if len(ui.Inputs) == 0 {
		return fmt.Errorf("scripted ui: unexpected input %q", title)
	}
	*value = ui.Inputs[0]
	ui.Inputs = ui.Inputs[1:]
	return nil
}

// SecretInput pops the next scripted secret.
func (ui *ScriptedUI) SecretInput(title string, value *string) error {
	if ui.Abort {
		return prompt.ErrAborted
	}
	if len(ui.Secrets) == 0 {
		return fmt.Errorf("scripted ui: unexpected secret input %q", title)
	}
	*value = ui.Secrets[0]
	ui.Secrets = ui.Secrets[1:]
	return nil
}

// Confirm pops the next scripted answer.
func (ui *ScriptedUI) Confirm(title string, value *bool) error {
	if ui.Abort {
		return prompt.ErrAborted
	}
	if len(ui.Confirms) == 0 {
		return fmt.Errorf("scripted ui: unexpected confirm %q", title)
	}
	*value = ui.Confirms[0]
	ui.Confirms = ui.Confirms[1:]
	return nil
}
