// Package prompt wraps the interactive prompting used by profile creation
// and removal behind a small interface, so command handlers stay testable
// without a terminal.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/terminal"
)

// ErrAborted reports that the user cancelled a prompt (Ctrl+C/Esc).
var ErrAborted = errors.New("aborted")

// UI defines the interaction methods command handlers need.
type UI interface {
	Select(title string, options []string, value *string) error
	Input(title string, placeholder string, value *string) error
	SecretInput(title string, value *string) error
	Confirm(title string, value *bool) error
}

// HuhUI implements UI using charmbracelet/huh. huh owns the terminal's
// raw input mode for the duration of each form and restores it on every
// exit path, including interrupts.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// Select prompts for one of options.
func (ui *HuhUI) Select(title string, options []string, value *string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}
	return ui.runField(huh.NewSelect[string]().Title(title).Options(opts...).Value(value))
}

// Input prompts for a line of text.
func (ui *HuhUI) Input(title string, placeholder string, value *string) error {
	return ui.runField(huh.NewInput().Title(title).Placeholder(placeholder).Value(value))
}

// SecretInput prompts for a line of text with echo suppressed.
func (ui *HuhUI) SecretInput(title string, value *string) error {
	return ui.runField(huh.NewInput().Title(title).EchoMode(huh.EchoModePassword).Value(value))
}

// Confirm prompts for a yes/no answer.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runField(huh.NewConfirm().Title(title).Value(value))
}

func (ui *HuhUI) runField(field huh.Field) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	err := runFormFunc(huh.NewForm(huh.NewGroup(field)))
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// ensureInteractive returns an error when the UI is invoked without a
// terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.PromptRequiresTerminal)
}
