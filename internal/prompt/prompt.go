// Package prompt supplies interactive answers to the core engine.
//
// The core never talks to a terminal directly; it receives answers through
// the Prompter interface so the reuse decision and variable collection stay
// testable without one.
package prompt

import (
	"github.com/charmbracelet/huh"
)

// Prompter supplies answers for interactive questions.
type Prompter interface {
	// Input asks for a free-form string with an optional default.
	Input(title, defaultValue string) (string, error)

	// Secret asks for a string without echoing it.
	Secret(title string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, defaultValue bool) (bool, error)
}

// Console is a Prompter backed by an interactive terminal form.
type Console struct{}

// NewConsole creates a terminal-backed prompter.
func NewConsole() *Console {
	return &Console{}
}

// Input asks for a free-form string with an optional default.
func (c *Console) Input(title, defaultValue string) (string, error) {
	value := defaultValue
	err := huh.NewInput().
		Title(title).
		Value(&value).
		Run()
	return value, err
}

// Secret asks for a string without echoing it.
func (c *Console) Secret(title string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&value).
		Run()
	return value, err
}

// Confirm asks a yes/no question.
func (c *Console) Confirm(title string, defaultValue bool) (bool, error) {
	value := defaultValue
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Run()
	return value, err
}
