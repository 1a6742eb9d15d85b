package templates

import (
	"errors"
	"io/fs"
	"os"

	"github.com/strickvl/matcha/internal/output"
	"github.com/strickvl/matcha/internal/prompt"
)

const overrideQuestion = "If you choose to override the existing configuration, " +
	"the existing configuration will be deleted. Otherwise, the configuration " +
	"will be reused.\n\nDo you want to override the existing configuration?"

// ReuseDecider reports whether an existing workspace should be kept as-is.
// It is only consulted when the destination already exists.
type ReuseDecider interface {
	Reuse(destination string) (bool, error)
}

// ReuseDeciderFunc adapts a function to the ReuseDecider interface.
type ReuseDeciderFunc func(destination string) (bool, error)

// Reuse calls f.
func (f ReuseDeciderFunc) Reuse(destination string) (bool, error) {
	return f(destination)
}

// PromptedDecider asks the user whether to override an existing workspace,
// after summarizing the resource categories the prior materialization
// represents. Answering "no" to the override question means reuse.
type PromptedDecider struct {
	Prompter  prompt.Prompter
	Reporter  output.Reporter
	Resources []output.Resource
}

// Reuse presents the resource summary and asks the override question.
func (d *PromptedDecider) Reuse(destination string) (bool, error) {
	d.Reporter.Status(output.FormatResourceConfirmation(
		"Matcha has detected that the following resources have already been configured for provisioning:",
		d.Resources,
	))

	override, err := d.Prompter.Confirm(overrideQuestion, false)
	if err != nil {
		return false, err
	}
	return !override, nil
}

// WorkspaceExists reports whether a prior materialization is present at
// destination.
func WorkspaceExists(destination string) (bool, error) {
	_, err := os.Stat(destination)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
