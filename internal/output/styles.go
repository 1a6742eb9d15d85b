package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorGreen is used for substep success lines.
	ColorGreen = lipgloss.Color("82")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorCyan is used for identifiable nouns: paths, resource names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for cautionary notes ahead of destructive prompts.
	ColorYellow = lipgloss.Color("220")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleStatus styles top-level status lines.
	StyleStatus = lipgloss.NewStyle().Bold(true)

	// StyleSubstep styles per-substep success lines.
	StyleSubstep = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleStep styles step completion lines.
	StyleStep = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)

	// StyleNoun styles identifiable nouns (paths, resource names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCaution styles warnings shown before destructive prompts.
	StyleCaution = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatStatus renders a top-level status line.
func FormatStatus(msg string) string {
	return StyleStatus.Render(msg)
}

// FormatSubstepSuccess renders a substep success line.
func FormatSubstepSuccess(msg string) string {
	return StyleSubstep.Render(msg)
}

// FormatStepSuccess renders a step completion line with a green checkmark.
func FormatStepSuccess(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + StyleStep.Render(msg)
}

// FormatResourceConfirmation renders a header followed by a bulleted list of
// resource categories, each as "name: description". Shown before asking the
// user whether an existing workspace should be overridden.
func FormatResourceConfirmation(header string, resources []Resource) string {
	var b strings.Builder

	b.WriteString(StyleStatus.Render(header))
	b.WriteString("\n")
	for _, r := range resources {
		b.WriteString(fmt.Sprintf("  - %s: %s\n", StyleNoun.Render(r.Name), r.Description))
	}

	return b.String()
}

// Resource is a named resource category with a human-readable description.
type Resource struct {
	Name        string
	Description string
}
