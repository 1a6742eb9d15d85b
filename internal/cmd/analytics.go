package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strickvl/matcha/internal/output"
)

// NewAnalyticsCmd creates the analytics command group.
func NewAnalyticsCmd(g *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Manage anonymous usage analytics",
		Long: `Manage anonymous usage analytics.

matcha stores a randomly generated anonymous identifier and an opt-out flag
in a per-user configuration file shared by all invocations.`,
	}

	cmd.AddCommand(newAnalyticsStatusCmd(g))
	cmd.AddCommand(newAnalyticsOptOutCmd(g))
	cmd.AddCommand(newAnalyticsOptInCmd(g))

	return cmd
}

func newAnalyticsStatusCmd(g *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the anonymous identifier and opt-out state",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := g.Params.Get()
			if err != nil {
				return err
			}

			state := "opted in"
			if store.AnalyticsOptOut() {
				state = "opted out"
			}

			output.Println(fmt.Sprintf("Anonymous usage id: %s", store.UserID()))
			output.Println(fmt.Sprintf("Analytics: %s", state))
			output.Println(fmt.Sprintf("Config file: %s", store.Path()))
			return nil
		},
	}
}

func newAnalyticsOptOutCmd(g *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "opt-out",
		Short: "Opt out of anonymous usage analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := g.Params.Get()
			if err != nil {
				return err
			}
			if err := store.SetAnalyticsOptOut(true); err != nil {
				return err
			}

			output.Println(output.FormatStepSuccess("Opted out of anonymous usage analytics"))
			return nil
		},
	}
}

func newAnalyticsOptInCmd(g *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "opt-in",
		Short: "Opt back in to anonymous usage analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := g.Params.Get()
			if err != nil {
				return err
			}
			if err := store.SetAnalyticsOptOut(false); err != nil {
				return err
			}

			output.Println(output.FormatStepSuccess("Opted in to anonymous usage analytics"))
			return nil
		},
	}
}
