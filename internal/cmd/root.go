// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/strickvl/matcha/internal/config"
	"github.com/strickvl/matcha/internal/output"
)

// GlobalOptions holds CLI-wide state resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every
// sub-command constructor; the global parameters handle inside it is the
// single in-process representation of the persisted configuration record.
type GlobalOptions struct {
	// Params is the lazily-opened handle to the global configuration record.
	Params *config.Handle

	// Verbose enables substep progress output and debug logging.
	Verbose bool
}

// NewRootCmd creates the root command for the matcha CLI.
func NewRootCmd() *cobra.Command {
	opts := &GlobalOptions{}

	var (
		verbose    bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:           "matcha",
		Short:         "Provision MLOps infrastructure from a Terraform template",
		Long:          `matcha materializes a parameterized Terraform template tree into a local project workspace, ready for the provisioning tool to run against.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = verbose
			opts.Params = config.NewHandle(configPath)
			output.SetupLogging(verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show substep progress output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the global config file (env: MATCHA_CONFIG)")

	rootCmd.AddCommand(NewProvisionCmd(opts))
	rootCmd.AddCommand(NewAnalyticsCmd(opts))
	rootCmd.AddCommand(NewVersionCmd(opts))

	return rootCmd
}
