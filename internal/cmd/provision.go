package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	merrors "github.com/strickvl/matcha/internal/errors"
	"github.com/strickvl/matcha/internal/output"
	"github.com/strickvl/matcha/internal/prompt"
	"github.com/strickvl/matcha/internal/templates"
)

// Environment variable naming the template source tree.
const envTemplateDir = "MATCHA_TEMPLATE"

// provisionOptions collects the provision command's flag values.
type provisionOptions struct {
	Location    string
	Prefix      string
	Password    string
	TemplateDir string
	Destination string
}

// NewProvisionCmd creates the provision command.
func NewProvisionCmd(g *GlobalOptions) *cobra.Command {
	opts := provisionOptions{}

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Materialize the infrastructure template into the project directory",
		Long: `Materialize the infrastructure template into the project directory.

Copies the template tree into the destination workspace and writes the
generated variables file consumed by the provisioning tool. Missing
variables are prompted for interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(cmd.Context(), g, opts,
				prompt.NewConsole(), output.NewConsoleReporter(g.Verbose))
		},
	}

	cmd.Flags().StringVar(&opts.Location, "location", "", "Region in which all resources will be provisioned")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Prefix used for all resource names")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Password for the ZenServer component")
	cmd.Flags().StringVar(&opts.TemplateDir, "template", "", "Path to the template source tree (env: MATCHA_TEMPLATE)")
	cmd.Flags().StringVar(&opts.Destination, "destination", filepath.Join(".matcha", "infrastructure"), "Workspace directory to materialize into")

	return cmd
}

func runProvision(ctx context.Context, g *GlobalOptions, opts provisionOptions, prompter prompt.Prompter, reporter output.Reporter) error {
	store, err := g.Params.Get()
	if err != nil {
		return err
	}
	output.Debug("global parameters loaded",
		"user_id", store.UserID(),
		"analytics_opt_out", store.AnalyticsOptOut())

	if opts.TemplateDir == "" {
		opts.TemplateDir = os.Getenv(envTemplateDir)
	}
	if opts.TemplateDir == "" {
		return merrors.Wrap(merrors.ErrNotFound, "no template source given; pass --template or set MATCHA_TEMPLATE")
	}

	vars, err := collectVariables(prompter, opts)
	if err != nil {
		return err
	}

	// The override question has to be answered before the spinner starts,
	// so the decision is resolved here and handed to the engine as a fixed
	// answer.
	exists, err := templates.WorkspaceExists(opts.Destination)
	if err != nil {
		return err
	}
	reuse := false
	if exists {
		decider := &templates.PromptedDecider{
			Prompter:  prompter,
			Reporter:  reporter,
			Resources: templates.AzureResources(),
		}
		reuse, err = decider.Reuse(opts.Destination)
		if err != nil {
			return err
		}
	}

	engine := templates.NewEngine(templates.Azure(), reporter,
		templates.ReuseDeciderFunc(func(string) (bool, error) { return reuse, nil }))

	var result *templates.BuildResult
	err = output.RunWithSpinner(ctx, "Building configuration template...", func() error {
		var buildErr error
		result, buildErr = engine.Build(vars, opts.TemplateDir, opts.Destination)
		return buildErr
	})
	if err != nil {
		return err
	}

	if result.Reused {
		output.Debug("existing workspace reused", "destination", result.Destination)
	}
	return nil
}

// collectVariables fills in template variables not given as flags by asking
// the prompter.
func collectVariables(p prompt.Prompter, opts provisionOptions) (templates.Variables, error) {
	var err error

	location := opts.Location
	if location == "" {
		if location, err = p.Input("Resource location", ""); err != nil {
			return templates.Variables{}, err
		}
	}

	prefix := opts.Prefix
	if prefix == "" {
		if prefix, err = p.Input("Resource name prefix", "matcha"); err != nil {
			return templates.Variables{}, err
		}
	}

	password := opts.Password
	if password == "" {
		if password, err = p.Secret("ZenServer password"); err != nil {
			return templates.Variables{}, err
		}
	}

	return templates.Variables{Location: location, Prefix: prefix, Password: password}, nil
}
