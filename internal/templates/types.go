// Package templates materializes a parameterized Terraform template tree
// into a local project workspace.
package templates

// VariablesFileName is the name of the generated variables file inside the
// workspace. The external provisioning tool consumes it verbatim, so the
// name and its flat key schema must stay stable.
const VariablesFileName = "terraform.tfvars.json"

// Variables are the user-supplied values rendered into the variables file.
// All three fields must be non-empty at materialization time.
type Variables struct {
	// Location is the region in which all resources will be provisioned.
	Location string `json:"location"`

	// Prefix is the namespacing token used for all generated resource names.
	Prefix string `json:"prefix"`

	// Password is the secret for the server component provisioned by the
	// template.
	Password string `json:"password"`
}

// Manifest is the static, versioned description of what a template tree
// contains. It changes only when the template's own shape changes; every
// materialization run must use the manifest the template author published.
type Manifest struct {
	// RootFiles are top-level auxiliary filenames copied verbatim.
	RootFiles []string

	// RootPattern is the glob matching top-level templated files.
	RootPattern string

	// AllowedExtensions is the extension allow-list for sub-module files.
	AllowedExtensions []string

	// Submodules are the sub-module directory names, in the fixed order
	// progress is reported in.
	Submodules []string
}

// BuildResult describes the outcome of a materialization run.
type BuildResult struct {
	// Destination is the workspace path.
	Destination string

	// Reused reports that an existing workspace was kept untouched.
	Reused bool
}
