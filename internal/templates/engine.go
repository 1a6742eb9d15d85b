package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	merrors "github.com/strickvl/matcha/internal/errors"
	"github.com/strickvl/matcha/internal/output"
)

// Engine materializes a template tree into a destination workspace.
type Engine struct {
	manifest Manifest
	reporter output.Reporter
	decider  ReuseDecider
}

// NewEngine creates an engine for the given manifest. The decider is
// consulted when the destination workspace already exists; the reporter
// receives progress events in the order they are generated.
func NewEngine(manifest Manifest, reporter output.Reporter, decider ReuseDecider) *Engine {
	return &Engine{manifest: manifest, reporter: reporter, decider: decider}
}

// Build copies the template tree from templateSrc into destination and
// writes the variables file.
//
// When the destination already exists, the reuse decider chooses between
// keeping it untouched (Reused result, no file touched) and destroying it
// in full before rebuilding. The old tree is always deleted before any new
// file is written, so stale sub-module files from a superseded manifest
// never survive into the new workspace.
//
// Permission failures abort the whole operation and surface as a single
// error naming the destination; any other filesystem error propagates
// unmodified. There is no partial re-materialization and no retry: a
// subsequent run clears stale state and rebuilds.
func (e *Engine) Build(vars Variables, templateSrc, destination string) (*BuildResult, error) {
	if err := vars.validate(); err != nil {
		return nil, err
	}

	e.reporter.Status("Building configuration template...")

	exists, err := WorkspaceExists(destination)
	if err != nil {
		return nil, permissionAt(destination, err)
	}
	if exists {
		reuse, err := e.decider.Reuse(destination)
		if err != nil {
			return nil, err
		}
		if reuse {
			e.reporter.StepSuccess(fmt.Sprintf("The existing configuration at %s was reused", destination))
			return &BuildResult{Destination: destination, Reused: true}, nil
		}
		if err := os.RemoveAll(destination); err != nil {
			return nil, permissionAt(destination, err)
		}
	}

	if err := os.MkdirAll(destination, 0o755); err != nil {
		return nil, permissionAt(destination, err)
	}
	e.reporter.SubstepSuccess(fmt.Sprintf("Ensured template destination directory: %s", destination))

	if err := copyFiles(e.manifest.rootAuxiliaryFiles(templateSrc), destination, ""); err != nil {
		return nil, permissionAt(destination, err)
	}

	rootFiles, err := e.manifest.rootTemplateFiles(templateSrc)
	if err != nil {
		return nil, err
	}
	if err := copyFiles(rootFiles, destination, ""); err != nil {
		return nil, permissionAt(destination, err)
	}

	for _, submodule := range e.manifest.Submodules {
		if err := os.MkdirAll(filepath.Join(destination, submodule), 0o755); err != nil {
			return nil, permissionAt(destination, err)
		}

		files, err := e.manifest.submoduleFiles(templateSrc, submodule)
		if err != nil {
			return nil, err
		}
		if err := copyFiles(files, destination, submodule); err != nil {
			return nil, permissionAt(destination, err)
		}

		e.reporter.SubstepSuccess(fmt.Sprintf("%s module configuration was copied", submodule))
	}
	e.reporter.SubstepSuccess("Configuration was copied")

	if err := e.writeVariables(vars, destination); err != nil {
		return nil, err
	}
	e.reporter.SubstepSuccess("Template variables were added")

	e.reporter.SubstepSuccess("Template configuration has finished")
	e.reporter.StepSuccess(fmt.Sprintf("The configuration template was written to %s", destination))

	return &BuildResult{Destination: destination}, nil
}

// writeVariables serializes the variables as a flat JSON object at the fixed
// path inside the workspace, overwriting any existing file.
func (e *Engine) writeVariables(vars Variables, destination string) error {
	data, err := json.Marshal(vars)
	if err != nil {
		return err
	}

	path := filepath.Join(destination, VariablesFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return permissionAt(destination, err)
	}
	return nil
}

// validate checks the presence invariant on the template variables.
func (v Variables) validate() error {
	switch {
	case v.Location == "":
		return errors.New("template variables: location must not be empty")
	case v.Prefix == "":
		return errors.New("template variables: prefix must not be empty")
	case v.Password == "":
		return errors.New("template variables: password must not be empty")
	}
	return nil
}

// permissionAt converts permission failures into the dedicated error naming
// the workspace destination; anything else propagates as-is.
func permissionAt(destination string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return merrors.NewPermissionError(destination, err)
	}
	return err
}
