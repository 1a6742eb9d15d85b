package templates

import (
	"fmt"
	"path/filepath"
)

// rootAuxiliaryFiles returns the source paths of the fixed top-level
// auxiliary files. The files are not checked for existence here; a missing
// mandatory file surfaces from the copy step.
func (m Manifest) rootAuxiliaryFiles(src string) []string {
	files := make([]string, 0, len(m.RootFiles))
	for _, name := range m.RootFiles {
		files = append(files, filepath.Join(src, name))
	}
	return files
}

// rootTemplateFiles returns the existing top-level files matching the
// templated-file pattern. Glob results are sorted, so the copy order is
// deterministic.
func (m Manifest) rootTemplateFiles(src string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(src, m.RootPattern))
	if err != nil {
		return nil, fmt.Errorf("matching root template files: %w", err)
	}
	return files, nil
}

// submoduleFiles returns the existing files for one sub-module, one glob per
// allowed extension. A sub-module with no matching files yields an empty
// slice, not an error.
func (m Manifest) submoduleFiles(src, submodule string) ([]string, error) {
	var files []string
	for _, ext := range m.AllowedExtensions {
		matches, err := filepath.Glob(filepath.Join(src, submodule, "*."+ext))
		if err != nil {
			return nil, fmt.Errorf("matching %s files in %s: %w", ext, submodule, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}
