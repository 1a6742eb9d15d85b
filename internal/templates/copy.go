package templates

import (
	"io"
	"os"
	"path/filepath"
)

// copyFiles copies each source file into destination[/subdir]/basename(src),
// preserving contents and filename but not source directory structure.
// The destination directory (and subdir, if given) must already exist.
// The first I/O error aborts the batch; files copied so far are left in place.
func copyFiles(files []string, destination, subdir string) error {
	for _, source := range files {
		target := filepath.Join(destination, subdir, filepath.Base(source))
		if err := copyFile(source, target); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file, overwriting the target if present.
func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
