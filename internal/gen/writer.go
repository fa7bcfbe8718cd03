package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory.
// Files whose content is already up to date are not rewritten. It returns
// the paths actually written.
func WriteFiles(files []GeneratedFile) ([]string, error) {
	var written []string

	for _, file := range files {
		if file.Dir == "" {
			return written, fmt.Errorf("writing file %s: no package directory", file.Filename)
		}

		current, err := os.ReadFile(file.Path())
		if err == nil && bytes.Equal(current, file.Content) {
			continue
		}

		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return written, fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		written = append(written, file.Path())
	}

	return written, nil
}

// Stale returns the paths of generated files that are missing on disk or
// differ from the freshly generated content.
func Stale(files []GeneratedFile) ([]string, error) {
	var stale []string

	for _, file := range files {
		current, err := os.ReadFile(file.Path())
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, file.Path())
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", file.Path(), err)
		case !bytes.Equal(current, file.Content):
			stale = append(stale, file.Path())
		}
	}

	return stale, nil
}
