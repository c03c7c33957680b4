// Package securefile provides atomic file writes and config path resolution
// on top of an afero filesystem.
package securefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// AtomicWriteFile writes data to a sibling temp file and renames it over path,
// so readers never observe a half-written file. Existing files are replaced.
func AtomicWriteFile(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"

	// Best effort cleanup if something already exists.
	_ = fs.Remove(tmp)

	if err := afero.WriteFile(fs, tmp, data, perm); err != nil {
		return fmt.Errorf("write tmp %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// ConfigPathCandidates returns directories to search for app config, in priority order:
// <home>/.config/<app>, <home>/config, then the working directory.
func ConfigPathCandidates(app string) ([]string, error) {
	if app == "" {
		return nil, errors.New("app must not be empty")
	}

	var paths []string
	seen := map[string]bool{}
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}

	// SNAP_REAL_HOME wins over HOME inside snap confinement.
	if realHome := os.Getenv("SNAP_REAL_HOME"); realHome != "" {
		add(filepath.Join(realHome, ".config", app))
	}
	if home, err := os.UserHomeDir(); err == nil {
		add(filepath.Join(home, ".config", app))
		add(filepath.Join(home, "config"))
	}
	add(".")

	return paths, nil
}
