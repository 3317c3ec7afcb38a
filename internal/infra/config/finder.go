package config

import (
	"os"
	"path/filepath"

	"github.com/avenlon/domainwatch/internal/domain"
)

// Discover searches upward from startDir for the config file, the way git
// locates its repository root, and returns the full path of the first
// domainwatch.yaml found. Lets the tool run from any subdirectory of the
// directory holding the config and state files.
func Discover(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.discover",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file argument means "its directory".
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		path := filepath.Join(cur, DefaultPath)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.discover",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
