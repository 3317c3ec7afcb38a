// Package filestate persists signal values as one plain-text file per
// signal, the layout shared with earlier versions of this tool so existing
// state directories keep working.
package filestate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/ports"
)

type Store struct {
	dir        string
	whoisFile  string
	statusFile string
}

func New(cfg domain.StateConfig) *Store {
	defaults := domain.DefaultConfig().State

	dir := cfg.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaults.Dir
	}
	whoisFile := cfg.WhoisFile
	if strings.TrimSpace(whoisFile) == "" {
		whoisFile = defaults.WhoisFile
	}
	statusFile := cfg.StatusFile
	if strings.TrimSpace(statusFile) == "" {
		statusFile = defaults.StatusFile
	}

	return &Store{
		dir:        dir,
		whoisFile:  whoisFile,
		statusFile: statusFile,
	}
}

var _ ports.StateStore = (*Store)(nil)

// Get reads the stored value, trimmed. A missing file means the signal has
// never been recorded and is not an error.
func (s *Store) Get(_ context.Context, key domain.SignalKey) (string, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", false, err
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &domain.OpError{
			Op:   "state.read",
			Kind: domain.KindState,
			Path: path,
			Err:  err,
		}
	}

	return strings.TrimSpace(string(b)), true, nil
}

// Set overwrites the stored value. Tmp-then-rename keeps a crashed run from
// leaving a half-written file a later Get would trust.
func (s *Store) Set(_ context.Context, key domain.SignalKey, value string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "state.mkdir",
			Kind: domain.KindState,
			Path: s.dir,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value+"\n"), 0o644); err != nil {
		return &domain.OpError{
			Op:   "state.write",
			Kind: domain.KindState,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "state.rename",
			Kind: domain.KindState,
			Path: path,
			Err:  err,
		}
	}

	return nil
}

// Paths returns the backing file per signal.
func (s *Store) Paths() map[domain.SignalKey]string {
	return map[domain.SignalKey]string{
		domain.SignalWhoisUpdatedDate: filepath.Join(s.dir, s.whoisFile),
		domain.SignalHTTPStatus:       filepath.Join(s.dir, s.statusFile),
	}
}

func (s *Store) pathFor(key domain.SignalKey) (string, error) {
	switch key {
	case domain.SignalWhoisUpdatedDate:
		return filepath.Join(s.dir, s.whoisFile), nil
	case domain.SignalHTTPStatus:
		return filepath.Join(s.dir, s.statusFile), nil
	default:
		return "", &domain.OpError{
			Op:   "state.path",
			Kind: domain.KindState,
			Err:  fmt.Errorf("unknown signal key %q", key),
		}
	}
}
