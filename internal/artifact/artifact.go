// Package artifact manages the temporary files one pipeline operation
// produces: every byproduct gets a collision-free path scoped to the
// operation, and every path is released on all exit paths.
package artifact

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
)

// Scope owns the artifacts of a single operation. It is single-owner by
// contract (one operation, one goroutine); concurrent operations each hold
// their own Scope and can never collide because every scope works inside a
// freshly named directory.
type Scope struct {
	base   string
	dir    string // created on first use
	paths  []string
	closed bool
}

// NewScope returns a scope under base, or the system temp directory when
// base is empty. Callers defer Close.
func NewScope(base string) *Scope {
	if base == "" {
		base = os.TempDir()
	}
	return &Scope{base: base}
}

// Workdir returns the scope's private directory, creating it on first call.
// Files an external tool drops in here (ffmpeg chunk output) are removed
// with the scope even if never tracked individually.
func (s *Scope) Workdir() (string, error) {
	if s.dir == "" {
		dir := filepath.Join(s.base, "dub-"+uuid.NewString())
		if err := os.Mkdir(dir, 0o700); err != nil {
			return "", fmt.Errorf("%w: create scope dir: %v", dubbing.ErrArtifactIO, err)
		}
		s.dir = dir
	}
	return s.dir, nil
}

// Create claims a fresh artifact path inside the scope and records it for
// cleanup. The file is created up front (O_EXCL) so the name is taken the
// moment it is handed out.
func (s *Scope) Create(prefix, ext string) (string, error) {
	dir, err := s.Workdir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, prefix+"_"+uuid.NewString()+ext)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %v", dubbing.ErrArtifactIO, filepath.Base(path), err)
	}
	f.Close()

	s.paths = append(s.paths, path)
	return path, nil
}

// WriteFile claims a fresh artifact path and fills it with data in one step.
func (s *Scope) WriteFile(prefix, ext string, data []byte) (string, error) {
	path, err := s.Create(prefix, ext)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", dubbing.ErrArtifactIO, filepath.Base(path), err)
	}
	return path, nil
}

// Track records an artifact created outside the scope directory so it is
// removed with the rest.
func (s *Scope) Track(path string) {
	s.paths = append(s.paths, path)
}

// Remove deletes one artifact. Deleting a path that no longer exists is a
// no-op, so two cleanup paths referencing the same artifact are harmless.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove %s: %v", dubbing.ErrArtifactIO, filepath.Base(path), err)
	}
	return nil
}

// Close removes every artifact recorded in the scope, then the scope
// directory itself. It never panics and is safe to call more than once;
// removal failures are logged, not raised, so cleanup of the remaining
// artifacts always runs.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true

	for _, p := range s.paths {
		if err := Remove(p); err != nil {
			slog.Debug("artifact cleanup", "file", filepath.Base(p), "err", err)
		}
	}
	s.paths = nil

	if s.dir != "" {
		if err := os.RemoveAll(s.dir); err != nil {
			slog.Debug("artifact cleanup", "dir", filepath.Base(s.dir), "err", err)
		}
		s.dir = ""
	}
}
