// Package vault provides the local filesystem artifact store for
// generated contract documents. Artifacts live in date or per-batch
// timestamp folders beneath a single configured root.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/draftforge/draftforge/pkg/lifecycle"
)

// Folder name layouts beneath the vault root.
const (
	DateLayout  = "2006-01-02"
	StampLayout = "20060102_150405"
)

// System manages artifact storage beneath the vault root.
type System interface {
	// Start registers a startup hook that creates the vault root.
	Start(lc *lifecycle.Coordinator) error
	// Root returns the absolute vault root path.
	Root() string
	// DateFolder ensures and returns the folder for t's calendar date.
	DateFolder(t time.Time) (string, error)
	// StampFolder ensures and returns a per-batch timestamp folder for t.
	StampFolder(t time.Time) (string, error)
	// Folder ensures and returns a named folder directly beneath the root.
	Folder(name string) (string, error)
	// Write stores data at name inside folder and returns the artifact path.
	Write(folder, name string, data []byte) (string, error)
	// Stat returns file info for an artifact path beneath the root.
	Stat(path string) (fs.FileInfo, error)
	// Open returns a reader for an artifact path beneath the root.
	// The caller must close the reader.
	Open(path string) (fs.File, error)
	// Delete removes a single artifact. Returns ErrNotFound if absent.
	Delete(path string) error
	// DeleteFolder removes a folder and everything in it.
	DeleteFolder(name string) error
	// Purge removes every artifact and recreates an empty root.
	Purge() error
	// Walk visits every regular file beneath the root.
	Walk(fn func(path string, info fs.FileInfo) error) error
}

type store struct {
	root   string
	logger *slog.Logger
}

// New creates a vault System rooted at cfg.Root. The root is resolved
// to an absolute path immediately; the directory itself is created on
// Start (or lazily by the first folder request).
func New(cfg *Config, logger *slog.Logger) (System, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root: %w", err)
	}

	return &store{
		root:   root,
		logger: logger.With("system", "vault"),
	}, nil
}

func (s *store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting vault", "root", s.root)

	lc.OnStartup(func() {
		if err := os.MkdirAll(s.root, 0o755); err != nil {
			s.logger.Error("vault root initialization failed", "error", err)
			return
		}
		s.logger.Info("vault root ready", "root", s.root)
	})

	return nil
}

func (s *store) Root() string {
	return s.root
}

func (s *store) DateFolder(t time.Time) (string, error) {
	return s.ensureFolder(t.Format(DateLayout))
}

func (s *store) StampFolder(t time.Time) (string, error) {
	return s.ensureFolder(t.Format(StampLayout))
}

func (s *store) Folder(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidPath
	}
	return s.ensureFolder(name)
}

func (s *store) Write(folder, name string, data []byte) (string, error) {
	path := filepath.Join(folder, name)
	if err := s.contained(path); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteFailed, name, err)
	}

	return path, nil
}

func (s *store) Stat(path string) (fs.FileInfo, error) {
	if err := s.contained(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat artifact %s: %w", path, err)
	}
	return info, nil
}

func (s *store) Open(path string) (fs.File, error) {
	if err := s.contained(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open artifact %s: %w", path, err)
	}
	return f, nil
}

func (s *store) Delete(path string) error {
	if err := s.contained(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("delete artifact %s: %w", path, err)
	}

	s.logger.Info("artifact deleted", "path", path)
	return nil
}

func (s *store) DeleteFolder(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return ErrInvalidPath
	}

	path := filepath.Join(s.root, name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("delete folder %s: %w", name, err)
	}

	s.logger.Info("folder deleted", "folder", name)
	return nil
}

func (s *store) Purge() error {
	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("purge vault: %w", err)
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("recreate vault root: %w", err)
	}

	s.logger.Info("vault purged", "root", s.root)
	return nil
}

func (s *store) Walk(fn func(path string, info fs.FileInfo) error) error {
	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(path, info)
	})
}

func (s *store) ensureFolder(name string) (string, error) {
	path := filepath.Join(s.root, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("ensure folder %s: %w", name, err)
	}
	return path, nil
}

// contained rejects paths that resolve outside the vault root.
func (s *store) contained(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ErrInvalidPath
	}

	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrInvalidPath
	}
	return nil
}
