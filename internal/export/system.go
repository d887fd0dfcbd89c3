// Package export mirrors vault folders into the Azure blob container so
// generated contract sets can be shared with downstream demo tooling.
package export

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/draftforge/draftforge/pkg/blob"
	"github.com/draftforge/draftforge/pkg/vault"
)

// ErrUnavailable indicates the blob export target is not configured.
var ErrUnavailable = errors.New("export target not configured")

// Result summarizes one folder export.
type Result struct {
	Folder   string   `json:"folder"`
	Uploaded int      `json:"uploaded"`
	Keys     []string `json:"keys"`
}

// System defines the public contract for export operations.
type System interface {
	Handler() *Handler

	// ExportFolder uploads every artifact in the named vault folder to
	// the blob container under <folder>/<filename> keys.
	ExportFolder(ctx context.Context, folder string) (*Result, error)
}

type system struct {
	vault   vault.System
	blob    blob.System
	workers int
	logger  *slog.Logger
}

// New creates an export System. The blob target may be nil when the
// mirror is disabled; operations then fail with ErrUnavailable.
func New(v vault.System, b blob.System, workers int, logger *slog.Logger) System {
	if workers < 1 {
		workers = 1
	}
	return &system{
		vault:   v,
		blob:    b,
		workers: workers,
		logger:  logger.With("system", "export"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) ExportFolder(ctx context.Context, folder string) (*Result, error) {
	if s.blob == nil {
		return nil, ErrUnavailable
	}
	if folder == "" || strings.ContainsAny(folder, `/\`) {
		return nil, vault.ErrInvalidPath
	}

	root := s.vault.Root()
	dir := filepath.Join(root, folder)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, vault.ErrNotFound
	}

	var paths []string
	err := s.vault.Walk(func(path string, info fs.FileInfo) error {
		if filepath.Dir(path) == dir {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	keys := make([]string, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			f, err := s.vault.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			key := folder + "/" + filepath.Base(path)
			if err := s.blob.Upload(gctx, key, f, "application/pdf"); err != nil {
				return err
			}

			keys[i] = key
			s.logger.Info("artifact exported", "key", key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Folder: folder, Uploaded: len(keys), Keys: keys}, nil
}

// MapHTTPStatus maps export errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, vault.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, vault.ErrInvalidPath) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
