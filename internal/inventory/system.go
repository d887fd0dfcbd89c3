package inventory

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/pagination"
	"github.com/draftforge/draftforge/pkg/vault"
)

// System defines the public contract for inventory operations.
type System interface {
	Handler(pagination pagination.Config) *Handler

	Scan(ctx context.Context) ([]contracts.Record, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[contracts.Record], error)
	Open(ctx context.Context, path string) (fs.File, error)
	Delete(ctx context.Context, path string) error
	DeleteFolder(ctx context.Context, name string) error
	Purge(ctx context.Context) error
}

// Filters narrows inventory listings. Zero values are ignored.
type Filters struct {
	Type        string `json:"type,omitempty"`
	Folder      string `json:"folder,omitempty"`
	Amendments  *bool  `json:"amendments,omitempty"`
	MinFileSize int64  `json:"min_file_size,omitempty"`
}

// Match reports whether a record satisfies every set filter.
func (f Filters) Match(rec contracts.Record) bool {
	if f.Type != "" && !strings.EqualFold(rec.Type, f.Type) {
		return false
	}
	if f.Folder != "" && rec.Folder != f.Folder {
		return false
	}
	if f.Amendments != nil && rec.IsAmendment != *f.Amendments {
		return false
	}
	if f.MinFileSize > 0 && rec.FileSize < f.MinFileSize {
		return false
	}
	return true
}

type system struct {
	vault  vault.System
	logger *slog.Logger
}

// New creates an inventory System over the given vault.
func New(v vault.System, logger *slog.Logger) System {
	return &system{
		vault:  v,
		logger: logger.With("system", "inventory"),
	}
}

func (s *system) Handler(pagination pagination.Config) *Handler {
	return NewHandler(s, s.logger, pagination)
}

// Scan walks the vault and recovers a record per artifact, newest
// modified first. Unrecognizable files are logged and skipped, never
// fatal.
func (s *system) Scan(ctx context.Context) ([]contracts.Record, error) {
	records := []contracts.Record{}
	root := s.vault.Root()

	err := s.vault.Walk(func(path string, info fs.FileInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, ok := parseRecord(root, path, info)
		if !ok {
			s.logger.Warn("skipping unrecognized artifact", "path", path)
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Modified.After(records[j].Modified)
	})

	s.logger.Info("inventory scan complete", "count", len(records))
	return records, nil
}

func (s *system) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[contracts.Record], error) {
	records, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]contracts.Record, 0, len(records))
	for _, rec := range records {
		if !filters.Match(rec) {
			continue
		}
		if page.Search != nil && !matchSearch(rec, *page.Search) {
			continue
		}
		filtered = append(filtered, rec)
	}

	applySort(filtered, page.Sort)

	result := pagination.Paginate(filtered, page)
	return &result, nil
}

func (s *system) Open(ctx context.Context, path string) (fs.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.vault.Open(s.abs(path))
}

func (s *system) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.vault.Delete(s.abs(path))
}

// abs resolves vault-relative artifact paths, as supplied by download
// and delete endpoints, against the vault root.
func (s *system) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.vault.Root(), path)
}

func (s *system) DeleteFolder(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.vault.DeleteFolder(name)
}

func (s *system) Purge(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.vault.Purge()
}

// matchSearch performs case-insensitive contains matching over the
// fields a filename scan can recover.
func matchSearch(rec contracts.Record, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{rec.ID, rec.Name, rec.Type, rec.Vendor, rec.Filename, rec.Folder} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// applySort orders records by the requested fields, preserving the
// newest-first scan order when no sort is given.
func applySort(records []contracts.Record, fields []pagination.SortField) {
	if len(fields) == 0 {
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		for _, f := range fields {
			cmp := compareField(records[i], records[j], f.Field)
			if cmp == 0 {
				continue
			}
			if f.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareField(a, b contracts.Record, field string) int {
	switch strings.ToLower(field) {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "type":
		return strings.Compare(a.Type, b.Type)
	case "date":
		return strings.Compare(a.Date, b.Date)
	case "folder":
		return strings.Compare(a.Folder, b.Folder)
	case "value":
		return compareInt64(a.Value, b.Value)
	case "file_size", "size":
		return compareInt64(a.FileSize, b.FileSize)
	case "modified":
		switch {
		case a.Modified.Before(b.Modified):
			return -1
		case a.Modified.After(b.Modified):
			return 1
		}
		return 0
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
