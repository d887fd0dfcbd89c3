package export_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/draftforge/draftforge/internal/export"
	"github.com/draftforge/draftforge/pkg/blob"
	"github.com/draftforge/draftforge/pkg/lifecycle"
	"github.com/draftforge/draftforge/pkg/vault"
)

// memoryBlob collects uploads in memory for assertions.
type memoryBlob struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemoryBlob() *memoryBlob {
	return &memoryBlob{blobs: map[string][]byte{}}
}

func (m *memoryBlob) Start(lc *lifecycle.Coordinator) error { return nil }

func (m *memoryBlob) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

func (m *memoryBlob) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[key]
	return ok, nil
}

func (m *memoryBlob) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

var _ blob.System = (*memoryBlob)(nil)

func newVault(t *testing.T) vault.System {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v, err := vault.New(&vault.Config{Root: t.TempDir()}, logger)
	if err != nil {
		t.Fatalf("vault init failed: %v", err)
	}
	return v
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExportFolder(t *testing.T) {
	v := newVault(t)
	folder, _ := v.Folder("2026-03-15")
	v.Write(folder, "contract_sla_20260315_100000_aa11.pdf", []byte("a"))
	v.Write(folder, "contract_csa_20260315_110000_bb22.pdf", []byte("b"))

	other, _ := v.Folder("2026-03-16")
	v.Write(other, "contract_psa_20260316_100000_cc33.pdf", []byte("c"))

	target := newMemoryBlob()
	sys := export.New(v, target, 4, discard())

	result, err := sys.ExportFolder(context.Background(), "2026-03-15")
	if err != nil {
		t.Fatalf("ExportFolder failed: %v", err)
	}

	if result.Folder != "2026-03-15" {
		t.Errorf("folder = %s, want 2026-03-15", result.Folder)
	}
	if result.Uploaded != 2 {
		t.Errorf("uploaded = %d, want 2", result.Uploaded)
	}

	keys := append([]string(nil), result.Keys...)
	sort.Strings(keys)
	want := []string{
		"2026-03-15/contract_csa_20260315_110000_bb22.pdf",
		"2026-03-15/contract_sla_20260315_100000_aa11.pdf",
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("key[%d] = %s, want %s", i, keys[i], k)
		}
	}

	if ok, _ := target.Exists(context.Background(), want[0]); !ok {
		t.Error("uploaded blob missing from target")
	}
	if ok, _ := target.Exists(context.Background(), "2026-03-16/contract_psa_20260316_100000_cc33.pdf"); ok {
		t.Error("artifacts outside the requested folder must not be uploaded")
	}
}

func TestExportFolderUnavailable(t *testing.T) {
	sys := export.New(newVault(t), nil, 4, discard())

	_, err := sys.ExportFolder(context.Background(), "2026-03-15")
	if !errors.Is(err, export.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestExportFolderValidation(t *testing.T) {
	sys := export.New(newVault(t), newMemoryBlob(), 4, discard())

	if _, err := sys.ExportFolder(context.Background(), "a/b"); !errors.Is(err, vault.ErrInvalidPath) {
		t.Errorf("nested folder error = %v, want ErrInvalidPath", err)
	}
	if _, err := sys.ExportFolder(context.Background(), ""); !errors.Is(err, vault.ErrInvalidPath) {
		t.Errorf("empty folder error = %v, want ErrInvalidPath", err)
	}
	if _, err := sys.ExportFolder(context.Background(), "missing"); !errors.Is(err, vault.ErrNotFound) {
		t.Errorf("missing folder error = %v, want ErrNotFound", err)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{export.ErrUnavailable, http.StatusServiceUnavailable},
		{vault.ErrNotFound, http.StatusNotFound},
		{vault.ErrInvalidPath, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := export.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
