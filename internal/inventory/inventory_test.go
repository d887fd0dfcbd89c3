package inventory_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/internal/inventory"
	"github.com/draftforge/draftforge/pkg/pagination"
	"github.com/draftforge/draftforge/pkg/vault"
)

func newInventory(t *testing.T) (inventory.System, vault.System) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v, err := vault.New(&vault.Config{Root: t.TempDir()}, logger)
	if err != nil {
		t.Fatalf("vault init failed: %v", err)
	}
	return inventory.New(v, logger), v
}

func seed(t *testing.T, v vault.System, folder, name string) string {
	t.Helper()
	dir, err := v.Folder(folder)
	if err != nil {
		t.Fatalf("Folder(%s) failed: %v", folder, err)
	}
	path, err := v.Write(dir, name, []byte("%PDF-1.7 stub"))
	if err != nil {
		t.Fatalf("Write(%s) failed: %v", name, err)
	}
	return path
}

func TestScanRecoversContracts(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "2026-03-15", "contract_sla_20260315_103000_ab12.pdf")

	records, err := sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.ID != "ab12" {
		t.Errorf("id = %s, want ab12", rec.ID)
	}
	if rec.Name != "Contract AB12" {
		t.Errorf("name = %s, want Contract AB12", rec.Name)
	}
	if rec.Type != string(contracts.SoftwareLicense) {
		t.Errorf("type = %s, want %s", rec.Type, contracts.SoftwareLicense)
	}
	if rec.Vendor != inventory.PlaceholderVendor {
		t.Errorf("vendor = %s, want placeholder %s", rec.Vendor, inventory.PlaceholderVendor)
	}
	if rec.Value != inventory.PlaceholderValue {
		t.Errorf("value = %d, want placeholder %d", rec.Value, inventory.PlaceholderValue)
	}
	if rec.Date != "2026-03-15" {
		t.Errorf("date = %s, want the folder date 2026-03-15", rec.Date)
	}
	if rec.Folder != "2026-03-15" {
		t.Errorf("folder = %s, want 2026-03-15", rec.Folder)
	}
	if rec.FileSize == 0 {
		t.Error("file size should come from the artifact stat")
	}
}

func TestScanRecoversAmendments(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "2026-03-16", "amendment_ab12cd34_no2_20260316_110000.pdf")

	records, err := sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if !rec.IsAmendment {
		t.Error("record should be marked as an amendment")
	}
	if rec.ID != "ab12cd34" || rec.BaseContractID != "ab12cd34" {
		t.Errorf("amendment ids = (%s, %s), want (ab12cd34, ab12cd34)", rec.ID, rec.BaseContractID)
	}
	if rec.Type != "Amendment" {
		t.Errorf("type = %s, want Amendment", rec.Type)
	}
}

func TestScanUnknownTypeCode(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "2026-03-15", "contract_xyz_20260315_103000_ab12.pdf")

	records, err := sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Type != string(contracts.Unknown) {
		t.Errorf("type = %s, want %s", records[0].Type, contracts.Unknown)
	}
}

func TestScanStampFolderDate(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "20260314_093000", "contract_csa_20260314_093000_cd34.pdf")

	records, err := sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if records[0].Date != "2026-03-14" {
		t.Errorf("date = %s, want 2026-03-14 from the batch stamp folder", records[0].Date)
	}
}

func TestScanFallbackDateFromModTime(t *testing.T) {
	sys, v := newInventory(t)
	path := seed(t, v, "misc", "contract_sla_20260315_103000_ef56.pdf")

	stamp := time.Date(2025, time.December, 24, 8, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	records, err := sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if records[0].Date != "2025-12-24" {
		t.Errorf("date = %s, want the modified time 2025-12-24", records[0].Date)
	}
}

func TestScanSkipsUnrecognizedFiles(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "2026-03-15", "contract_sla_20260315_103000_ab12.pdf")
	seed(t, v, "2026-03-15", "notes.txt")
	seed(t, v, "2026-03-15", "report.pdf")
	seed(t, v, "2026-03-15", "contract_sla.pdf")

	records, err := sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1 with malformed names skipped", len(records))
	}
}

func TestScanNewestFirst(t *testing.T) {
	sys, v := newInventory(t)
	older := seed(t, v, "2026-03-14", "contract_sla_20260314_090000_aa11.pdf")
	seed(t, v, "2026-03-15", "contract_csa_20260315_090000_bb22.pdf")

	old := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	if err := os.Chtimes(older, old, old); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	records, err := sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "bb22" || records[1].ID != "aa11" {
		t.Errorf("order = [%s, %s], want newest modified first [bb22, aa11]", records[0].ID, records[1].ID)
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "2026-03-15", "contract_sla_20260315_100000_aa11.pdf")
	seed(t, v, "2026-03-15", "contract_csa_20260315_110000_bb22.pdf")
	seed(t, v, "2026-03-16", "amendment_aa11_no1_20260316_090000.pdf")

	page := pagination.PageRequest{Page: 1, PageSize: 10}

	result, err := sys.List(context.Background(), page, inventory.Filters{
		Type: string(contracts.SoftwareLicense),
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Total != 1 || result.Data[0].ID != "aa11" {
		t.Errorf("type filter: total = %d, want 1 sla record", result.Total)
	}

	amendments := true
	result, err = sys.List(context.Background(), page, inventory.Filters{Amendments: &amendments})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Total != 1 || !result.Data[0].IsAmendment {
		t.Errorf("amendments filter: total = %d, want 1 amendment", result.Total)
	}

	result, err = sys.List(context.Background(), page, inventory.Filters{Folder: "2026-03-15"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("folder filter: total = %d, want 2", result.Total)
	}
}

func TestListSearch(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "2026-03-15", "contract_sla_20260315_100000_aa11.pdf")
	seed(t, v, "2026-03-15", "contract_csa_20260315_110000_bb22.pdf")

	search := "cloud"
	page := pagination.PageRequest{Page: 1, PageSize: 10, Search: &search}

	result, err := sys.List(context.Background(), page, inventory.Filters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Total != 1 || result.Data[0].ID != "bb22" {
		t.Errorf("search: total = %d, want the cloud services record", result.Total)
	}
}

func TestListSort(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "2026-03-15", "contract_sla_20260315_100000_aa11.pdf")
	seed(t, v, "2026-03-15", "contract_csa_20260315_110000_bb22.pdf")

	page := pagination.PageRequest{
		Page:     1,
		PageSize: 10,
		Sort:     pagination.SortFields{{Field: "type", Descending: false}},
	}

	result, err := sys.List(context.Background(), page, inventory.Filters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Data[0].Type != string(contracts.CloudServices) {
		t.Errorf("first sorted type = %s, want %s", result.Data[0].Type, contracts.CloudServices)
	}
}

func TestOpenRelativePath(t *testing.T) {
	sys, v := newInventory(t)
	path := seed(t, v, "2026-03-15", "contract_sla_20260315_100000_aa11.pdf")

	rel, err := filepath.Rel(v.Root(), path)
	if err != nil {
		t.Fatalf("rel path: %v", err)
	}

	f, err := sys.Open(context.Background(), rel)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", rel, err)
	}
	f.Close()
}

func TestDeleteFolderAndPurge(t *testing.T) {
	sys, v := newInventory(t)
	seed(t, v, "2026-03-15", "contract_sla_20260315_100000_aa11.pdf")
	seed(t, v, "2026-03-16", "contract_csa_20260316_100000_bb22.pdf")

	if err := sys.DeleteFolder(context.Background(), "2026-03-15"); err != nil {
		t.Fatalf("DeleteFolder failed: %v", err)
	}

	records, err := sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records after folder delete, want 1", len(records))
	}

	if err := sys.Purge(context.Background()); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	records, err = sys.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records after purge, want 0", len(records))
	}
}
