// Package inventory recovers contract metadata from the vault by
// scanning artifact filenames and folder names. Fields the filename
// cannot carry (vendor, value, issues) take documented placeholders.
package inventory

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/vault"
)

// Placeholder values for metadata a filename cannot carry.
const (
	PlaceholderVendor = "Various"
	PlaceholderValue  = 0
	PlaceholderIssues = 0
)

// parseRecord recovers a metadata record from an artifact path. The
// second return is false for files that are not recognizable contract
// or amendment artifacts.
func parseRecord(root, path string, info fs.FileInfo) (contracts.Record, bool) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".pdf") {
		return contracts.Record{}, false
	}
	stem := strings.TrimSuffix(name, ".pdf")
	folder := filepath.Base(filepath.Dir(path))
	if folder == filepath.Base(root) {
		folder = ""
	}

	rec := contracts.Record{
		Vendor:   PlaceholderVendor,
		Value:    PlaceholderValue,
		Issues:   PlaceholderIssues,
		Filename: name,
		Path:     path,
		FileSize: info.Size(),
		Modified: info.ModTime(),
		Folder:   folder,
		Date:     recoverDate(folder, info.ModTime()),
	}

	switch {
	case strings.HasPrefix(stem, "amendment_"):
		// amendment_<baseid>_no<N>_<timestamp>
		parts := strings.Split(stem, "_")
		if len(parts) < 2 {
			return contracts.Record{}, false
		}
		rec.ID = parts[1]
		rec.Name = "Amendment " + strings.ToUpper(rec.ID)
		rec.Type = "Amendment"
		rec.IsAmendment = true
		rec.BaseContractID = parts[1]
		return rec, true

	case strings.HasPrefix(stem, "contract_"):
		// contract_<typeabbrev>_<timestamp>_<random4>; the timestamp
		// itself contains an underscore, so the id sits at index 3.
		parts := strings.Split(strings.TrimPrefix(stem, "contract_"), "_")
		if len(parts) < 4 {
			return contracts.Record{}, false
		}
		t, _ := contracts.TypeFromAbbrev(parts[0])
		rec.ID = parts[3]
		rec.Name = "Contract " + strings.ToUpper(rec.ID)
		rec.Type = string(t)
		return rec, true
	}

	return contracts.Record{}, false
}

// recoverDate derives an ISO date from the artifact's folder name,
// falling back to the file's modified time. Date folders carry the date
// directly; batch timestamp folders carry it in their leading segment.
func recoverDate(folder string, modified time.Time) string {
	if len(folder) == 10 && strings.Count(folder, "-") == 2 {
		if _, err := time.Parse(vault.DateLayout, folder); err == nil {
			return folder
		}
	}
	if len(folder) == 15 && strings.Contains(folder, "_") {
		if t, err := time.Parse(vault.StampLayout, folder); err == nil {
			return t.Format(vault.DateLayout)
		}
	}
	return modified.Format(vault.DateLayout)
}
