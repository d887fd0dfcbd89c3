// Package dataset loads an optional reference corpus of real contract
// clause annotations for inspiration. The corpus is a large CSV; only a
// capped number of rows are read, and a missing file is not an error.
package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// MaxRows caps how many corpus rows are loaded.
const MaxRows = 100

// Corpus holds the loaded reference rows keyed by column name.
type Corpus struct {
	Columns []string
	Rows    []map[string]string
}

// Empty reports whether the corpus holds no rows.
func (c *Corpus) Empty() bool {
	return c == nil || len(c.Rows) == 0
}

// Load reads master_clauses.csv from dir. A missing file or directory
// yields an empty corpus, logged at debug level. A malformed file is an
// error.
func Load(dir string, logger *slog.Logger) (*Corpus, error) {
	path := filepath.Join(dir, "master_clauses.csv")

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("reference corpus absent", "path", path)
			return &Corpus{}, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Corpus{}, nil
		}
		return nil, err
	}

	corpus := &Corpus{Columns: header}
	for len(corpus.Rows) < MaxRows {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		corpus.Rows = append(corpus.Rows, row)
	}

	logger.Info("reference corpus loaded", "rows", len(corpus.Rows))
	return corpus, nil
}
