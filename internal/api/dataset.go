package api

import (
	"net/http"

	"github.com/draftforge/draftforge/internal/dataset"
	"github.com/draftforge/draftforge/pkg/handlers"
)

// datasetResponse exposes the loaded reference corpus for inspiration
// when composing generation requests.
type datasetResponse struct {
	Columns []string            `json:"columns"`
	Total   int                 `json:"total"`
	Rows    []map[string]string `json:"rows"`
}

func datasetHandler(corpus *dataset.Corpus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := datasetResponse{
			Columns: corpus.Columns,
			Total:   len(corpus.Rows),
			Rows:    corpus.Rows,
		}
		if resp.Columns == nil {
			resp.Columns = []string{}
		}
		if resp.Rows == nil {
			resp.Rows = []map[string]string{}
		}
		handlers.RespondJSON(w, http.StatusOK, resp)
	}
}
