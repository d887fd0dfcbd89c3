package generator

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/handlers"
	"github.com/draftforge/draftforge/pkg/pagination"
	"github.com/draftforge/draftforge/pkg/routes"
)

// Handler provides HTTP endpoints for contract generation.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "generator"),
		pagination: pagination,
	}
}

// GenerateRequest is the JSON body for single contract generation.
type GenerateRequest struct {
	Type       string                `json:"type"`
	Vendor     string                `json:"vendor"`
	Value      int64                 `json:"value"`
	TermYears  int                   `json:"term_years"`
	Complexity string                `json:"complexity"`
	Risks      contracts.RiskFactors `json:"risks"`
	Folder     string                `json:"folder"`
}

// BatchRequest is the JSON body for batch generation.
type BatchRequest struct {
	Count      int                   `json:"count"`
	Types      []string              `json:"types"`
	Vendors    []string              `json:"vendors"`
	MinValue   int64                 `json:"min_value"`
	MaxValue   int64                 `json:"max_value"`
	Complexity string                `json:"complexity"`
	Risks      contracts.RiskFactors `json:"risks"`
}

// BatchResponse summarizes a batch run.
type BatchResponse struct {
	Requested int                     `json:"requested"`
	Generated int                     `json:"generated"`
	Failed    int                     `json:"failed"`
	Results   []contracts.BatchResult `json:"results"`
}

// Routes returns the route group definitions for generation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Children: []routes.Group{
			{
				Prefix: "/contracts",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: h.Generate},
					{Method: "POST", Pattern: "/batch", Handler: h.Batch},
				},
			},
			{
				Prefix: "/amendments",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: h.Amend},
				},
			},
		},
	}
}

// Generate produces a single contract and returns its metadata record.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, contracts.ErrInvalidConfig)
		return
	}

	t, ok := contracts.ParseType(req.Type)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, contracts.ErrUnknownType)
		return
	}
	complexity, _ := contracts.ParseComplexity(req.Complexity)

	rec, err := h.sys.Generate(r.Context(), contracts.GenerateConfig{
		Type:       t,
		Vendor:     req.Vendor,
		Value:      req.Value,
		TermYears:  req.TermYears,
		Complexity: complexity,
		Risks:      req.Risks,
		Folder:     req.Folder,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, contracts.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, rec)
}

// Batch produces multiple contracts in a shared timestamp folder.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, contracts.ErrInvalidConfig)
		return
	}

	var types []contracts.Type
	for _, s := range req.Types {
		t, ok := contracts.ParseType(s)
		if !ok {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, contracts.ErrUnknownType)
			return
		}
		types = append(types, t)
	}
	complexity, _ := contracts.ParseComplexity(req.Complexity)

	results, err := h.sys.GenerateBatch(r.Context(), contracts.BatchConfig{
		Count:      req.Count,
		Types:      types,
		Vendors:    req.Vendors,
		MinValue:   req.MinValue,
		MaxValue:   req.MaxValue,
		Complexity: complexity,
		Risks:      req.Risks,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, contracts.MapHTTPStatus(err), err)
		return
	}

	resp := BatchResponse{Requested: req.Count, Results: results}
	for _, res := range results {
		if res.Error == "" {
			resp.Generated++
		} else {
			resp.Failed++
		}
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Amend produces an amendment document against a base contract record.
func (h *Handler) Amend(w http.ResponseWriter, r *http.Request) {
	var cfg contracts.AmendmentConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, contracts.ErrInvalidConfig)
		return
	}

	rec, err := h.sys.GenerateAmendment(r.Context(), cfg)
	if err != nil {
		handlers.RespondError(w, h.logger, contracts.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, rec)
}
