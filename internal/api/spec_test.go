package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/internal/dataset"
	"github.com/draftforge/draftforge/pkg/openapi"
)

func testConfig() *config.Config {
	cfg := &config.Config{Version: "1.0.0"}
	cfg.API.BasePath = "/api"
	cfg.API.OpenAPI.Title = "DraftForge API"
	cfg.API.OpenAPI.Description = "Synthetic contract generation"
	return cfg
}

func TestBuildSpecMarshals(t *testing.T) {
	spec := buildSpec(testConfig())

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("spec is not valid JSON: %v", err)
	}
	if doc["openapi"] != "3.1.0" {
		t.Errorf("openapi version = %v, want 3.1.0", doc["openapi"])
	}
}

func TestBuildSpecPaths(t *testing.T) {
	spec := buildSpec(testConfig())

	paths := []string{
		"/contracts",
		"/contracts/batch",
		"/amendments",
		"/inventory",
		"/inventory/download/{path}",
		"/inventory/files/{path}",
		"/inventory/folders/{name}",
		"/dataset",
		"/export/{folder}",
	}
	for _, p := range paths {
		if spec.Paths[p] == nil {
			t.Errorf("spec is missing path %s", p)
		}
	}
	if len(spec.Paths) != len(paths) {
		t.Errorf("spec has %d paths, want %d", len(spec.Paths), len(paths))
	}
}

func TestBuildSpecSchemas(t *testing.T) {
	spec := buildSpec(testConfig())

	for _, name := range []string{
		"ContractRecord",
		"RiskFactors",
		"GenerateRequest",
		"BatchRequest",
		"BatchResponse",
		"AmendmentRequest",
		"ContractPage",
		"DatasetSample",
		"ExportResult",
	} {
		if spec.Components.Schemas[name] == nil {
			t.Errorf("spec is missing schema %s", name)
		}
	}

	record := spec.Components.Schemas["ContractRecord"]
	for _, field := range []string{"id", "type", "value", "issues", "is_amendment", "base_contract_id"} {
		if record.Properties[field] == nil {
			t.Errorf("ContractRecord is missing property %s", field)
		}
	}

	export := spec.Paths["/export/{folder}"].Post
	if export.Responses[503] == nil {
		t.Error("export operation should document the 503 disabled-target response")
	}
}

func TestDatasetHandler(t *testing.T) {
	corpus := &dataset.Corpus{
		Columns: []string{"Filename", "Parties"},
		Rows:    []map[string]string{{"Filename": "a.pdf", "Parties": "Acme v Globex"}},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dataset", nil)
	datasetHandler(corpus)(rec, req)

	var resp datasetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Total != 1 || len(resp.Columns) != 2 {
		t.Errorf("response = (%d rows, %d columns), want (1, 2)", resp.Total, len(resp.Columns))
	}
}

func TestDatasetHandlerEmptyCorpus(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dataset", nil)
	datasetHandler(&dataset.Corpus{})(rec, req)

	var resp datasetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Rows == nil || resp.Columns == nil {
		t.Error("empty corpus should serialize as empty arrays, not null")
	}
}
