package api

import (
	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/pkg/openapi"
)

// buildSpec assembles the OpenAPI document describing the API surface.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"ContractRecord": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":               {Type: "string", Example: "3f2a9b1c"},
				"name":             {Type: "string"},
				"type":             {Type: "string", Example: "Software License Agreement"},
				"vendor":           {Type: "string"},
				"value":            {Type: "integer", Description: "Contract value in whole dollars"},
				"date":             {Type: "string", Format: "date"},
				"filename":         {Type: "string"},
				"path":             {Type: "string"},
				"issues":           {Type: "integer", Description: "Count of flagged clauses"},
				"file_size":        {Type: "integer"},
				"modified":         {Type: "string", Format: "date-time"},
				"folder":           {Type: "string"},
				"is_amendment":     {Type: "boolean"},
				"base_contract_id": {Type: "string"},
			},
		},
		"RiskFactors": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"uncapped_fees":    {Type: "boolean"},
				"low_liability":    {Type: "boolean"},
				"data_sovereignty": {Type: "boolean"},
				"asymmetric_terms": {Type: "boolean"},
				"ip_issues":        {Type: "boolean"},
				"warranty_gaps":    {Type: "boolean"},
			},
		},
		"GenerateRequest": {
			Type:     "object",
			Required: []string{"type"},
			Properties: map[string]*openapi.Schema{
				"type":       {Type: "string", Example: "Software License Agreement"},
				"vendor":     {Type: "string"},
				"value":      {Type: "integer"},
				"term_years": {Type: "integer", Default: 3},
				"complexity": {Type: "string", Enum: []any{"minimal", "standard", "detailed", "comprehensive"}},
				"risks":      openapi.SchemaRef("RiskFactors"),
				"folder":     {Type: "string", Description: "Override destination folder"},
			},
		},
		"BatchRequest": {
			Type:     "object",
			Required: []string{"count"},
			Properties: map[string]*openapi.Schema{
				"count":      {Type: "integer"},
				"types":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"vendors":    {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"min_value":  {Type: "integer"},
				"max_value":  {Type: "integer"},
				"complexity": {Type: "string"},
				"risks":      openapi.SchemaRef("RiskFactors"),
			},
		},
		"BatchResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"requested": {Type: "integer"},
				"generated": {Type: "integer"},
				"failed":    {Type: "integer"},
				"results": {
					Type: "array",
					Items: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"record": openapi.SchemaRef("ContractRecord"),
							"error":  {Type: "string"},
						},
					},
				},
			},
		},
		"AmendmentRequest": {
			Type:     "object",
			Required: []string{"base"},
			Properties: map[string]*openapi.Schema{
				"base":   openapi.SchemaRef("ContractRecord"),
				"number": {Type: "integer", Default: 1},
				"changes": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"pricing":              {Type: "boolean"},
						"new_value":            {Type: "integer"},
						"term_extension":       {Type: "integer"},
						"services_description": {Type: "string"},
						"liability":            {Type: "boolean"},
						"termination":          {Type: "boolean"},
						"audit_rights":         {Type: "boolean"},
					},
				},
			},
		},
		"ContractPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("ContractRecord")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"DatasetSample": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"columns": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"total":   {Type: "integer"},
				"rows": {
					Type:  "array",
					Items: &openapi.Schema{Type: "object", AdditionalProperties: &openapi.Schema{Type: "string"}},
				},
			},
		},
		"ExportResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"folder":   {Type: "string"},
				"uploaded": {Type: "integer"},
				"keys":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
	})

	spec.Paths["/contracts"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate a contract",
			Tags:        []string{"contracts"},
			RequestBody: openapi.RequestBodyJSON("GenerateRequest", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Generated contract record", "ContractRecord"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/contracts/batch"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate a batch of contracts",
			Tags:        []string{"contracts"},
			RequestBody: openapi.RequestBodyJSON("BatchRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Batch outcome with per-item results", "BatchResponse"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/amendments"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate an amendment to an existing contract",
			Tags:        []string{"contracts"},
			RequestBody: openapi.RequestBodyJSON("AmendmentRequest", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Generated amendment record", "ContractRecord"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/inventory"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List generated documents",
			Tags:    []string{"inventory"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("search", "string", "Match against id, name, type, vendor, filename, or folder", false),
				openapi.QueryParam("sort", "string", "Comma-separated sort fields, - prefix for descending", false),
				openapi.QueryParam("type", "string", "Filter by contract type", false),
				openapi.QueryParam("folder", "string", "Filter by folder", false),
				openapi.QueryParam("amendments", "boolean", "Filter amendments in or out", false),
				openapi.QueryParam("min_file_size", "integer", "Minimum file size in bytes", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated document records", "ContractPage"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
		Delete: &openapi.Operation{
			Summary: "Delete all generated documents",
			Tags:    []string{"inventory"},
			Responses: map[int]*openapi.Response{
				204: {Description: "All documents removed"},
			},
		},
	}

	spec.Paths["/inventory/download/{path}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Download a document",
			Tags:       []string{"inventory"},
			Parameters: []*openapi.Parameter{openapi.PathParam("path", "Document path relative to the vault root")},
			Responses: map[int]*openapi.Response{
				200: {Description: "PDF document"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/inventory/files/{path}"] = &openapi.PathItem{
		Delete: &openapi.Operation{
			Summary:    "Delete a document",
			Tags:       []string{"inventory"},
			Parameters: []*openapi.Parameter{openapi.PathParam("path", "Document path relative to the vault root")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Document removed"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/inventory/folders/{name}"] = &openapi.PathItem{
		Delete: &openapi.Operation{
			Summary:    "Delete a folder and its documents",
			Tags:       []string{"inventory"},
			Parameters: []*openapi.Parameter{openapi.PathParam("name", "Folder name")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Folder removed"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/dataset"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Inspect the loaded reference corpus",
			Tags:    []string{"dataset"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Corpus columns and rows", "DatasetSample"),
			},
		},
	}

	spec.Paths["/export/{folder}"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Mirror a folder to blob storage",
			Tags:       []string{"export"},
			Parameters: []*openapi.Parameter{openapi.PathParam("folder", "Folder name")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Upload outcome", "ExportResult"),
				404: openapi.ResponseRef("NotFound"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	return spec
}
