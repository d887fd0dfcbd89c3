package api

import (
	"net/http"

	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/pkg/openapi"
	"github.com/draftforge/draftforge/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	routes.Register(
		mux,
		domain.Generator.Handler(runtime.Pagination).Routes(),
		domain.Inventory.Handler(runtime.Pagination).Routes(),
		domain.Export.Handler().Routes(),
	)

	mux.HandleFunc("GET /dataset", datasetHandler(domain.Dataset))

	specBytes, err := openapi.MarshalJSON(buildSpec(cfg))
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}
