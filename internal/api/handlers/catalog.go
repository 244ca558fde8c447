// internal/api/handlers/catalog.go
package handlers

import (
	"bytes"
	"net/http"

	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/render"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/services"
	"github.com/artesfox/santo-grial-inmobiliaria-free/pkg/logger"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	renderer       *render.Renderer
	log            *logger.Logger
}

func NewCatalogHandler(svc *services.CatalogService, r *render.Renderer, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: svc, renderer: r, log: log}
}

// HandleCatalog monta e devolve o documento do catálogo. Qualquer falha de
// fetch ou parse vira 500 com o detalhe do erro; nada é fatal para o processo.
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogService.BuildCatalog(r.Context())
	if err != nil {
		h.log.Error("catálogo:", err)
		http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Renderiza num buffer para não mandar meio documento com status 200.
	var buf bytes.Buffer
	if err := h.renderer.Catalog(&buf, catalog); err != nil {
		h.log.Error("render do catálogo:", err)
		http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Write(buf.Bytes())
}
