// internal/api/handlers/detail.go
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/render"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/services"
	"github.com/artesfox/santo-grial-inmobiliaria-free/pkg/logger"
)

type DetailHandler struct {
	detailService *services.DetailService
	renderer      *render.Renderer
	log           *logger.Logger
}

func NewDetailHandler(svc *services.DetailService, r *render.Renderer, log *logger.Logger) *DetailHandler {
	return &DetailHandler{detailService: svc, renderer: r, log: log}
}

// HandleDetail resolve ?id=X para o documento de uma propriedade.
// Sem id → 400; id sem fila correspondente → 404 citando o id.
func (h *DetailHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Error: No se proporcionó un ID de propiedad.", http.StatusBadRequest)
		return
	}

	detail, err := h.detailService.FindByID(r.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		http.Error(w, fmt.Sprintf("Propiedad con ID %s no encontrada en el sistema.", id), http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("detalhe:", err)
		http.Error(w, "Error técnico al conectar con los datos: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Detail(&buf, detail); err != nil {
		h.log.Error("render do detalhe:", err)
		http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Write(buf.Bytes())
}
