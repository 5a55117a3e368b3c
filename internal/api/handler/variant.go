package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/api/response"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/variant"
)

// VariantHandler handles variant catalogue endpoints
type VariantHandler struct {
	registry *variant.Registry
}

// NewVariantHandler creates a new variant handler
func NewVariantHandler(registry *variant.Registry) *VariantHandler {
	return &VariantHandler{registry: registry}
}

// List handles GET /api/v1/variants
func (h *VariantHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := response.ListVariantsResponse{Variants: h.registry.Names()}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/variants/{name}
func (h *VariantHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	rules, err := h.registry.Get(name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VariantRulesFromModel(rules))
}
