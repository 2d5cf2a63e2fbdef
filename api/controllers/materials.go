package controllers

import (
	"net/http"

	"github.com/signforge/signforge-backend/api/responses"
	"github.com/signforge/signforge-backend/internal/catalog"
	"github.com/signforge/signforge-backend/pkg/db/models"
	pkgerrors "github.com/signforge/signforge-backend/pkg/errors"
	"github.com/signforge/signforge-backend/pkg/logger"
)

// MaterialsList returns the active materials the configurator can offer.
func MaterialsList(cat catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		materials, err := cat.ListMaterials(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newMaterialsResponse(materials))
	}
}

type materialResponse struct {
	Name     string   `json:"name"`
	Family   string   `json:"family"`
	Keywords []string `json:"keywords,omitempty"`
}

func newMaterialsResponse(materials []models.Material) []materialResponse {
	out := make([]materialResponse, len(materials))
	for i, m := range materials {
		out[i] = materialResponse{
			Name:     m.Name,
			Family:   m.Family,
			Keywords: m.Keywords,
		}
	}
	return out
}
