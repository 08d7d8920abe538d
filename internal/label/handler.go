// Package label serves the localized display strings used by clients.
package label

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/nashbilliard/billsplit/internal/i18n"
	"github.com/nashbilliard/billsplit/pkg/middleware"
	"github.com/nashbilliard/billsplit/pkg/response"
)

// LabelsResponse maps each English label to its text in the negotiated language
type LabelsResponse struct {
	Locale    string            `json:"locale" example:"vi"`
	Supported []string          `json:"supported"`
	Labels    map[string]string `json:"labels"`
}

// Handler handles HTTP requests for display labels
type Handler struct {
	fallback language.Tag
}

// NewHandler creates a label handler; fallback is used when no locale was negotiated
func NewHandler(fallback language.Tag) *Handler {
	return &Handler{fallback: fallback}
}

// Routes returns the router for label endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}

// List handles GET /labels
// @Summary      List display labels
// @Description  Returns every display label translated into the language negotiated from Accept-Language or the lang query parameter
// @Tags         labels
// @Produce      json
// @Param        lang query string false "Display language" Enums(en, vi)
// @Success      200 {object} response.APIResponse{data=LabelsResponse}
// @Router       /labels [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tag, ok := middleware.GetLocale(r.Context())
	if !ok {
		tag = h.fallback
	}
	t := i18n.New(tag)

	supported := make([]string, len(i18n.Supported))
	for i, s := range i18n.Supported {
		supported[i] = s.String()
	}

	response.JSON(w, http.StatusOK, &LabelsResponse{
		Locale:    t.Lang(),
		Supported: supported,
		Labels:    t.All(),
	})
}
