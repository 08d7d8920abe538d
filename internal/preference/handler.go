package preference

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/nashbilliard/billsplit/internal/i18n"
	"github.com/nashbilliard/billsplit/pkg/middleware"
	"github.com/nashbilliard/billsplit/pkg/response"
)

// Handler handles HTTP requests for the display preference
type Handler struct {
	service *Service
}

// NewHandler creates a new preference handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for preference endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/theme", h.GetTheme)
	r.Put("/theme", h.UpdateTheme)
	r.Post("/theme/toggle", h.ToggleTheme)
	r.Delete("/theme", h.ResetTheme)

	return r
}

// GetTheme handles GET /preferences/theme
// @Summary      Get the display theme
// @Tags         preferences
// @Produce      json
// @Param        lang query string false "Display language" Enums(en, vi)
// @Success      200 {object} response.APIResponse{data=ThemeResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /preferences/theme [get]
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	dark, err := h.service.DarkMode(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load theme")
		return
	}

	response.JSON(w, http.StatusOK, themeResponse(r, dark))
}

// UpdateTheme handles PUT /preferences/theme
// @Summary      Save the display theme
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        request body UpdateThemeRequest true "Theme"
// @Success      200 {object} response.APIResponse{data=ThemeResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      500 {object} response.APIResponse
// @Router       /preferences/theme [put]
func (h *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	var dark bool
	switch {
	case req.DarkMode != nil:
		dark = *req.DarkMode
	case req.Theme != "":
		theme, err := ParseTheme(req.Theme)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}
		dark = theme.IsDark()
	default:
		response.BadRequest(w, "dark_mode or theme is required")
		return
	}

	if err := h.service.SetDarkMode(r.Context(), dark); err != nil {
		response.InternalError(w, "Failed to save theme")
		return
	}

	response.JSON(w, http.StatusOK, themeResponse(r, dark))
}

// ToggleTheme handles POST /preferences/theme/toggle
// @Summary      Flip between dark and light
// @Tags         preferences
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ThemeResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /preferences/theme/toggle [post]
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	dark, err := h.service.Toggle(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to toggle theme")
		return
	}

	response.JSON(w, http.StatusOK, themeResponse(r, dark))
}

// ResetTheme handles DELETE /preferences/theme
// @Summary      Forget the saved theme
// @Tags         preferences
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ThemeResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /preferences/theme [delete]
func (h *Handler) ResetTheme(w http.ResponseWriter, r *http.Request) {
	dark, err := h.service.Reset(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to reset theme")
		return
	}

	response.JSON(w, http.StatusOK, themeResponse(r, dark))
}

func themeResponse(r *http.Request, dark bool) *ThemeResponse {
	tag, ok := middleware.GetLocale(r.Context())
	if !ok {
		tag = language.English
	}

	label := i18n.LabelLightMode
	if dark {
		label = i18n.LabelDarkMode
	}

	return &ThemeResponse{
		DarkMode: dark,
		Theme:    ThemeFor(dark),
		Label:    i18n.New(tag).Text(label),
	}
}
