package bill

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/nashbilliard/billsplit/internal/allocation"
	"github.com/nashbilliard/billsplit/internal/i18n"
	"github.com/nashbilliard/billsplit/pkg/middleware"
	"github.com/nashbilliard/billsplit/pkg/response"
)

// Handler handles HTTP requests for bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/template", h.Template)
	r.Post("/backfill", h.Backfill)
	r.Post("/summary", h.Summarize)

	return r
}

// Template handles GET /bills/template
// @Summary      Get a blank bill
// @Description  Returns a bill for the configured roster and consumable catalog with nobody participating
// @Tags         bills
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Bill}
// @Router       /bills/template [get]
func (h *Handler) Template(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Template())
}

// Backfill handles POST /bills/backfill
// @Summary      Apply session-window defaults
// @Description  Copies the session start/end into empty times of participating players
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body Bill true "Bill state"
// @Success      200 {object} response.APIResponse{data=Bill}
// @Failure      400 {object} response.APIResponse
// @Router       /bills/backfill [post]
func (h *Handler) Backfill(w http.ResponseWriter, r *http.Request) {
	var req Bill
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	response.JSON(w, http.StatusOK, h.service.Backfill(&req))
}

// Summarize handles POST /bills/summary
// @Summary      Split a bill
// @Description  Computes each participating player's share using the OWNED or CATALOG policy
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        policy query string false "Allocation policy" Enums(OWNED, CATALOG)
// @Param        lang query string false "Display language" Enums(en, vi)
// @Param        request body Bill true "Bill state"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bills/summary [post]
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req Bill
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	summary, err := h.service.Summarize(r.Context(), &req, r.URL.Query().Get("policy"))
	if err != nil {
		if errors.Is(err, ErrInvalidBill) || errors.Is(err, allocation.ErrUnknownPolicy) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to summarize bill")
		return
	}

	tag, ok := middleware.GetLocale(r.Context())
	if !ok {
		tag = language.English
	}

	t := i18n.New(tag)
	response.JSONWithMeta(w, http.StatusOK, summary.ToResponse(t), &response.Meta{
		Locale: t.Lang(),
		Policy: string(summary.Policy),
	})
}
