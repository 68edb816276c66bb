package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arus-retail/arus-retail/internal/platform/httpx"
)

// Handler wires catalog endpoints. The item list feeds unit defaults in the
// stock entry forms.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/items", h.list)
	r.Get("/items/{id}", h.show)
	r.Post("/items", h.create)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list items", slog.Any("error", err))
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

type createItemRequest struct {
	Name         string   `json:"name"`
	SaleType     SaleType `json:"sale_type"`
	WeightPerPCS *float64 `json:"weight_per_pcs,omitempty"`
	PricePerKG   *float64 `json:"price_per_kg,omitempty"`
	PricePerPCS  *float64 `json:"price_per_pcs,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	item, err := h.service.Create(r.Context(), CreateItemInput{
		Name:         req.Name,
		SaleType:     req.SaleType,
		WeightPerPCS: req.WeightPerPCS,
		PricePerKG:   req.PricePerKG,
		PricePerPCS:  req.PricePerPCS,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrDuplicateName):
		httpx.Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidSaleType),
		errors.Is(err, ErrWeightPerPCSRequired):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		httpx.RespondError(w, err)
	}
}
