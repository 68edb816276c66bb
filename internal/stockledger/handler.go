package stockledger

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/arus-retail/arus-retail/internal/platform/httpx"
)

// Handler wires stock ledger endpoints.
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
	r.Get("/entries", h.list)
	r.Post("/entries", h.create)
	r.Put("/entries/{id}", h.update)
	r.Delete("/entries/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	kind := Kind(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("kind"))))
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date query parameter required")
		return
	}
	entries, err := h.service.ListByDate(r.Context(), kind, date)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entries)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	entry, err := h.service.Create(r.Context(), req, actorFrom(r))
	if err != nil {
		h.logger.Warn("create stock entry", slog.Any("error", err))
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, entry)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateEntryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	entry, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), actorFrom(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEntryNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrInvalidKind),
		errors.Is(err, ErrInvalidUnit),
		errors.Is(err, ErrNegativeQty):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		httpx.RespondError(w, err)
	}
}

// actorFrom resolves the staff actor id from the X-Actor-ID header set by the
// front desk client. Authentication itself lives outside this service.
func actorFrom(r *http.Request) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get("X-Actor-ID")), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
