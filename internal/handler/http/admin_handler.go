package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/admin"
	"github.com/ramenku/ramenku/internal/order"
)

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AdminHandler struct {
	admin    admin.Service
	validate *validator.Validate
}

func NewAdminHandler(adminService admin.Service) *AdminHandler {
	return &AdminHandler{admin: adminService, validate: validator.New()}
}

// Routes are mounted under /admin behind the session and admin middleware.
func (h *AdminHandler) RegisterRoutes(router chi.Router) {
	router.Get("/orders", h.handleListOrders)
	router.Patch("/orders/{userID}/{orderID}/status", h.handleSetStatus)
	router.Get("/stats", h.handleStats)
}

func (h *AdminHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	var (
		orders []order.Order
		err    error
	)

	if status := r.URL.Query().Get("status"); status != "" && status != "all" {
		orders, err = h.admin.ListByStatus(r.Context(), order.Status(status))
	} else {
		orders, err = h.admin.ListAll(r.Context())
	}
	if err != nil {
		if errors.Is(err, order.ErrUnknownStatus) {
			respondWithError(w, http.StatusBadRequest, "Unknown status filter")
			return
		}
		log.Error().Err(err).Msg("Failed to list all orders")
		respondWithError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.FromString(chi.URLParam(r, "userID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user id parameter")
		return
	}
	orderID, err := uuid.FromString(chi.URLParam(r, "orderID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order id parameter")
		return
	}

	var requestPayload SetStatusRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("Failed to decode set-status request")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidation(w, err)
		return
	}

	err = h.admin.SetStatus(r.Context(), orderID, userID, order.Status(requestPayload.Status))
	if err != nil {
		var clientMessage string
		switch {
		case errors.Is(err, order.ErrUnknownStatus):
			clientMessage = "Unknown status"
		case errors.Is(err, order.ErrInvalidStatusTransition):
			clientMessage = "Status transition not allowed"
		default:
			log.Error().Err(err).Msg("Failed to update order status")
			clientMessage = "Failed to update order status"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Statistics(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute statistics")
		respondWithError(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
