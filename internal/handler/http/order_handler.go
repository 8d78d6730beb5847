package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/cart"
	"github.com/ramenku/ramenku/internal/order"
)

type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type OrderHandler struct {
	checkout order.Service
	orders   *order.Ledger
	carts    *cart.Registry
	validate *validator.Validate
}

func NewOrderHandler(checkout order.Service, orders *order.Ledger, carts *cart.Registry) *OrderHandler {
	return &OrderHandler{checkout: checkout, orders: orders, carts: carts, validate: validator.New()}
}

// Routes assume the session middleware has already run.
func (h *OrderHandler) RegisterRoutes(router chi.Router) {
	router.Post("/checkout", h.handleCheckout)
	router.Get("/orders", h.handleListOrders)
}

func (h *OrderHandler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	var requestPayload CheckoutRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("Failed to decode checkout request")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidation(w, err)
		return
	}

	placed, err := h.checkout.Checkout(r.Context(), sess, h.carts.For(sess.ID), requestPayload.PaymentMethod)
	if err != nil {
		var clientMessage string
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			clientMessage = "Cart is empty"
		case errors.Is(err, order.ErrUnknownPaymentMethod):
			clientMessage = "Unknown payment method"
		default:
			log.Error().Err(err).Msg("Checkout failed")
			clientMessage = "Checkout failed"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusCreated, placed)
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	orders, err := h.orders.ListFor(r.Context(), sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list orders")
		respondWithError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}
