package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/cart"
	"github.com/ramenku/ramenku/internal/catalog"
)

type AddItemRequest struct {
	MenuID     string   `json:"menuId" validate:"required"`
	Quantity   int      `json:"quantity" validate:"required,min=1"`
	SpiceLevel string   `json:"spiceLevel" validate:"required"`
	ToppingIDs []string `json:"toppingIds"`
	Notes      string   `json:"notes"`
}

type CartResponse struct {
	Items []cart.LineItem `json:"items"`
	Total int64           `json:"total"`
}

type CartHandler struct {
	menu     *catalog.Catalog
	carts    *cart.Registry
	validate *validator.Validate
}

func NewCartHandler(menu *catalog.Catalog, carts *cart.Registry) *CartHandler {
	return &CartHandler{menu: menu, carts: carts, validate: validator.New()}
}

// Routes assume the session middleware has already run.
func (h *CartHandler) RegisterRoutes(router chi.Router) {
	router.Get("/cart", h.handleViewCart)
	router.Post("/cart/items", h.handleAddItem)
	router.Delete("/cart/items/{index}", h.handleRemoveItem)
}

func (h *CartHandler) handleViewCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	ledger := h.carts.For(sess.ID)
	respondWithJSON(w, http.StatusOK, CartResponse{Items: ledger.Items(), Total: ledger.Total()})
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	var requestPayload AddItemRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("Failed to decode add-item request")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidation(w, err)
		return
	}

	entry, found := h.menu.ByID(requestPayload.MenuID)
	if !found {
		respondWithError(w, http.StatusNotFound, "Menu entry not found")
		return
	}

	item, err := cart.NewLineItem(entry, requestPayload.Quantity, requestPayload.SpiceLevel, requestPayload.ToppingIDs, requestPayload.Notes)
	if err != nil {
		respondWithError(w, mapErrorToStatusCode(err), "Invalid item configuration")
		return
	}

	ledger := h.carts.For(sess.ID)
	ledger.Add(item)

	respondWithJSON(w, http.StatusCreated, CartResponse{Items: ledger.Items(), Total: ledger.Total()})
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid index parameter")
		return
	}

	// Out-of-range indexes are ignored, so removal always "succeeds".
	h.carts.For(sess.ID).Remove(index)
	w.WriteHeader(http.StatusNoContent)
}
