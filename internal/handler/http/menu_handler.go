package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramenku/ramenku/internal/catalog"
)

type MenuHandler struct {
	menu *catalog.Catalog
}

func NewMenuHandler(menu *catalog.Catalog) *MenuHandler {
	return &MenuHandler{menu: menu}
}

func (h *MenuHandler) RegisterRoutes(router chi.Router) {
	router.Get("/menu", h.handleListMenu)
	router.Get("/menu/{id}", h.handleGetMenuEntry)
}

type MenuResponse struct {
	Entries    []catalog.MenuEntry `json:"entries"`
	Categories []string            `json:"categories"`
}

func (h *MenuHandler) handleListMenu(w http.ResponseWriter, r *http.Request) {
	entries := h.menu.Entries()

	// "All" is the UI's pseudo-category, same as no filter.
	if category := r.URL.Query().Get("category"); category != "" && category != "All" {
		filtered := make([]catalog.MenuEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.Category == category {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	respondWithJSON(w, http.StatusOK, MenuResponse{
		Entries:    entries,
		Categories: h.menu.Categories(),
	})
}

func (h *MenuHandler) handleGetMenuEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.menu.ByID(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusNotFound, "Menu entry not found")
		return
	}
	respondWithJSON(w, http.StatusOK, entry)
}
