package handler

import (
	"log/slog"
	"net/http"

	"github.com/campusevents/campus-events/internal/service"
)

// FavoriteHandler handles the instance-scoped favorites list.
type FavoriteHandler struct {
	favorites *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// HandleList returns the favorited event ids.
// GET /api/favorites
// Response: {"favorites":["...", ...]}
func (h *FavoriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favorites.List(r.Context())
	if err != nil {
		slog.Error("list favorites", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if favorites == nil {
		favorites = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"favorites": favorites})
}

// HandleToggle flips an event in or out of the favorites list.
// POST /api/favorites/{id}/toggle (authenticated)
// Response: {"favorites":["...", ...]}
func (h *FavoriteHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favorites.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.Error("toggle favorite", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if favorites == nil {
		favorites = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"favorites": favorites})
}
