package api

import (
	"net/http"
	"strconv"

	"spellgo/pkg/store"
)

// HistoryHandler serves completed game records.
type HistoryHandler struct {
	history store.HistoryStore
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history store.HistoryStore) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HandleList handles GET /api/history
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = val
	}

	games, err := h.history.ListGames(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, games)
}
