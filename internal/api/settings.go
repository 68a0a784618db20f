package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"spellgo/pkg/game"
	"spellgo/pkg/store"
)

const settingsStateKey = "settings"

// SettingsHandler handles quiz settings API requests.
type SettingsHandler struct {
	games *game.Manager
	store store.StateStore
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(games *game.Manager, st store.StateStore) *SettingsHandler {
	return &SettingsHandler{games: games, store: st}
}

// HandleSettings is a unified handler for all settings methods.
func (h *SettingsHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, h.games.Settings())
	case http.MethodPut, http.MethodPost:
		h.handleUpdate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SettingsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	settings := h.games.Settings()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.games.UpdateSettings(settings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persist(r.Context(), settings)
	writeJSON(w, h.games.Settings())
}

func (h *SettingsHandler) persist(ctx context.Context, settings game.Settings) {
	if h.store == nil {
		return
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		slog.Error("Failed to marshal settings", "error", err)
		return
	}
	if err := h.store.SetState(ctx, settingsStateKey, string(raw)); err != nil {
		slog.Error("Failed to persist settings", "error", err)
	}
}

// RestoreSettings loads persisted settings from the state store, returning
// the defaults unchanged when nothing was saved yet.
func RestoreSettings(ctx context.Context, st store.StateStore, defaults game.Settings) game.Settings {
	if st == nil {
		return defaults
	}
	raw, ok := st.GetState(ctx, settingsStateKey)
	if !ok || raw == "" {
		return defaults
	}
	settings := defaults
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		slog.Warn("Ignoring malformed persisted settings", "error", err)
		return defaults
	}
	if err := settings.Validate(); err != nil {
		slog.Warn("Ignoring invalid persisted settings", "error", err)
		return defaults
	}
	return settings
}
