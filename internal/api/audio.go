package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"spellgo/pkg/audio"
	"spellgo/pkg/store"
)

// AudioHandler handles volume endpoints.
type AudioHandler struct {
	player audio.Player
	store  store.StateStore
}

// NewAudioHandler creates a new AudioHandler.
func NewAudioHandler(player audio.Player, st store.StateStore) *AudioHandler {
	return &AudioHandler{player: player, store: st}
}

// VolumeRequest represents a volume change request.
type VolumeRequest struct {
	Volume float64 `json:"volume"`
}

// HandleGetVolume handles GET /api/volume
func (h *AudioHandler) HandleGetVolume(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"volume": h.player.Volume()})
}

// HandleSetVolume handles POST /api/volume
func (h *AudioHandler) HandleSetVolume(w http.ResponseWriter, r *http.Request) {
	var req VolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Volume < 0 || req.Volume > 1 {
		http.Error(w, "volume must be between 0 and 1", http.StatusBadRequest)
		return
	}

	h.player.SetVolume(req.Volume)

	// Persist volume
	if h.store != nil {
		strVal := fmt.Sprintf("%.2f", req.Volume)
		if err := h.store.SetState(r.Context(), "volume", strVal); err != nil {
			slog.Error("Failed to persist volume", "error", err)
		}
	}

	writeJSON(w, map[string]any{
		"status": "ok",
		"volume": h.player.Volume(),
	})
}
