package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"spellgo/pkg/game"
)

// GameHandler exposes the quiz flow over HTTP.
type GameHandler struct {
	games *game.Manager
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games *game.Manager) *GameHandler {
	return &GameHandler{games: games}
}

// AnswerRequest carries a spelling attempt.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// HandleStart handles POST /api/game/start
func (h *GameHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Start(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	state, err := h.games.State()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, state)
}

// HandleState handles GET /api/game/state
func (h *GameHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	state, err := h.games.State()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, state)
}

// HandleAnswer handles POST /api/game/answer
func (h *GameHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.games.Answer(req.Answer)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, result)
}

// HandleSkip handles POST /api/game/skip
func (h *GameHandler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	// Body is optional for skip, a missing partial answer is fine.
	_ = json.NewDecoder(r.Body).Decode(&req)

	result, err := h.games.Skip(req.Answer)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, result)
}

// HandleReplay handles POST /api/game/replay
func (h *GameHandler) HandleReplay(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Replay(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleDefinition handles POST /api/game/definition
func (h *GameHandler) HandleDefinition(w http.ResponseWriter, r *http.Request) {
	if err := h.games.SpeakDefinition(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleResults handles GET /api/game/results
func (h *GameHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.games.Results()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, results)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
