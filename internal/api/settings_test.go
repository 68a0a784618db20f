package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spellgo/pkg/game"
)

type memState struct {
	values map[string]string
}

func newMemState() *memState {
	return &memState{values: make(map[string]string)}
}

func (m *memState) GetState(ctx context.Context, key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memState) SetState(ctx context.Context, key, val string) error {
	m.values[key] = val
	return nil
}

func (m *memState) DeleteState(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func TestHandleSettingsUpdate(t *testing.T) {
	_, mgr := newTestGameHandler()
	st := newMemState()
	h := NewSettingsHandler(mgr, st)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"questions": 15}`)
	h.HandleSettings(rec, httptest.NewRequest(http.MethodPut, "/api/settings", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var settings game.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("Failed to decode settings: %v", err)
	}
	if settings.Questions != 15 {
		t.Errorf("Expected 15 questions, got %d", settings.Questions)
	}
	// Unset fields keep their previous values.
	if settings.Source != "builtin" {
		t.Errorf("Expected source preserved, got %q", settings.Source)
	}

	if _, ok := st.values[settingsStateKey]; !ok {
		t.Error("Expected settings persisted to the state store")
	}
}

func TestHandleSettingsRejectsInvalid(t *testing.T) {
	_, mgr := newTestGameHandler()
	h := NewSettingsHandler(mgr, newMemState())

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"questions": 0}`)
	h.HandleSettings(rec, httptest.NewRequest(http.MethodPut, "/api/settings", body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid settings, got %d", rec.Code)
	}
}

func TestRestoreSettings(t *testing.T) {
	defaults := game.Settings{
		Questions:     10,
		MinWordLength: 5,
		MaxWordLength: 7,
		Source:        "builtin",
		VoiceID:       "en-GB-SoniaNeural",
	}

	st := newMemState()
	if got := RestoreSettings(context.Background(), st, defaults); got != defaults {
		t.Errorf("Expected defaults when nothing persisted, got %+v", got)
	}

	st.values[settingsStateKey] = `{"questions": 20, "min_word_length": 4, "max_word_length": 8, "source": "wordset", "voice_id": "en-GB-RyanNeural"}`
	got := RestoreSettings(context.Background(), st, defaults)
	if got.Questions != 20 || got.Source != "wordset" {
		t.Errorf("Expected persisted settings, got %+v", got)
	}

	st.values[settingsStateKey] = `{"questions": -1}`
	if got := RestoreSettings(context.Background(), st, defaults); got != defaults {
		t.Errorf("Expected defaults for invalid persisted settings, got %+v", got)
	}

	st.values[settingsStateKey] = `garbage`
	if got := RestoreSettings(context.Background(), st, defaults); got != defaults {
		t.Errorf("Expected defaults for malformed persisted settings, got %+v", got)
	}
}
