package game

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"spellgo/pkg/model"
	"spellgo/pkg/store"
)

// WordSource supplies quiz words filtered by length.
type WordSource interface {
	WordsByLength(minLen, maxLen int) map[string]string
	Reload(source string) error
	Source() string
}

// Settings control a quiz round.
type Settings struct {
	Questions     int    `json:"questions"`
	MinWordLength int    `json:"min_word_length"`
	MaxWordLength int    `json:"max_word_length"`
	Source        string `json:"source"`
	VoiceID       string `json:"voice_id"`
}

// Validate checks the settings against the same rules the config uses.
func (s Settings) Validate() error {
	if s.Questions < 1 {
		return fmt.Errorf("questions must be at least 1")
	}
	if s.MinWordLength < 1 || s.MaxWordLength < s.MinWordLength {
		return fmt.Errorf("invalid word length range %d-%d", s.MinWordLength, s.MaxWordLength)
	}
	if s.Source != "builtin" && s.Source != "wordset" {
		return fmt.Errorf("unknown dictionary source %q", s.Source)
	}
	return nil
}

// AnswerResult is what the API returns after an answer or skip.
type AnswerResult struct {
	Correct bool   `json:"correct"`
	Done    bool   `json:"done"`
	Word    string `json:"word"`
	Score   int    `json:"score"`
	Total   int    `json:"total"`
}

// Manager owns the active session and persists finished games.
type Manager struct {
	words   WordSource
	history store.HistoryStore
	speaker Speaker
	logPath string

	mu       sync.Mutex
	settings Settings
	session  *Session
}

// NewManager creates a game manager.
func NewManager(words WordSource, history store.HistoryStore, speaker Speaker, settings Settings, logPath string) *Manager {
	return &Manager{
		words:    words,
		history:  history,
		speaker:  speaker,
		settings: settings,
		logPath:  logPath,
	}
}

// Settings returns the current quiz settings.
func (m *Manager) Settings() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// UpdateSettings replaces the quiz settings. Takes effect on the next game.
func (m *Manager) UpdateSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	m.settings = s
	m.mu.Unlock()

	if m.words.Source() != s.Source {
		if err := m.words.Reload(s.Source); err != nil {
			return fmt.Errorf("failed to switch dictionary: %w", err)
		}
	}
	return nil
}

// Start begins a new game, replacing any game in progress.
func (m *Manager) Start() error {
	m.mu.Lock()
	settings := m.settings
	m.mu.Unlock()

	pool := m.words.WordsByLength(settings.MinWordLength, settings.MaxWordLength)
	session, err := NewSession(pool, settings.Questions, m.speaker)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.session = session
	m.mu.Unlock()

	slog.Info("Game started", "questions", len(session.questions),
		"min_length", settings.MinWordLength, "max_length", settings.MaxWordLength,
		"source", m.words.Source())
	return nil
}

// State returns the active session's snapshot.
func (m *Manager) State() (SessionState, error) {
	session, err := m.active()
	if err != nil {
		return SessionState{}, err
	}
	return session.State(), nil
}

// Answer submits a spelling attempt for the current word.
func (m *Manager) Answer(answer string) (AnswerResult, error) {
	session, err := m.active()
	if err != nil {
		return AnswerResult{}, err
	}

	res, done, err := session.Submit(answer)
	if err != nil {
		return AnswerResult{}, err
	}
	// Only the call that advanced past the last question sees done.
	if done {
		m.finish(session)
	}
	return AnswerResult{
		Correct: res.Correct,
		Done:    done,
		Word:    res.Word,
		Score:   session.Score(),
		Total:   len(session.questions),
	}, nil
}

// Skip gives up on the current word.
func (m *Manager) Skip(answer string) (AnswerResult, error) {
	session, err := m.active()
	if err != nil {
		return AnswerResult{}, err
	}

	res, done, err := session.Skip(answer)
	if err != nil {
		return AnswerResult{}, err
	}
	if done {
		m.finish(session)
	}
	return AnswerResult{
		Correct: false,
		Done:    done,
		Word:    res.Word,
		Score:   session.Score(),
		Total:   len(session.questions),
	}, nil
}

// Replay speaks the current word again.
func (m *Manager) Replay() error {
	session, err := m.active()
	if err != nil {
		return err
	}
	session.Replay()
	return nil
}

// SpeakDefinition speaks the current word's definition.
func (m *Manager) SpeakDefinition() error {
	session, err := m.active()
	if err != nil {
		return err
	}
	session.SpeakDefinition()
	return nil
}

// Results returns the per-word outcomes of the active session.
func (m *Manager) Results() ([]model.WordResult, error) {
	session, err := m.active()
	if err != nil {
		return nil, err
	}
	return session.Results(), nil
}

func (m *Manager) active() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, fmt.Errorf("no game in progress")
	}
	return m.session, nil
}

// finish persists a completed game and appends the plain-text game log.
func (m *Manager) finish(session *Session) {
	m.mu.Lock()
	settings := m.settings
	m.mu.Unlock()

	record := &model.GameRecord{
		ID:               uuid.NewString(),
		Score:            session.Score(),
		Questions:        len(session.questions),
		MinWordLength:    settings.MinWordLength,
		MaxWordLength:    settings.MaxWordLength,
		DictionarySource: settings.Source,
		FinishedAt:       time.Now(),
		Words:            session.Results(),
	}
	if m.history != nil {
		if err := m.history.SaveGame(context.Background(), record); err != nil {
			slog.Error("Failed to save game record", "error", err)
		}
	}
	m.appendGameLog(record)
	slog.Info("Game finished", "score", record.Score, "questions", record.Questions)
}

func (m *Manager) appendGameLog(record *model.GameRecord) {
	if m.logPath == "" {
		return
	}
	f, err := os.OpenFile(m.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("Failed to open game log", "path", m.logPath, "error", err)
		return
	}
	defer f.Close()

	line := fmt.Sprintf("%s - Score: %d/%d\n",
		record.FinishedAt.Format("2006-01-02 15:04:05"), record.Score, record.Questions)
	if _, err := f.WriteString(line); err != nil {
		slog.Error("Failed to write game log", "error", err)
	}
}
