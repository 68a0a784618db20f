// Package game implements the spelling quiz session logic.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"spellgo/pkg/model"
)

// ErrGameFinished is returned by Submit and Skip once every question has
// been answered. Exactly one call observes the transition to done; any
// later call gets this error instead.
var ErrGameFinished = errors.New("game already finished")

// Speaker is the fire-and-forget speech interface the game talks to.
type Speaker interface {
	Speak(text string)
}

// Question pairs a quiz word with its dictionary definition.
type Question struct {
	Word       string
	Definition string
}

// SessionState is a snapshot of the running quiz for the API layer.
type SessionState struct {
	Number     int    `json:"number"`
	Total      int    `json:"total"`
	Score      int    `json:"score"`
	Done       bool   `json:"done"`
	Definition string `json:"definition"`
}

// Session is one quiz round: a shuffled list of questions answered in order.
type Session struct {
	mu        sync.Mutex
	questions []Question
	index     int
	score     int
	results   []model.WordResult
	speaker   Speaker
}

// NewSession picks up to count random words from the pool and speaks the
// first question.
func NewSession(words map[string]string, count int, speaker Speaker) (*Session, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("no words available for the configured length range")
	}
	if count < 1 {
		return nil, fmt.Errorf("question count must be at least 1")
	}

	questions := make([]Question, 0, len(words))
	for word, def := range words {
		questions = append(questions, Question{Word: word, Definition: def})
	}
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > count {
		questions = questions[:count]
	}

	s := &Session{
		questions: questions,
		speaker:   speaker,
	}
	s.speakCurrent()
	return s, nil
}

// Current returns the active question. ok is false once the quiz is done.
func (s *Session) Current() (Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// State returns a snapshot for the UI.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SessionState{
		Total: len(s.questions),
		Score: s.score,
		Done:  s.index >= len(s.questions),
	}
	if !state.Done {
		state.Number = s.index + 1
		state.Definition = s.questions[s.index].Definition
	} else {
		state.Number = len(s.questions)
	}
	return state
}

// Submit checks the answer against the current word, records the outcome
// and advances to the next question. Comparison ignores case and
// surrounding whitespace. Returns the judged result so callers see the
// word this attempt was scored against even when another call has
// already advanced the session.
func (s *Session) Submit(answer string) (res model.WordResult, done bool, err error) {
	s.mu.Lock()
	if s.index >= len(s.questions) {
		s.mu.Unlock()
		return model.WordResult{}, false, ErrGameFinished
	}

	q := s.questions[s.index]
	res = model.WordResult{
		Word:    q.Word,
		Answer:  strings.TrimSpace(answer),
		Correct: normalizeAnswer(answer) == q.Word,
	}
	if res.Correct {
		s.score++
	}
	s.results = append(s.results, res)
	s.index++
	done = s.index >= len(s.questions)
	s.mu.Unlock()

	if !done {
		s.speakCurrent()
	}
	return res, done, nil
}

// Skip gives up on the current word. The partial answer, if any, is kept
// in the results for the summary screen.
func (s *Session) Skip(answer string) (res model.WordResult, done bool, err error) {
	s.mu.Lock()
	if s.index >= len(s.questions) {
		s.mu.Unlock()
		return model.WordResult{}, false, ErrGameFinished
	}

	q := s.questions[s.index]
	res = model.WordResult{
		Word:    q.Word,
		Answer:  strings.TrimSpace(answer),
		Correct: false,
	}
	s.results = append(s.results, res)
	s.index++
	done = s.index >= len(s.questions)
	s.mu.Unlock()

	if !done {
		s.speakCurrent()
	}
	return res, done, nil
}

// Replay speaks the current word again.
func (s *Session) Replay() {
	if q, ok := s.Current(); ok {
		s.speaker.Speak("Spell the word: " + q.Word)
	}
}

// SpeakDefinition speaks the current word's definition.
func (s *Session) SpeakDefinition() {
	if q, ok := s.Current(); ok {
		s.speaker.Speak(q.Definition)
	}
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Results returns a copy of the per-word outcomes recorded so far.
func (s *Session) Results() []model.WordResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WordResult, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Session) speakCurrent() {
	if q, ok := s.Current(); ok {
		s.speaker.Speak("Spell the word: " + q.Word)
	}
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
