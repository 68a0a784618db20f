package game

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

type recordingSpeaker struct {
	mu    sync.Mutex
	texts []string
}

func (r *recordingSpeaker) Speak(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
}

func (r *recordingSpeaker) spoken() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.texts))
	copy(out, r.texts)
	return out
}

func testWords() map[string]string {
	return map[string]string{
		"easel":  "a wooden frame for holding a painting",
		"kiln":   "an oven for baking clay",
		"canvas": "a strong cloth painters work on",
	}
}

func TestNewSessionSpeaksFirstWord(t *testing.T) {
	speaker := &recordingSpeaker{}
	s, err := NewSession(testWords(), 3, speaker)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	q, ok := s.Current()
	if !ok {
		t.Fatal("Expected a current question")
	}
	spoken := speaker.spoken()
	if len(spoken) != 1 {
		t.Fatalf("Expected one spoken prompt, got %v", spoken)
	}
	if spoken[0] != "Spell the word: "+q.Word {
		t.Errorf("Expected prompt for %q, got %q", q.Word, spoken[0])
	}
}

func TestNewSessionCapsAtQuestionCount(t *testing.T) {
	s, err := NewSession(testWords(), 2, &recordingSpeaker{})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if got := s.State().Total; got != 2 {
		t.Errorf("Expected 2 questions, got %d", got)
	}
}

func TestNewSessionRequiresWords(t *testing.T) {
	if _, err := NewSession(map[string]string{}, 5, &recordingSpeaker{}); err == nil {
		t.Error("Expected error for empty word pool")
	}
}

func TestSubmitNormalizesAnswer(t *testing.T) {
	speaker := &recordingSpeaker{}
	s, err := NewSession(map[string]string{"easel": "a frame"}, 1, speaker)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	res, done, err := s.Submit("  EaSeL  ")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !res.Correct {
		t.Error("Expected case-insensitive, trimmed answer to be correct")
	}
	if !done {
		t.Error("Expected single-question game to be done")
	}
	if s.Score() != 1 {
		t.Errorf("Expected score 1, got %d", s.Score())
	}
}

func TestSubmitAdvancesAndSpeaksNext(t *testing.T) {
	speaker := &recordingSpeaker{}
	s, err := NewSession(testWords(), 3, speaker)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	first, _ := s.Current()
	res, done, err := s.Submit("wrong answer")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if res.Correct {
		t.Error("Expected wrong answer to be incorrect")
	}
	if res.Word != first.Word {
		t.Errorf("Expected result for %q, got %q", first.Word, res.Word)
	}
	if done {
		t.Error("Expected more questions")
	}

	second, ok := s.Current()
	if !ok {
		t.Fatal("Expected a second question")
	}
	if second.Word == first.Word {
		t.Error("Expected session to advance to a different question")
	}

	spoken := speaker.spoken()
	if len(spoken) != 2 || !strings.HasSuffix(spoken[1], second.Word) {
		t.Errorf("Expected prompt for next word, got %v", spoken)
	}

	results := s.Results()
	if len(results) != 1 || results[0].Word != first.Word || results[0].Correct {
		t.Errorf("Unexpected result record: %+v", results)
	}
}

func TestSkipRecordsIncorrect(t *testing.T) {
	s, err := NewSession(map[string]string{"kiln": "an oven"}, 1, &recordingSpeaker{})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	_, done, err := s.Skip("kil")
	if err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if !done {
		t.Error("Expected game to be done after skipping the only question")
	}
	results := s.Results()
	if len(results) != 1 || results[0].Correct || results[0].Answer != "kil" {
		t.Errorf("Unexpected skip record: %+v", results)
	}
	if s.Score() != 0 {
		t.Errorf("Expected score 0 after skip, got %d", s.Score())
	}
}

func TestReplayAndDefinition(t *testing.T) {
	speaker := &recordingSpeaker{}
	s, err := NewSession(map[string]string{"easel": "a wooden frame"}, 1, speaker)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	s.Replay()
	s.SpeakDefinition()

	spoken := speaker.spoken()
	if len(spoken) != 3 {
		t.Fatalf("Expected 3 spoken texts, got %v", spoken)
	}
	if spoken[1] != "Spell the word: easel" {
		t.Errorf("Unexpected replay prompt: %q", spoken[1])
	}
	if spoken[2] != "a wooden frame" {
		t.Errorf("Unexpected definition: %q", spoken[2])
	}
}

func TestSubmitAfterDone(t *testing.T) {
	s, err := NewSession(map[string]string{"easel": "a frame"}, 1, &recordingSpeaker{})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if _, _, err := s.Submit("easel"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	_, done, err := s.Submit("easel")
	if !errors.Is(err, ErrGameFinished) {
		t.Errorf("Expected ErrGameFinished, got %v", err)
	}
	if done {
		t.Error("Late submit must not report the terminal transition")
	}
	if len(s.Results()) != 1 {
		t.Errorf("Expected no extra results, got %d", len(s.Results()))
	}
}

func TestSubmitDoneIsExclusive(t *testing.T) {
	s, err := NewSession(map[string]string{"easel": "a frame"}, 1, &recordingSpeaker{})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	const attempts = 8
	var wg sync.WaitGroup
	doneCount := 0
	var mu sync.Mutex
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, done, err := s.Submit("easel"); err == nil && done {
				mu.Lock()
				doneCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if doneCount != 1 {
		t.Errorf("Expected exactly one submit to observe done, got %d", doneCount)
	}
	if len(s.Results()) != 1 {
		t.Errorf("Expected one recorded result, got %d", len(s.Results()))
	}
}
