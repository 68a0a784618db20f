package speech

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"spellgo/pkg/tracker"
	"spellgo/pkg/tts"
)

// fakeEngine records every call for assertions. Synthesis and playback
// behavior are configurable per test.
type fakeEngine struct {
	mu          sync.Mutex
	initErr     error
	initCalls   int
	synthDelay  time.Duration
	synthErrFor map[string]error
	playErrFor  map[string]error
	played      []string
	concurrent  atomic.Int32
	maxConcur   atomic.Int32
	closed      atomic.Bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		synthErrFor: make(map[string]error),
		playErrFor:  make(map[string]error),
	}
}

func (e *fakeEngine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initCalls++
	return e.initErr
}

func (e *fakeEngine) Synthesize(ctx context.Context, text string) (string, error) {
	cur := e.concurrent.Add(1)
	defer e.concurrent.Add(-1)
	for {
		max := e.maxConcur.Load()
		if cur <= max || e.maxConcur.CompareAndSwap(max, cur) {
			break
		}
	}

	if e.synthDelay > 0 {
		time.Sleep(e.synthDelay)
	}
	e.mu.Lock()
	err := e.synthErrFor[text]
	e.mu.Unlock()
	if err != nil {
		return "", err
	}
	return "clip:" + text, nil
}

func (e *fakeEngine) Play(clipPath string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.playErrFor[clipPath]; err != nil {
		return err
	}
	e.played = append(e.played, clipPath)
	return nil
}

func (e *fakeEngine) Close() {
	e.closed.Store(true)
}

func (e *fakeEngine) playedList() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.played))
	copy(out, e.played)
	return out
}

func TestQueueFIFOOrder(t *testing.T) {
	engine := newFakeEngine()
	q := NewQueue(engine, tracker.New())

	var want []string
	for i := 0; i < 20; i++ {
		text := fmt.Sprintf("word %d", i)
		q.Speak(text)
		want = append(want, "clip:"+text)
	}
	q.Shutdown()

	got := engine.playedList()
	if len(got) != len(want) {
		t.Fatalf("Expected %d played clips, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestQueueSingleWorker(t *testing.T) {
	engine := newFakeEngine()
	engine.synthDelay = 5 * time.Millisecond
	q := NewQueue(engine, tracker.New())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			q.Speak(fmt.Sprintf("concurrent %d", n))
		}(i)
	}
	wg.Wait()
	q.Shutdown()

	if max := engine.maxConcur.Load(); max > 1 {
		t.Errorf("Expected at most one concurrent engine call, observed %d", max)
	}
	if len(engine.playedList()) != 10 {
		t.Errorf("Expected 10 played clips, got %d", len(engine.playedList()))
	}
}

func TestQueueSpeakDoesNotBlock(t *testing.T) {
	engine := newFakeEngine()
	engine.synthDelay = 200 * time.Millisecond
	q := NewQueue(engine, tracker.New())
	defer q.Shutdown()

	start := time.Now()
	for i := 0; i < 50; i++ {
		q.Speak(fmt.Sprintf("slow %d", i))
	}
	elapsed := time.Since(start)

	// 50 requests at 200ms each would take 10 seconds if Speak waited.
	if elapsed > 100*time.Millisecond {
		t.Errorf("Speak blocked for %v, expected near-instant returns", elapsed)
	}
}

func TestQueueDegradesWhenInitFails(t *testing.T) {
	engine := newFakeEngine()
	engine.initErr = fmt.Errorf("no audio device")
	tr := tracker.New()
	q := NewQueue(engine, tr)

	q.Speak("first")
	q.Speak("second")
	q.Speak("third")
	q.Shutdown()

	if got := q.State(); got != StateUnavailable {
		t.Errorf("Expected state unavailable, got %v", got)
	}
	if engine.initCalls != 1 {
		t.Errorf("Expected exactly one initialization attempt, got %d", engine.initCalls)
	}
	if len(engine.playedList()) != 0 {
		t.Errorf("Expected no playback in degraded mode, got %v", engine.playedList())
	}

	stats := tr.Snapshot()["speech"]
	if stats.Degraded != 3 {
		t.Errorf("Expected 3 degraded requests tracked, got %d", stats.Degraded)
	}
}

func TestQueueFailureIsolation(t *testing.T) {
	engine := newFakeEngine()
	engine.synthErrFor["bad synth"] = fmt.Errorf("synthesis exploded")
	engine.playErrFor["clip:bad play"] = fmt.Errorf("playback exploded")
	tr := tracker.New()
	q := NewQueue(engine, tr)

	q.Speak("before")
	q.Speak("bad synth")
	q.Speak("bad play")
	q.Speak("after")
	q.Shutdown()

	got := engine.playedList()
	want := []string{"clip:before", "clip:after"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	stats := tr.Snapshot()["speech"]
	if stats.Spoken != 2 {
		t.Errorf("Expected 2 spoken requests tracked, got %d", stats.Spoken)
	}
	if stats.APIFailures != 1 {
		t.Errorf("Expected 1 synthesis failure tracked, got %d", stats.APIFailures)
	}
}

func TestQueueDegradesOnFatalProviderError(t *testing.T) {
	engine := newFakeEngine()
	engine.synthErrFor["rejected"] = tts.NewFatalError(401, "handshake rejected with status 401")
	tr := tracker.New()
	q := NewQueue(engine, tr)

	q.Speak("fine")
	q.Speak("rejected")
	q.Speak("afterwards")
	q.Shutdown()

	if got := q.State(); got != StateUnavailable {
		t.Errorf("Expected state unavailable after fatal error, got %v", got)
	}
	// Only the request before the fatal error reaches the engine.
	got := engine.playedList()
	if len(got) != 1 || got[0] != "clip:fine" {
		t.Errorf("Expected only the first clip played, got %v", got)
	}

	stats := tr.Snapshot()["speech"]
	if stats.APIFailures != 1 {
		t.Errorf("Expected 1 failure tracked, got %d", stats.APIFailures)
	}
	if stats.Degraded != 1 {
		t.Errorf("Expected 1 degraded request tracked, got %d", stats.Degraded)
	}
}

func TestQueueShutdownDrainsAndIsIdempotent(t *testing.T) {
	engine := newFakeEngine()
	engine.synthDelay = 2 * time.Millisecond
	q := NewQueue(engine, tracker.New())

	for i := 0; i < 15; i++ {
		q.Speak(fmt.Sprintf("drain %d", i))
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Shutdown()
		}()
	}
	wg.Wait()
	q.Shutdown()

	if len(engine.playedList()) != 15 {
		t.Errorf("Expected all 15 requests drained before shutdown, got %d", len(engine.playedList()))
	}
	if !engine.closed.Load() {
		t.Error("Expected engine to be closed on shutdown")
	}

	// Requests after shutdown are dropped silently.
	q.Speak("too late")
	if got := len(engine.playedList()); got != 15 {
		t.Errorf("Expected post-shutdown request to be dropped, got %d clips", got)
	}
}

func TestQueueLazyInitialization(t *testing.T) {
	engine := newFakeEngine()
	q := NewQueue(engine, tracker.New())

	time.Sleep(20 * time.Millisecond)
	engine.mu.Lock()
	calls := engine.initCalls
	engine.mu.Unlock()
	if calls != 0 {
		t.Errorf("Expected no initialization before first request, got %d calls", calls)
	}

	q.Speak("hello")
	q.Shutdown()

	if engine.initCalls != 1 {
		t.Errorf("Expected one initialization after first request, got %d", engine.initCalls)
	}
	if got := q.State(); got != StateReady {
		t.Errorf("Expected state ready, got %v", got)
	}
}
