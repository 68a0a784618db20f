// Package speech provides asynchronous text-to-speech playback.
//
// A Queue accepts speech requests without blocking the caller and plays
// them back in order on a single background goroutine. The underlying
// engine is initialized lazily on the first request; if initialization
// fails, or the provider later reports a fatal error, the queue degrades
// permanently to logging what it would have spoken instead of producing
// audio.
package speech

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"spellgo/pkg/tracker"
	"spellgo/pkg/tts"
)

// EngineState describes the lifecycle of the queue's engine.
type EngineState int

const (
	// StateUninitialized means no request has been processed yet.
	StateUninitialized EngineState = iota
	// StateReady means the engine initialized successfully.
	StateReady
	// StateUnavailable means initialization failed or the provider
	// reported a fatal error. The state is terminal, no further engine
	// calls are attempted.
	StateUnavailable
)

func (s EngineState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	default:
		return "uninitialized"
	}
}

// request is a single unit of work for the worker goroutine.
// A stop request is the shutdown sentinel, everything enqueued
// before it is drained first.
type request struct {
	text string
	stop bool
}

// Queue serializes speech requests onto a single worker goroutine.
type Queue struct {
	engine   Engine
	tracker  *tracker.Tracker
	synthTTL time.Duration

	mu      sync.Mutex
	cond    *sync.Cond
	items   []request
	stopped bool
	state   EngineState

	shutdownOnce sync.Once
	done         chan struct{}
}

// NewQueue creates a Queue and starts its worker goroutine.
// The engine is not touched until the first Speak call.
func NewQueue(engine Engine, t *tracker.Tracker) *Queue {
	q := &Queue{
		engine:   engine,
		tracker:  t,
		synthTTL: 30 * time.Second,
		done:     make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.worker()
	return q
}

// Speak enqueues text for playback and returns immediately.
// Calls after Shutdown are dropped.
func (q *Queue) Speak(text string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		slog.Debug("Speech request dropped, queue is shut down", "text", text)
		return
	}
	q.items = append(q.items, request{text: text})
	q.cond.Signal()
}

// State returns the engine state as last observed by the worker.
func (q *Queue) State() EngineState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Pending returns the number of requests waiting to be processed.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Shutdown stops the queue after draining all pending requests.
// It blocks until the worker goroutine has exited and is safe to
// call multiple times.
func (q *Queue) Shutdown() {
	q.shutdownOnce.Do(func() {
		q.mu.Lock()
		q.stopped = true
		q.items = append(q.items, request{stop: true})
		q.cond.Signal()
		q.mu.Unlock()
	})
	<-q.done
}

// worker is the single consumer of the queue. It pops requests in FIFO
// order and processes them one at a time.
func (q *Queue) worker() {
	for {
		q.mu.Lock()
		for len(q.items) == 0 {
			q.cond.Wait()
		}
		req := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()

		if req.stop {
			q.engine.Close()
			close(q.done)
			return
		}
		q.process(req.text)
	}
}

// process handles one speech request. Failures are logged and never
// propagate, one bad request must not take down the worker.
func (q *Queue) process(text string) {
	state := q.ensureEngine()

	if state == StateUnavailable {
		slog.Info("would speak: " + text)
		if q.tracker != nil {
			q.tracker.TrackDegraded("speech")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), q.synthTTL)
	defer cancel()

	clip, err := q.engine.Synthesize(ctx, text)
	if err != nil {
		if q.tracker != nil {
			q.tracker.TrackAPIFailure("speech")
		}
		// A fatal provider error (auth rejection, throttling) will not
		// recover on its own, stop asking and degrade to logging.
		if tts.IsFatalError(err) {
			slog.Error("Speech provider unusable, degrading to logging", "error", err)
			q.mu.Lock()
			q.state = StateUnavailable
			q.mu.Unlock()
			return
		}
		slog.Error("Speech synthesis failed", "text", text, "error", err)
		return
	}

	if err := q.engine.Play(clip); err != nil {
		slog.Error("Speech playback failed", "clip", clip, "error", err)
		return
	}

	if q.tracker != nil {
		q.tracker.TrackSpoken("speech")
	}
}

// ensureEngine lazily initializes the engine on the first request.
// A failed initialization is terminal.
func (q *Queue) ensureEngine() EngineState {
	q.mu.Lock()
	state := q.state
	q.mu.Unlock()

	if state != StateUninitialized {
		return state
	}

	if err := q.engine.Initialize(); err != nil {
		slog.Warn("Speech engine unavailable, degrading to logging", "error", err)
		state = StateUnavailable
	} else {
		slog.Info("Speech engine ready")
		state = StateReady
	}

	q.mu.Lock()
	q.state = state
	q.mu.Unlock()
	return state
}
