package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"spellgo/pkg/audio"
	"spellgo/pkg/tts"
)

// Engine turns text into audible speech. All methods are called from the
// queue's worker goroutine only.
type Engine interface {
	// Initialize prepares the engine. Called once, lazily, before the
	// first request is processed.
	Initialize() error
	// Synthesize renders text to an audio clip and returns its path.
	Synthesize(ctx context.Context, text string) (string, error)
	// Play plays a previously synthesized clip, blocking until done.
	Play(clipPath string) error
	// Close releases engine resources.
	Close()
}

// SynthEngine is the production Engine. It composes a tts.Provider for
// synthesis with an audio.Player for playback, writing clips to a
// temporary directory that is removed on Close.
type SynthEngine struct {
	provider tts.Provider
	player   audio.Player
	voiceID  string
	tempDir  string
	counter  atomic.Int64
}

// NewSynthEngine creates an engine using the given provider and voice.
func NewSynthEngine(provider tts.Provider, player audio.Player, voiceID string) *SynthEngine {
	return &SynthEngine{
		provider: provider,
		player:   player,
		voiceID:  voiceID,
	}
}

// Initialize opens the audio device and creates the clip directory.
func (e *SynthEngine) Initialize() error {
	if err := e.player.Open(); err != nil {
		return fmt.Errorf("audio device unavailable: %w", err)
	}
	dir, err := os.MkdirTemp("", "spellgo_speech_")
	if err != nil {
		return fmt.Errorf("failed to create clip directory: %w", err)
	}
	e.tempDir = dir
	return nil
}

// Synthesize renders text via the provider and returns the clip path.
func (e *SynthEngine) Synthesize(ctx context.Context, text string) (string, error) {
	n := e.counter.Add(1)
	base := filepath.Join(e.tempDir, fmt.Sprintf("clip_%04d", n))

	format, err := e.provider.Synthesize(ctx, text, e.voiceID, base)
	if err != nil {
		return "", err
	}

	clip := base + "." + format
	info, err := os.Stat(clip)
	if err != nil {
		return "", fmt.Errorf("synthesized clip missing: %w", err)
	}
	if info.Size() < tts.MinAudioSize {
		os.Remove(clip)
		return "", fmt.Errorf("synthesized clip too small (%d bytes)", info.Size())
	}
	return clip, nil
}

// Play plays the clip and removes it afterwards.
func (e *SynthEngine) Play(clipPath string) error {
	defer os.Remove(clipPath)
	return e.player.PlayFile(clipPath)
}

// Close releases the audio device and removes remaining clips.
func (e *SynthEngine) Close() {
	e.player.Close()
	if e.tempDir != "" {
		os.RemoveAll(e.tempDir)
	}
}
