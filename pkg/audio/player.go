// Package audio provides audio playback for synthesized speech.
package audio

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Player plays audio files to completion.
type Player interface {
	// Open initializes the audio device. Must be called once before PlayFile.
	Open() error
	// PlayFile plays the given file and blocks until playback finishes.
	PlayFile(path string) error
	// SetVolume sets playback volume (0.0 to 1.0).
	SetVolume(vol float64)
	// Volume returns current volume level.
	Volume() float64
	// Close stops playback and releases the device.
	Close()
}

// Manager implements Player using gopxl/beep.
type Manager struct {
	mu                 sync.RWMutex
	volume             float64
	speakerInitialized bool
	currentSampleRate  beep.SampleRate
	streamer           *effects.Volume
}

// New creates a new Manager instance.
func New() *Manager {
	return &Manager{
		volume: 1.0,
	}
}

// Open initializes the speaker at a fixed 48kHz rate.
// Failure here means no audio device is usable.
func (m *Manager) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	const targetSampleRate = 48000
	if m.speakerInitialized {
		return nil
	}
	err := speaker.Init(beep.SampleRate(targetSampleRate), beep.SampleRate(targetSampleRate).N(time.Second/10))
	if err != nil {
		slog.Error("Failed to initialize speaker", "error", err)
		return fmt.Errorf("speaker init failed: %w", err)
	}
	m.speakerInitialized = true
	m.currentSampleRate = beep.SampleRate(targetSampleRate)
	return nil
}

// PlayFile decodes and plays the file, blocking until the last sample has
// been handed to the device.
func (m *Manager) PlayFile(path string) error {
	m.mu.Lock()
	if !m.speakerInitialized {
		m.mu.Unlock()
		return fmt.Errorf("player not opened")
	}

	streamer, format, err := decodeStreamer(path)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	// Resample streamer to target rate
	resampled := beep.Resample(3, format.SampleRate, m.currentSampleRate, streamer)

	// Wrap in Volume control, mapping 0-1 linear volume to beep's base-2 power
	volStreamer := &effects.Volume{
		Streamer: resampled,
		Base:     2,
		Volume:   volumeToPower(m.volume),
		Silent:   m.volume <= 0.01,
	}
	m.streamer = volStreamer
	m.mu.Unlock()

	done := make(chan struct{})
	speaker.Play(beep.Seq(volStreamer, beep.Callback(func() {
		close(done)
	})))

	slog.Debug("Playing audio", "path", path)
	<-done

	m.mu.Lock()
	m.streamer = nil
	m.mu.Unlock()
	streamer.Close()

	return nil
}

// SetVolume sets playback volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	m.volume = vol

	// Update live streamer if playing
	if m.streamer != nil {
		speaker.Lock()
		m.streamer.Volume = volumeToPower(vol)
		m.streamer.Silent = vol <= 0.01
		speaker.Unlock()
	}
}

// Volume returns current volume level.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// Close stops playback and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.speakerInitialized {
		speaker.Clear()
	}
}

func decodeStreamer(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open audio file", "path", path, "error", err)
		return nil, beep.Format{}, err
	}

	// Try MP3 first
	streamer, format, err := mp3.Decode(f)
	if err == nil {
		return streamer, format, nil
	}

	// Reopen file for WAV attempt (MP3 decode failure might leave file state uncertain)
	f.Close()
	f, err = os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	streamer, format, err = wav.Decode(f)
	if err != nil {
		f.Close()
		slog.Error("Failed to decode audio file", "path", path, "error", err)
		return nil, beep.Format{}, err
	}

	return streamer, format, nil
}
