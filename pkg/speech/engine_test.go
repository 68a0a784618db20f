package speech

import (
	"context"
	"fmt"
	"os"
	"testing"

	"spellgo/pkg/tts"
)

// stubProvider writes a fixed payload to the output path.
type stubProvider struct {
	payload []byte
	err     error
}

func (s *stubProvider) Synthesize(ctx context.Context, text, voice, outputPath string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if err := os.WriteFile(outputPath+".mp3", s.payload, 0o644); err != nil {
		return "", err
	}
	return "mp3", nil
}

func (s *stubProvider) Voices(ctx context.Context) ([]tts.Voice, error) {
	return nil, nil
}

type stubPlayer struct {
	opened bool
	openEr error
	played []string
}

func (s *stubPlayer) Open() error {
	if s.openEr != nil {
		return s.openEr
	}
	s.opened = true
	return nil
}
func (s *stubPlayer) PlayFile(path string) error { s.played = append(s.played, path); return nil }
func (s *stubPlayer) SetVolume(vol float64)      {}
func (s *stubPlayer) Volume() float64            { return 1.0 }
func (s *stubPlayer) Close()                     {}

func TestSynthEngineRoundTrip(t *testing.T) {
	provider := &stubProvider{payload: make([]byte, tts.MinAudioSize)}
	player := &stubPlayer{}
	engine := NewSynthEngine(provider, player, "en-GB-SoniaNeural")
	defer engine.Close()

	if err := engine.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if !player.opened {
		t.Error("Expected player to be opened")
	}

	clip, err := engine.Synthesize(context.Background(), "easel")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if _, err := os.Stat(clip); err != nil {
		t.Fatalf("Expected clip on disk: %v", err)
	}

	if err := engine.Play(clip); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if len(player.played) != 1 || player.played[0] != clip {
		t.Errorf("Expected clip to be played, got %v", player.played)
	}

	// Clip is removed after playback.
	if _, err := os.Stat(clip); !os.IsNotExist(err) {
		t.Error("Expected clip to be removed after playback")
	}
}

func TestSynthEngineRejectsTinyClips(t *testing.T) {
	provider := &stubProvider{payload: []byte("stub")}
	engine := NewSynthEngine(provider, &stubPlayer{}, "en-GB-SoniaNeural")
	defer engine.Close()

	if err := engine.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	_, err := engine.Synthesize(context.Background(), "easel")
	if err == nil {
		t.Error("Expected error for undersized clip")
	}
}

func TestSynthEngineInitFailsWithoutAudio(t *testing.T) {
	player := &stubPlayer{openEr: fmt.Errorf("no device")}
	engine := NewSynthEngine(&stubProvider{}, player, "en-GB-SoniaNeural")

	if err := engine.Initialize(); err == nil {
		t.Error("Expected initialization error when audio device is missing")
	}
}
