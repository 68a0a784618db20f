package audio

import (
	"math"
	"testing"
)

func TestVolumeToPower(t *testing.T) {
	tests := []struct {
		name     string
		vol      float64
		expected float64
	}{
		{"Full volume", 1.0, 0},
		{"Half volume", 0.5, -1},
		{"Quarter volume", 0.25, -2},
		{"Silent", 0.0, -10},
		{"Near silent", 0.01, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := volumeToPower(tt.vol)
			if math.Abs(got-tt.expected) > 0.0001 {
				t.Errorf("volumeToPower(%v) = %v, expected %v", tt.vol, got, tt.expected)
			}
		})
	}
}

func TestSetVolumeClamps(t *testing.T) {
	m := New()

	m.SetVolume(1.5)
	if m.Volume() != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %v", m.Volume())
	}

	m.SetVolume(-0.5)
	if m.Volume() != 0.0 {
		t.Errorf("Expected volume clamped to 0.0, got %v", m.Volume())
	}

	m.SetVolume(0.7)
	if m.Volume() != 0.7 {
		t.Errorf("Expected volume 0.7, got %v", m.Volume())
	}
}

func TestPlayFileRequiresOpen(t *testing.T) {
	m := New()
	err := m.PlayFile("nonexistent.mp3")
	if err == nil {
		t.Error("Expected error when playing before Open")
	}
}
