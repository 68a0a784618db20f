package edgetts

import (
	"strings"
	"testing"
)

func TestBuildSSML(t *testing.T) {
	tests := []struct {
		name     string
		voice    string
		text     string
		expected []string // Substrings that must be present
	}{
		{
			name:     "Normal text",
			voice:    "en-GB-SoniaNeural",
			text:     "Spell the word: easel",
			expected: []string{"Spell the word: easel", "en-GB-SoniaNeural"},
		},
		{
			name:     "Text with ampersand",
			voice:    "en-GB-SoniaNeural",
			text:     "salt & pepper",
			expected: []string{"salt &amp; pepper"},
		},
		{
			name:     "Text with tags",
			voice:    "en-GB-SoniaNeural",
			text:     "<speak>Hello</speak>",
			expected: []string{"&lt;speak&gt;Hello&lt;/speak&gt;"},
		},
		{
			name:     "Text with quotes",
			voice:    "en-GB-SoniaNeural",
			text:     `a painter's "canvas"`,
			expected: []string{`a painter&apos;s &quot;canvas&quot;`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSSML(tt.voice, tt.text)
			for _, exp := range tt.expected {
				if !strings.Contains(got, exp) {
					t.Errorf("buildSSML() = %v, expected to contain %v", got, exp)
				}
			}
		})
	}
}
