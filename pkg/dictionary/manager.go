// Package dictionary provides the word and definition source for the quiz.
package dictionary

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"spellgo/pkg/config"
)

// Provider supplies quiz words with their definitions.
type Provider interface {
	// WordsByLength returns a word -> definition map for words whose length
	// is within [minLen, maxLen]. Only purely alphabetic words qualify.
	WordsByLength(minLen, maxLen int) map[string]string
	// Source reports which dictionary is currently loaded.
	Source() string
}

// Getter fetches a URL with optional caching. Satisfied by request.Client.
type Getter interface {
	Get(ctx context.Context, url, cacheKey string) ([]byte, error)
}

const wordsetCacheKey = "dict:wordset"

// Manager loads the builtin dictionary or the downloaded wordset dictionary
// and answers length-filtered lookups.
type Manager struct {
	cfg    config.DictionaryConfig
	client Getter

	mu     sync.RWMutex
	words  map[string]string
	source string
}

// NewManager creates a dictionary manager. Call Load before first use.
func NewManager(cfg config.DictionaryConfig, client Getter) *Manager {
	return &Manager{
		cfg:    cfg,
		client: client,
	}
}

// Load populates the word list from the configured source.
// A wordset download failure falls back to the builtin dictionary.
func (m *Manager) Load(ctx context.Context) error {
	return m.Reload(ctx, m.cfg.Source)
}

// Reload switches the active source and repopulates the word list.
func (m *Manager) Reload(ctx context.Context, source string) error {
	switch source {
	case "builtin":
		m.setWords(builtinWords(), "builtin")
		slog.Info("Dictionary loaded", "source", "builtin", "words", m.Count())
		return nil
	case "wordset":
		words, err := m.loadWordset(ctx)
		if err != nil {
			slog.Warn("Wordset dictionary unavailable, falling back to builtin", "error", err)
			m.setWords(builtinWords(), "builtin")
			return nil
		}
		m.setWords(words, "wordset")
		slog.Info("Dictionary loaded", "source", "wordset", "words", m.Count())
		return nil
	default:
		return fmt.Errorf("unknown dictionary source: %q", source)
	}
}

func (m *Manager) setWords(words map[string]string, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words = words
	m.source = source
}

// Source reports which dictionary is currently loaded.
func (m *Manager) Source() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.source
}

// Count returns the number of loaded words.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.words)
}

// WordsByLength returns a word -> definition map for plain a-z words whose
// length is within [minLen, maxLen]. Accented and punctuated entries are
// excluded, the quiz compares against typed answers.
func (m *Manager) WordsByLength(minLen, maxLen int) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string)
	for word, def := range m.words {
		if len(word) < minLen || len(word) > maxLen {
			continue
		}
		if !isAlpha(word) {
			continue
		}
		result[word] = def
	}
	return result
}

// isAlpha accepts ASCII letters only, so byte length equals letter count.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// wordsetEntry mirrors the wordset-dictionary JSON schema.
type wordsetEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		Def string `json:"def"`
	} `json:"meanings"`
}

// loadWordset downloads (or reads from cache) the gzipped wordset dictionary
// and extracts one definition per word.
func (m *Manager) loadWordset(ctx context.Context) (map[string]string, error) {
	raw, err := m.client.Get(ctx, m.cfg.URL, wordsetCacheKey)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	data, err := gunzip(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress failed: %w", err)
	}

	var entries map[string]wordsetEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	words := make(map[string]string, len(entries))
	for key, entry := range entries {
		word := strings.ToLower(strings.TrimSpace(entry.Word))
		if word == "" {
			word = strings.ToLower(strings.TrimSpace(key))
		}
		if word == "" || len(entry.Meanings) == 0 {
			continue
		}
		def := strings.TrimSpace(entry.Meanings[0].Def)
		if def == "" {
			continue
		}
		words[word] = def
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("wordset dictionary contained no usable entries")
	}
	return words, nil
}

func gunzip(raw []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
