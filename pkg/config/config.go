package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	TTS        TTSConfig        `yaml:"tts"`
	Request    RequestConfig    `yaml:"request"`
	Log        LogConfig        `yaml:"log"`
	DB         DBConfig         `yaml:"db"`
	Server     ServerConfig     `yaml:"server"`
}

// GameConfig holds quiz settings.
type GameConfig struct {
	Questions     int    `yaml:"questions"`
	MinWordLength int    `yaml:"min_word_length"`
	MaxWordLength int    `yaml:"max_word_length"`
	LogPath       string `yaml:"log_path"`
}

// DictionaryConfig holds word source settings.
type DictionaryConfig struct {
	Source   string   `yaml:"source"` // "builtin", "wordset"
	URL      string   `yaml:"url"`
	CacheTTL Duration `yaml:"cache_ttl"`
}

// RequestConfig holds HTTP request settings.
type RequestConfig struct {
	Retries int           `yaml:"retries"`
	Timeout Duration      `yaml:"timeout"`
	Backoff BackoffConfig `yaml:"backoff"`
}

// BackoffConfig holds exponential backoff settings.
type BackoffConfig struct {
	BaseDelay Duration `yaml:"base_delay"`
	MaxDelay  Duration `yaml:"max_delay"`
}

// EdgeTTSConfig holds settings for Edge TTS.
type EdgeTTSConfig struct {
	VoiceID string `yaml:"voice"` // e.g. "en-GB-SoniaNeural"
}

// SAPIConfig holds settings for Windows SAPI5.
type SAPIConfig struct {
	VoiceID string `yaml:"voice"` // full token ID, empty for system default
}

// TTSConfig holds Text-To-Speech settings.
type TTSConfig struct {
	Engine  string        `yaml:"engine"`
	EdgeTTS EdgeTTSConfig `yaml:"edge_tts"`
	SAPI    SAPIConfig    `yaml:"sapi"`
	LogPath string        `yaml:"log_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server   LogSettings `yaml:"server"`
	Requests LogSettings `yaml:"requests"`
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DBConfig holds database settings.
type DBConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Questions:     10,
			MinWordLength: 5,
			MaxWordLength: 7,
			LogPath:       "./logs/game_log.txt",
		},
		Dictionary: DictionaryConfig{
			Source:   "builtin",
			URL:      "https://github.com/wordset/wordset-dictionary/raw/master/data/allwords_wordset.json.gz",
			CacheTTL: Duration(4 * Week),
		},
		TTS: TTSConfig{
			Engine: "edge-tts",
			EdgeTTS: EdgeTTSConfig{
				VoiceID: "en-GB-SoniaNeural",
			},
			SAPI:    SAPIConfig{},
			LogPath: "./logs/tts.log",
		},
		Request: RequestConfig{
			Retries: 3,
			Timeout: Duration(120 * time.Second),
			Backoff: BackoffConfig{
				BaseDelay: Duration(1 * time.Second),
				MaxDelay:  Duration(30 * time.Second),
			},
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
			Requests: LogSettings{
				Path:  "./logs/requests.log",
				Level: "INFO",
			},
		},
		DB: DBConfig{
			Path: "./data/spellgo.db",
		},
		Server: ServerConfig{
			Address: "localhost:1923",
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does NOT
// save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// If file does not exist, save defaults
	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Game.Questions < 1 {
		return fmt.Errorf("game.questions must be at least 1, got %d", c.Game.Questions)
	}
	if c.Game.MinWordLength < 1 || c.Game.MaxWordLength < c.Game.MinWordLength {
		return fmt.Errorf("invalid word length range [%d, %d]", c.Game.MinWordLength, c.Game.MaxWordLength)
	}
	switch c.Dictionary.Source {
	case "builtin", "wordset":
	default:
		return fmt.Errorf("unknown dictionary source %q: must be 'builtin' or 'wordset'", c.Dictionary.Source)
	}
	return nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# SpellGo Configuration
# --------------------
# Supported Units:
#   Duration: ns, us (or µs), ms, s, m, h, d (day), w (week)

`)
	data = append(header, data...)

	// Inject comments for Enum fields
	reEngine := regexp.MustCompile(`(?m)^(\s+)engine:`)
	data = reEngine.ReplaceAll(data, []byte("${1}# Options: edge-tts, windows-sapi\n${1}engine:"))

	reSource := regexp.MustCompile(`(?m)^(\s+)source:`)
	data = reSource.ReplaceAll(data, []byte("${1}# Options: builtin, wordset\n${1}source:"))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // File exists, do nothing
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return Save(path, DefaultConfig())
}
