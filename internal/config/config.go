package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	Type          string `yaml:"type"`
	LinesPerChunk int    `yaml:"lines_per_chunk"`
	OverlapLines  int    `yaml:"overlap_lines"`
}

// RetrievalConfig bounds what is handed to the downstream prompt.
type RetrievalConfig struct {
	MaxChars int `yaml:"max_chars"`
	TopK     int `yaml:"top_k"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type"`
	MaxSentences int    `yaml:"max_sentences"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Chunker    ChunkerConfig    `yaml:"chunker"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Log        LogConfig        `yaml:"log"`
}

// Environment variables that override file values.
const (
	EnvMaxChars = "DOCRAG_MAX_CHARS"
	EnvTopK     = "DOCRAG_TOP_K"
	EnvLogLevel = "DOCRAG_LOG_LEVEL"
)

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/docrag/config.yaml.
// If neither exists, it writes defaults to ~/.config/docrag/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects chunker settings that cannot make progress.
func (c *AppConfig) Validate() error {
	if c.Chunker.LinesPerChunk <= 0 {
		return fmt.Errorf("chunker.lines_per_chunk must be positive, got %d", c.Chunker.LinesPerChunk)
	}
	if c.Chunker.OverlapLines < 0 || c.Chunker.OverlapLines >= c.Chunker.LinesPerChunk {
		return fmt.Errorf("chunker.overlap_lines must be in [0, %d), got %d", c.Chunker.LinesPerChunk, c.Chunker.OverlapLines)
	}
	if c.Retrieval.MaxChars < 0 {
		return fmt.Errorf("retrieval.max_chars must not be negative, got %d", c.Retrieval.MaxChars)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docrag", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Chunker:    ChunkerConfig{Type: "lines", LinesPerChunk: 20, OverlapLines: 7},
		Retrieval:  RetrievalConfig{MaxChars: 4000, TopK: 5},
		Summarizer: SummarizerConfig{Type: "frequency", MaxSentences: 3},
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	d := defaultConfig()
	if cfg.Chunker.Type == "" {
		cfg.Chunker.Type = d.Chunker.Type
	}
	if cfg.Chunker.LinesPerChunk == 0 {
		cfg.Chunker.LinesPerChunk = d.Chunker.LinesPerChunk
		if cfg.Chunker.OverlapLines == 0 {
			cfg.Chunker.OverlapLines = d.Chunker.OverlapLines
		}
	}
	if cfg.Retrieval.MaxChars == 0 {
		cfg.Retrieval.MaxChars = d.Retrieval.MaxChars
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = d.Retrieval.TopK
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = d.Summarizer.Type
	}
	if cfg.Summarizer.MaxSentences == 0 {
		cfg.Summarizer.MaxSentences = d.Summarizer.MaxSentences
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = d.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = d.Log.Format
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v, ok := intEnv(EnvMaxChars); ok {
		cfg.Retrieval.MaxChars = v
	}
	if v, ok := intEnv(EnvTopK); ok {
		cfg.Retrieval.TopK = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

func intEnv(key string) (int, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
