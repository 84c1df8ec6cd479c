// Package config manages hip-key configuration: defaults, file loading,
// environment overrides, validation, and platform directory resolution.
//
// Configuration is read from TOML, JSON, or YAML files. Start from
// DefaultConfig and layer a file and HIPKEY_* environment variables on
// top; a zero Config fails validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds all hip-key configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Input selects the language pack and typing method.
	Input InputConfig `toml:"input" json:"input" yaml:"input"`

	// Dictionary configures candidate lookup.
	Dictionary DictionaryConfig `toml:"dictionary" json:"dictionary" yaml:"dictionary"`

	// Logging configures log output.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`

	// IBus configures the Linux input-bus engine.
	IBus IBusConfig `toml:"ibus" json:"ibus" yaml:"ibus"`

	mu sync.RWMutex `toml:"-" json:"-" yaml:"-"`
}

// InputConfig selects which language pack handles keystrokes and how.
type InputConfig struct {
	// Method is the typing scheme: "telex" or "vni".
	Method string `toml:"method" json:"method" yaml:"method"`

	// Pack is the language pack identifier. Only "vi" ships today.
	Pack string `toml:"pack" json:"pack" yaml:"pack"`
}

// DictionaryConfig configures the word dictionary used for candidates.
type DictionaryConfig struct {
	// Enabled turns candidate lookup on.
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file.
	Path string `toml:"path" json:"path" yaml:"path"`

	// CandidateLimit caps how many candidates a lookup returns.
	CandidateLimit int `toml:"candidate_limit" json:"candidate_limit" yaml:"candidate_limit"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, or error.
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is "stdout", "stderr", "file", or "both".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the log file when Output includes a file.
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`
}

// IBusConfig configures the Linux input-bus engine.
type IBusConfig struct {
	// CommitOnFocusOut commits the composing text when the input
	// context loses focus instead of discarding it.
	CommitOnFocusOut bool `toml:"commit_on_focus_out" json:"commit_on_focus_out" yaml:"commit_on_focus_out"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	dataDir := HipkeyDir()

	return &Config{
		Version: Version,
		Input: InputConfig{
			Method: "telex",
			Pack:   "vi",
		},
		Dictionary: DictionaryConfig{
			Enabled:        true,
			Path:           filepath.Join(dataDir, "dict.db"),
			CandidateLimit: 8,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stderr",
			FilePath: filepath.Join(dataDir, "hipkey.log"),
		},
		IBus: IBusConfig{
			CommitOnFocusOut: true,
		},
	}
}

// HipkeyDir returns the hip-key data directory. The HIPKEY_DATA_DIR
// environment variable overrides the platform default.
func HipkeyDir() string {
	if dir := os.Getenv("HIPKEY_DATA_DIR"); dir != "" {
		return dir
	}
	return PlatformDataDir()
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(PlatformConfigDir(), "config.toml")
}

// Load reads configuration from a file. An empty path means the default
// location, and a missing file yields the defaults with HIPKEY_*
// overrides applied. The format is selected by extension; unknown
// extensions are parsed as TOML.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults stand in for a missing file.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			err = json.Unmarshal(data, cfg)
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, cfg)
		default:
			err = toml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// expandPaths resolves leading ~ in user-supplied paths.
func (c *Config) expandPaths() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Dictionary.Path = expandPath(c.Dictionary.Path)
	c.Logging.FilePath = expandPath(c.Logging.FilePath)
}

// ApplyEnvOverrides applies HIPKEY_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v := os.Getenv("HIPKEY_INPUT_METHOD"); v != "" {
		c.Input.Method = v
	}
	if v := os.Getenv("HIPKEY_DICT_PATH"); v != "" {
		c.Dictionary.Path = v
	}
	if v := os.Getenv("HIPKEY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HIPKEY_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Config{
		Version:    c.Version,
		Input:      c.Input,
		Dictionary: c.Dictionary,
		Logging:    c.Logging,
		IBus:       c.IBus,
	}
}

// Method returns the configured input method name.
func (c *Config) Method() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Input.Method
}

// DictionaryPath returns the dictionary database path.
func (c *Config) DictionaryPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Dictionary.Path
}

// LogPath returns the log file path.
func (c *Config) LogPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Logging.FilePath
}

// EnsureDirectories creates the directories the configuration points at.
func (c *Config) EnsureDirectories() error {
	c.mu.RLock()
	dirs := []string{
		HipkeyDir(),
		filepath.Dir(c.Dictionary.Path),
		filepath.Dir(c.Logging.FilePath),
	}
	c.mu.RUnlock()

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// SaveConfig writes the configuration to a file. The format is selected
// by extension; unknown extensions are written as TOML. The write is
// atomic: a temporary file is renamed into place.
func SaveConfig(cfg *Config, path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = encodeTOML(cfg)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

func encodeTOML(cfg *Config) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# hip-key configuration\n\n")
	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
