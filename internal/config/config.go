package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config is the root configuration for dietbook, stored in ~/.dietbook/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// DataDir is the directory holding the food log and profile files.
	DataDir string `json:"data_dir"`
	// FoodFile is the food log file name inside DataDir.
	FoodFile string `json:"food_file"`
	// ProfileFile is the profile file name inside DataDir.
	ProfileFile string `json:"profile_file"`
	// CatalogFile is the optional food database inside DataDir.
	CatalogFile string `json:"catalog_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
}

const (
	// DefaultDataDir keeps the data files in the working directory.
	DefaultDataDir     = "."
	DefaultFoodFile    = "FoodList.txt"
	DefaultProfileFile = "UserInfo.txt"
	DefaultCatalogFile = "FoodData.txt"
	DefaultLogLevel    = "warn"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		DataDir:     DefaultDataDir,
		FoodFile:    DefaultFoodFile,
		ProfileFile: DefaultProfileFile,
		CatalogFile: DefaultCatalogFile,
		LogLevel:    DefaultLogLevel,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// dietbook configuration – ~/.dietbook/config.json
//
// All settings are optional; the built-in defaults shown below keep the data
// files next to where dietbook is started.
{
  // Directory holding the food log and the profile.
  // Relative paths are resolved against the working directory.
  "data_dir": ".",

  // Food log file, one entry per line.
  "food_file": "FoodList.txt",

  // Profile file, a single line.
  "profile_file": "UserInfo.txt",

  // Food database, one food per line: store|name|calorie|carbohydrate|protein|fat.
  // A built-in database is used while this file does not exist.
  "catalog_file": "FoodData.txt",

  // Diagnostics written to stderr: debug, info, warn or error.
  "log_level": "warn"
}
`

// FoodPath returns the full path of the food log.
func (c Config) FoodPath() string {
	return filepath.Join(c.DataDir, c.FoodFile)
}

// ProfilePath returns the full path of the profile.
func (c Config) ProfilePath() string {
	return filepath.Join(c.DataDir, c.ProfileFile)
}

// CatalogPath returns the full path of the food database.
func (c Config) CatalogPath() string {
	return filepath.Join(c.DataDir, c.CatalogFile)
}

// SlogLevel maps LogLevel to a slog level, defaulting to warn.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// configFilePath returns the path to ~/.dietbook/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".dietbook", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.dietbook/config.json, creating it with annotated defaults on
// first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path, writing the annotated template if
// it does not exist yet. Lines starting with // are treated as comments and
// stripped before JSON parsing.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.FoodFile == "" {
		cfg.FoodFile = DefaultFoodFile
	}
	if cfg.ProfileFile == "" {
		cfg.ProfileFile = DefaultProfileFile
	}
	if cfg.CatalogFile == "" {
		cfg.CatalogFile = DefaultCatalogFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
