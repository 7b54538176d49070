package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the navigator settings read from config.toml.
type Config struct {
	Selector  string
	Lame      bool
	Theme     string
	Separator string
	LogFile   string

	Prefixes Prefixes
	Border   Border

	IgnoreCase bool
}

// Prefixes are the emoji shown in widget titles and in front of folders.
type Prefixes struct {
	Search string
	List   string
	Folder string
}

// Border holds hex colors for focused and unfocused widget borders. Empty
// values use the theme's border colors.
type Border struct {
	Selected string
	Default  string
}

const (
	defaultConfigPath = "~/.config/navigator/config.toml"
	defaultSelector   = "> "
	defaultSeparator  = "\t"
	defaultBorder     = "#646464"

	defaultSearchPrefix = "🔍"
	defaultListPrefix   = "📂"
	defaultFolderPrefix = "📁"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Selector:  defaultSelector,
		Separator: defaultSeparator,
		Prefixes: Prefixes{
			Search: defaultSearchPrefix,
			List:   defaultListPrefix,
			Folder: defaultFolderPrefix,
		},
		Border: Border{Default: defaultBorder},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the navigator config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Selector  string `toml:"selector"`
		Lame      bool   `toml:"lame"`
		Theme     string `toml:"theme"`
		Separator string `toml:"separator"`
		LogFile   string `toml:"log_file"`
		Prefixes  struct {
			Search string `toml:"search"`
			List   string `toml:"list"`
			Folder string `toml:"folder"`
		} `toml:"prefixes"`
		Border struct {
			Selected string `toml:"selected"`
			Default  string `toml:"default"`
		} `toml:"border"`
		Search struct {
			IgnoreCase bool `toml:"ignore_case"`
		} `toml:"search"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// Selector and separator are taken verbatim; whitespace is meaningful.
	if raw.Selector != "" {
		cfg.Selector = raw.Selector
	}
	if raw.Separator != "" {
		cfg.Separator = raw.Separator
	}
	cfg.Lame = raw.Lame
	cfg.IgnoreCase = raw.Search.IgnoreCase
	cfg.Theme = strings.TrimSpace(raw.Theme)

	cfg.Prefixes.Search = orDefault(raw.Prefixes.Search, defaultSearchPrefix)
	cfg.Prefixes.List = orDefault(raw.Prefixes.List, defaultListPrefix)
	cfg.Prefixes.Folder = orDefault(raw.Prefixes.Folder, defaultFolderPrefix)

	if cfg.Border.Selected, err = parseColor(raw.Border.Selected, ""); err != nil {
		return Config{}, fmt.Errorf("parse config: border.selected: %w", err)
	}
	if cfg.Border.Default, err = parseColor(raw.Border.Default, defaultBorder); err != nil {
		return Config{}, fmt.Errorf("parse config: border.default: %w", err)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// parseColor accepts "#rgb" or "#rrggbb", with or without the leading hash.
func parseColor(value, fallback string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if v == "" {
		return fallback, nil
	}
	if len(v) != 3 && len(v) != 6 {
		return "", fmt.Errorf("invalid color %q", value)
	}
	for _, r := range v {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", fmt.Errorf("invalid color %q", value)
		}
	}
	return "#" + strings.ToLower(v), nil
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
