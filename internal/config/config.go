package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures roster's settings.
type Config struct {
	Fixture  string // empty uses the embedded fixture
	PageSize int
	LogDir   string
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/roster/config.toml"
	defaultLogDir     = "~/.local/share/roster/logs"
	defaultLogLevel   = "info"
	defaultPageSize   = 20
)

// Environment overrides, applied after the config file.
const (
	EnvFixture  = "ROSTER_FIXTURE"
	EnvPageSize = "ROSTER_PAGE_SIZE"
	EnvLogLevel = "ROSTER_LOG_LEVEL"
)

// Load locates and parses the roster config, falling back to defaults when
// missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{PageSize: defaultPageSize, LogDir: mustExpand(defaultLogDir), LogLevel: defaultLogLevel}

	bytes, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return applyEnv(cfg)
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Fixture  string `toml:"fixture"`
		PageSize int    `toml:"page_size"`
		LogDir   string `toml:"log_dir"`
		LogLevel string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if fixture := strings.TrimSpace(raw.Fixture); fixture != "" {
		cfg.Fixture = mustExpand(fixture)
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	return applyEnv(cfg)
}

func applyEnv(cfg Config) (Config, error) {
	if v := strings.TrimSpace(os.Getenv(EnvFixture)); v != "" {
		cfg.Fixture = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvPageSize)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s: invalid page size %q", EnvPageSize, v)
		}
		cfg.PageSize = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg, nil
}

// LogPath returns the link that always points at the current log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/roster.log")
	}
	return filepath.Join(c.LogDir, "roster.log")
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

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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

