// Package config loads the optional JSON configuration file of pixpath.
//
// Every field is a pointer so that an absent key can be told apart from a
// zero value; the Get* accessors apply defaults for absent keys.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pixpath/gridgraph"
	"github.com/katalvlaran/pixpath/raster"
	"github.com/katalvlaran/pixpath/render"
)

const maxFileSize = 1 << 20

// ErrBadColour indicates a colour string that is not "#rrggbb".
var ErrBadColour = errors.New("config: colour must be \"#rrggbb\"")

// Config is the on-disk configuration.
type Config struct {
	Threshold *int           `json:"threshold,omitempty"`
	Palette   *PaletteConfig `json:"palette,omitempty"`
	LogLevel  *string        `json:"log_level,omitempty"`
	Parallel  *bool          `json:"parallel,omitempty"`
}

// PaletteConfig holds the three mark colours as "#rrggbb" strings.
type PaletteConfig struct {
	Start    *string `json:"start,omitempty"`
	Explored *string `json:"explored,omitempty"`
	Path     *string `json:"path,omitempty"`
}

// Empty returns a configuration with no keys set.
func Empty() *Config {
	return &Config{}
}

// Load reads and validates a JSON configuration file.
func Load(path string) (*Config, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks ranges, colour syntax, the log level and that no palette
// colour would itself be dark under the configured threshold.
func (c *Config) Validate() error {
	if c.Threshold != nil && (*c.Threshold < 0 || *c.Threshold > 255) {
		return fmt.Errorf("threshold must be between 0 and 255, got %d", *c.Threshold)
	}
	if c.LogLevel != nil {
		if _, err := ParseLevel(*c.LogLevel); err != nil {
			return err
		}
	}
	p, err := c.GetPalette()
	if err != nil {
		return err
	}

	return p.Validate(c.GetThreshold())
}

// GetThreshold returns the threshold value or the default.
func (c *Config) GetThreshold() uint8 {
	if c.Threshold == nil || *c.Threshold < 0 || *c.Threshold > 255 {
		return gridgraph.DefaultThreshold
	}
	return uint8(*c.Threshold)
}

// GetPalette returns the configured palette, falling back per colour to the
// default palette.
func (c *Config) GetPalette() (render.Palette, error) {
	p := render.DefaultPalette()
	if c.Palette == nil {
		return p, nil
	}
	for _, f := range []struct {
		name string
		src  *string
		dst  *raster.RGB
	}{
		{"palette.start", c.Palette.Start, &p.Start},
		{"palette.explored", c.Palette.Explored, &p.Explored},
		{"palette.path", c.Palette.Path, &p.Path},
	} {
		if f.src == nil {
			continue
		}
		rgb, err := ParseColour(*f.src)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %w", f.name, err)
		}
		*f.dst = rgb
	}

	return p, nil
}

// GetLogLevel returns the log_level value or slog.LevelInfo.
func (c *Config) GetLogLevel() slog.Level {
	if c.LogLevel == nil {
		return slog.LevelInfo
	}
	l, err := ParseLevel(*c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// HasLogLevel reports whether log_level was set.
func (c *Config) HasLogLevel() bool { return c.LogLevel != nil }

// GetParallel returns the parallel value or false.
func (c *Config) GetParallel() bool {
	if c.Parallel == nil {
		return false
	}
	return *c.Parallel
}

// ParseLevel accepts debug, info, warn and error (any case).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return l, nil
}

// ParseColour parses "#rrggbb" (the leading '#' is optional).
func ParseColour(s string) (raster.RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return raster.RGB{}, fmt.Errorf("%w: %q", ErrBadColour, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return raster.RGB{}, fmt.Errorf("%w: %q", ErrBadColour, s)
	}

	return raster.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
