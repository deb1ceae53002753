// Package config holds the calendar widget's YAML-backed settings: the
// visible and working hour windows, badge rendering options and pixel
// scale. Settings are configuration, not derived data; the layout core
// receives them as plain values and never reads them ambiently.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"bigcal/internal/layout"
)

// BadgeVariant selects how month badges render their color.
const (
	BadgeColored = "colored"
	BadgeDot     = "dot"
	BadgeMixed   = "mixed"
)

// HourWindow is a {from, to} hour pair, from inclusive, to exclusive.
type HourWindow struct {
	From int `yaml:"from" json:"from"`
	To   int `yaml:"to" json:"to"`
}

// Config is the widget configuration.
type Config struct {
	// BadgeVariant is one of colored, dot or mixed.
	BadgeVariant string `yaml:"badge_variant" json:"badge_variant"`

	// VisibleHours is the hour window day and week views render. It may
	// be widened at layout time to fit out-of-bounds events, never
	// narrowed.
	VisibleHours HourWindow `yaml:"visible_hours" json:"visible_hours"`

	// WorkingHours maps weekday (0=Sunday..6=Saturday) onto the window
	// marked as business hours. A {0,0} entry means no working hours
	// that day.
	WorkingHours map[int]HourWindow `yaml:"working_hours" json:"working_hours"`

	// HourHeight is the rendered pixel height of one hour in day/week
	// views.
	HourHeight float64 `yaml:"hour_height" json:"hour_height"`

	// BlockGutter is the pixel gap kept between stacked event blocks.
	BlockGutter float64 `yaml:"block_gutter" json:"block_gutter"`

	// DarkMode is carried for the rendering collaborators; the layout
	// core ignores it.
	DarkMode bool `yaml:"dark_mode" json:"dark_mode"`
}

// DefaultConfig returns the in-memory defaults: visible 07-18, working
// hours Monday-Friday 08-17 and Saturday 08-12, reference pixel scale.
func DefaultConfig() *Config {
	return &Config{
		BadgeVariant: BadgeColored,
		VisibleHours: HourWindow{From: 7, To: 18},
		WorkingHours: map[int]HourWindow{
			0: {From: 0, To: 0},
			1: {From: 8, To: 17},
			2: {From: 8, To: 17},
			3: {From: 8, To: 17},
			4: {From: 8, To: 17},
			5: {From: 8, To: 17},
			6: {From: 8, To: 12},
		},
		HourHeight:  96,
		BlockGutter: 8,
	}
}

// Normalize fills missing or out-of-range values with defaults so that a
// partially filled config still behaves.
func (c *Config) Normalize() {
	switch c.BadgeVariant {
	case BadgeColored, BadgeDot, BadgeMixed:
	default:
		c.BadgeVariant = BadgeColored
	}

	if c.VisibleHours.From < 0 || c.VisibleHours.From > 23 ||
		c.VisibleHours.To <= c.VisibleHours.From || c.VisibleHours.To > 24 {
		c.VisibleHours = HourWindow{From: 7, To: 18}
	}

	if c.WorkingHours == nil {
		c.WorkingHours = DefaultConfig().WorkingHours
	}

	if c.HourHeight <= 0 {
		c.HourHeight = 96
	}
	if c.BlockGutter < 0 {
		c.BlockGutter = 8
	}
}

// VisibleHourRange converts the configured window into the layout type.
func (c *Config) VisibleHourRange() layout.HourRange {
	return layout.HourRange{From: c.VisibleHours.From, To: c.VisibleHours.To}
}

// WorkingHourMap converts the weekday-indexed windows into the layout type.
func (c *Config) WorkingHourMap() layout.WorkingHours {
	wh := make(layout.WorkingHours, len(c.WorkingHours))
	for day, w := range c.WorkingHours {
		if day < 0 || day > 6 {
			continue
		}
		wh[time.Weekday(day)] = layout.HourRange{From: w.From, To: w.To}
	}
	return wh
}

// Scale converts the pixel settings into the layout type.
func (c *Config) Scale() layout.Scale {
	return layout.Scale{HourHeight: c.HourHeight, Gutter: c.BlockGutter}
}

// Load reads configuration from the given YAML path. A missing file is
// treated as a first run: the defaults are written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename, 0600).
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".bigcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
