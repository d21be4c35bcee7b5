// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the sundae host configuration from a TOML file.
//
// Every field has a default, so an empty path yields a usable Config.
// Unknown keys are an error rather than being silently ignored.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"github.com/gogpu/sundae"
	"github.com/mitchellh/go-homedir"
)

// BackgroundRandom selects one of the backgrounds uniformly at random.
const BackgroundRandom = "random"

// Config is the host configuration.
type Config struct {
	Assets            string `toml:"assets"`
	Background        string `toml:"background"`
	Seed              uint64 `toml:"seed"`
	Output            string `toml:"output"`
	Trace             bool   `toml:"trace"`
	StatusDescription bool   `toml:"status_description"`
	Font              string `toml:"font"`
	Shaper            string `toml:"shaper"`

	Log    Log             `toml:"log"`
	Window Window          `toml:"window"`
	Text   Text            `toml:"text"`
	Layers map[string]Rect `toml:"layers"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Window configures the host window. Zero values keep the profile defaults.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Text overrides the status text style. Empty strings, a zero size and nil
// coordinates keep the defaults.
type Text struct {
	Color  string   `toml:"color"`
	Size   float64  `toml:"size"`
	Weight string   `toml:"weight"`
	X      *float64 `toml:"x"`
	Y      *float64 `toml:"y"`
}

// Rect overrides a layer rectangle. A nil field keeps the default.
type Rect struct {
	X *float64 `toml:"x"`
	Y *float64 `toml:"y"`
	W *float64 `toml:"w"`
	H *float64 `toml:"h"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Assets:            ".",
		Background:        BackgroundRandom,
		StatusDescription: true,
		Shaper:            "builtin",
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: expand %q: %w", path, err)
	}
	md, err := toml.DecodeFile(expanded, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode parses TOML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	sort.Strings(names)
	return fmt.Errorf("config: unknown keys: %s", strings.Join(names, ", "))
}

// Validate checks values that TOML typing cannot.
func (c Config) Validate() error {
	var errs []error
	if c.Background != BackgroundRandom {
		if _, err := sundae.ParseBackground(c.Background); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config: log.format %q: want text or json", c.Log.Format))
	}
	switch c.Shaper {
	case "builtin", "harfbuzz":
	default:
		errs = append(errs, fmt.Errorf("config: shaper %q: want builtin or harfbuzz", c.Shaper))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, errors.New("config: window size must not be negative"))
	}
	if c.Text.Weight != "" {
		if _, err := parseWeight(c.Text.Weight); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Text.Color != "" && !validHex(c.Text.Color) {
		errs = append(errs, fmt.Errorf("config: text.color %q: want #rgb, #rgba, #rrggbb or #rrggbbaa", c.Text.Color))
	}
	if c.Text.Size < 0 {
		errs = append(errs, errors.New("config: text.size must not be negative"))
	}
	for name := range c.Layers {
		switch name {
		case sundae.LayerBowl, sundae.LayerScoop, sundae.LayerSyrup:
		default:
			errs = append(errs, fmt.Errorf("config: unknown layer %q", name))
		}
	}
	return errors.Join(errs...)
}

// Profile applies the overrides in c to sundae.DefaultProfile.
func (c Config) Profile() sundae.Profile {
	p := sundae.DefaultProfile()
	if c.Window.Title != "" {
		p.Title = c.Window.Title
	}
	if c.Window.Width > 0 {
		p.Width = c.Window.Width
	}
	if c.Window.Height > 0 {
		p.Height = c.Window.Height
	}
	if c.Text.Color != "" {
		p.Text.Color = gg.Hex(c.Text.Color)
	}
	if c.Text.Size > 0 {
		p.Text.Size = c.Text.Size
	}
	if w, err := parseWeight(c.Text.Weight); err == nil && c.Text.Weight != "" {
		p.Text.Weight = w
	}
	if c.Text.X != nil {
		p.TextX = *c.Text.X
	}
	if c.Text.Y != nil {
		p.TextY = *c.Text.Y
	}
	for name, r := range c.Layers {
		switch name {
		case sundae.LayerBowl:
			p.Bowl = r.apply(p.Bowl)
		case sundae.LayerScoop:
			p.Scoop = r.apply(p.Scoop)
		case sundae.LayerSyrup:
			p.Syrup = r.apply(p.Syrup)
		}
	}
	return p
}

func (r Rect) apply(d sundae.Rect) sundae.Rect {
	if r.X != nil {
		d.X = *r.X
	}
	if r.Y != nil {
		d.Y = *r.Y
	}
	if r.W != nil {
		d.W = *r.W
	}
	if r.H != nil {
		d.H = *r.H
	}
	return d
}

// validHex reports whether s is a color gg.Hex parses exactly: an optional
// "#" followed by 3, 4, 6 or 8 hex digits.
func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func parseWeight(s string) (sundae.FontWeight, error) {
	switch strings.ToLower(s) {
	case "regular", "normal":
		return sundae.WeightRegular, nil
	case "medium":
		return sundae.WeightMedium, nil
	case "bold":
		return sundae.WeightBold, nil
	default:
		return 0, fmt.Errorf("config: text.weight %q: want regular, medium or bold", s)
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: log.level %q: want debug, info, warn or error", s)
	}
}

// NewLogger builds a logger writing to w per c.Log.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// AssetsDir returns Assets with a leading "~" expanded.
func (c Config) AssetsDir() (string, error) {
	dir, err := homedir.Expand(c.Assets)
	if err != nil {
		return "", fmt.Errorf("config: expand assets %q: %w", c.Assets, err)
	}
	if _, err := os.Stat(dir); err != nil {
		return dir, fmt.Errorf("config: assets: %w", err)
	}
	return dir, nil
}
