package wireworld

import (
	"strconv"
	"strings"
)

// Layout names accepted by Config.Pattern besides the built-in patterns.
const (
	// LayoutClocks tiles clocks across the board.
	LayoutClocks = "clocks"
	// LayoutRandom scatters wires and heads using WireDensity and HeadChance.
	LayoutRandom = "random"
	// LayoutEmpty leaves the board blank for drawing.
	LayoutEmpty = "empty"
)

// Config controls the Wireworld simulation dimensions and initial layout.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Pattern is a layout name or the name of a built-in pattern, which is
	// stamped in the centre of the board.
	Pattern string

	WireDensity float64
	HeadChance  float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       64,
		Height:      64,
		Seed:        1,
		Pattern:     LayoutClocks,
		WireDensity: 0.35,
		HeadChance:  0.05,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out of range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if v = strings.TrimSpace(v); v != "" {
			c.Pattern = v
		}
	}
	if v, ok := cfg["wire_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.WireDensity = parsed
		}
	}
	if v, ok := cfg["head_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.HeadChance = parsed
		}
	}
	return c
}
