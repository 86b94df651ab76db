package height

import "strconv"

// Config controls the height layout.
type Config struct {
	Width  int
	Height int
	Style  Style

	Props Properties
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  80,
		Height: 30,
		Style:  HeatMap,
		Props:  Properties{Iterations: 1000},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Props.Iterations = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Props.Noise = parsed
		}
	}
	if v, ok := cfg["style"]; ok {
		if parsed, err := ParseStyle(v); err == nil {
			c.Style = parsed
		}
	}
	return c
}
