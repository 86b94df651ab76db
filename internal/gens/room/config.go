package room

import "strconv"

// Config controls the room layout.
type Config struct {
	Width  int
	Height int

	Props Properties
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  80,
		Height: 30,
		Props:  Properties{Rooms: 12},
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
	if v, ok := cfg["rooms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Props.Rooms = parsed
		}
	}
	return c
}
