package pipe

import (
	"strconv"
	"strings"
)

// Config controls the pipe layout's dimensions and network shape.
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
		Props: Properties{
			BackboneSeeds: 20,
			RegularSeeds:  []int{40, 40, 60},
		},
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
	if v, ok := cfg["backbone"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Props.BackboneSeeds = parsed
		}
	}
	if v, ok := cfg["regular"]; ok {
		if tiers, ok := ParseTiers(v); ok {
			c.Props.RegularSeeds = tiers
		}
	}
	if v, ok := cfg["interconnect"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Props.Interconnect = parsed
		}
	}
	return c
}

// ParseTiers parses a comma separated list of non-negative seed goals. An
// empty string is a valid, empty list.
func ParseTiers(s string) ([]int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, true
	}
	parts := strings.Split(s, ",")
	tiers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, false
		}
		tiers = append(tiers, n)
	}
	return tiers, true
}

// FormatTiers is the inverse of ParseTiers.
func FormatTiers(tiers []int) string {
	parts := make([]string, len(tiers))
	for i, n := range tiers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
