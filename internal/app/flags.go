package app

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"mapgen/internal/core"
)

// ErrBadSetting is returned by KeyValues.Set for arguments without a key.
var ErrBadSetting = errors.New("app: setting must look like key=value")

// KeyValues is a repeatable key=value flag. Later values win.
type KeyValues map[string]string

func (kv KeyValues) String() string {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + kv[k]
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value argument.
func (kv KeyValues) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return fmt.Errorf("%w: %q", ErrBadSetting, s)
	}
	kv[k] = strings.TrimSpace(v)
	return nil
}

// Config represents the command-line parameters shared by the entry points.
type Config struct {
	Layout string
	Width  int
	Height int
	Seed   uint64
	Set    KeyValues

	Colour bool
	PNG    string
	Scale  int
	Loop   bool
	Delay  time.Duration

	TPS      int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Layout:   "pipe",
		Set:      KeyValues{},
		Scale:    8,
		Delay:    time.Second,
		TPS:      60,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Layout, "layout", c.Layout, "layout to generate ("+strings.Join(core.LayoutNames(), ", ")+")")
	fs.IntVar(&c.Width, "w", c.Width, "map width in cells (0 keeps the layout default)")
	fs.IntVar(&c.Height, "h", c.Height, "map height in cells (0 keeps the layout default)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "generation seed (0 picks a random one)")
	fs.Var(c.Set, "set", "layout setting as key=value; repeatable")
	fs.BoolVar(&c.Colour, "colour", c.Colour, "print 24-bit ANSI colour")
	fs.StringVar(&c.PNG, "png", c.PNG, "also write the map to this PNG file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell for PNG output and the viewer")
	fs.BoolVar(&c.Loop, "loop", c.Loop, "keep generating with fresh seeds")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between maps with -loop")
}

// BindViewer adds the flags only the GUI viewer understands.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	c.Bind(fs)
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// Settings returns the layout configuration map: every -set pair plus the
// dimensions when they were given.
func (c *Config) Settings() map[string]string {
	out := make(map[string]string, len(c.Set)+2)
	for k, v := range c.Set {
		out[k] = v
	}
	if c.Width > 0 {
		out["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		out["h"] = strconv.Itoa(c.Height)
	}
	return out
}

// ErrUnknownLayout is returned by NewLayout for unregistered names.
var ErrUnknownLayout = errors.New("app: unknown layout")

// NewLayout builds the configured layout.
func (c *Config) NewLayout() (core.Layout, error) {
	factory, ok := core.Layouts()[c.Layout]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownLayout, c.Layout, strings.Join(core.LayoutNames(), ", "))
	}
	return factory(c.Settings()), nil
}

// ResolveSeed replaces a zero seed with a random non-zero one and reports
// whether it did.
func (c *Config) ResolveSeed() bool {
	if c.Seed != 0 {
		return false
	}
	c.Seed = randomSeed()
	return true
}

func randomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}
