package ui

import (
	"math"
	"strconv"

	"mapgen/internal/core"
)

const (
	defaultFloatStep = 0.05
	missingValue     = "--"
)

// Control is the HUD state of one adjustable layout parameter.
type Control struct {
	core.ParameterControl

	Text  string
	Valid bool

	intValue   int
	floatValue float64
}

// NewControls prepares HUD state for every control the layout exposes.
func NewControls(l core.Layout) []Control {
	provider, ok := l.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	defs := provider.ParameterControls()
	controls := make([]Control, len(defs))
	for i, def := range defs {
		controls[i] = Control{ParameterControl: def, Text: missingValue}
	}
	return controls
}

// Refresh reads the control's current value from snap.
func (c *Control) Refresh(snap core.ParameterSnapshot) {
	c.Valid = false
	c.Text = missingValue
	param, ok := snap.Lookup(c.Key)
	if !ok {
		return
	}
	switch c.Type {
	case core.ParamTypeInt:
		n, err := strconv.Atoi(param.Value)
		if err != nil {
			// bool parameters surface as 0/1 int controls
			b, berr := strconv.ParseBool(param.Value)
			if berr != nil {
				return
			}
			n = 0
			if b {
				n = 1
			}
		}
		c.intValue, c.floatValue = n, float64(n)
		c.Text = strconv.Itoa(n)
	case core.ParamTypeFloat:
		f, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		c.floatValue = f
		c.Text = formatFloat(c.Step, f)
	default:
		return
	}
	c.Valid = true
}

// intTarget returns the value one step in direction, clamped to the bounds,
// and whether it differs from the current value.
func (c *Control) intTarget(direction int) (int, bool) {
	step := int(math.Round(c.Step))
	if step <= 0 {
		step = 1
	}
	target := c.intValue + direction*step
	if c.HasMin {
		target = max(target, int(math.Round(c.Min)))
	}
	if c.HasMax {
		target = min(target, int(math.Round(c.Max)))
	}
	return target, target != c.intValue
}

func (c *Control) floatTarget(direction int) (float64, bool) {
	step := c.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := c.floatValue + float64(direction)*step
	if c.HasMin {
		target = max(target, c.Min)
	}
	if c.HasMax {
		target = min(target, c.Max)
	}
	return target, math.Abs(target-c.floatValue) >= 1e-9
}

// CanAdjust reports whether a step in direction would change the value.
func (c *Control) CanAdjust(l core.Layout, direction int) bool {
	if !c.Valid || direction == 0 {
		return false
	}
	switch c.Type {
	case core.ParamTypeInt:
		if _, ok := l.(core.IntParameterSetter); !ok {
			return false
		}
		_, ok := c.intTarget(direction)
		return ok
	case core.ParamTypeFloat:
		if _, ok := l.(core.FloatParameterSetter); !ok {
			return false
		}
		_, ok := c.floatTarget(direction)
		return ok
	}
	return false
}

// Adjust steps the parameter on l and reports whether the layout accepted
// the new value.
func (c *Control) Adjust(l core.Layout, direction int) bool {
	if !c.CanAdjust(l, direction) {
		return false
	}
	switch c.Type {
	case core.ParamTypeInt:
		target, _ := c.intTarget(direction)
		if !l.(core.IntParameterSetter).SetIntParameter(c.Key, target) {
			return false
		}
		c.intValue, c.floatValue = target, float64(target)
		c.Text = strconv.Itoa(target)
	case core.ParamTypeFloat:
		target, _ := c.floatTarget(direction)
		if !l.(core.FloatParameterSetter).SetFloatParameter(c.Key, target) {
			return false
		}
		c.floatValue = target
		c.Text = formatFloat(c.Step, target)
	}
	return true
}

func formatFloat(step, value float64) string {
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// StatLines formats a layout's measurements for display, one per line.
func StatLines(l core.Layout) []string {
	provider, ok := l.(core.StatsProvider)
	if !ok {
		return nil
	}
	stats := provider.Stats()
	lines := make([]string, len(stats))
	for i, s := range stats {
		lines[i] = s.Key + ": " + strconv.FormatFloat(s.Value, 'g', 4, 64)
	}
	return lines
}
