package core

import "time"

// FixedStep paces repeated work, such as live-preview regeneration, at a
// steady rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedInterval constructs a controller that fires once per interval.
// Non-positive intervals fall back to one second.
func NewFixedInterval(d time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(d)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the time between ticks.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second
	}
	f.step = d
}

// Interval returns the time between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops accumulated time so the next tick is a full interval away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the work should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
