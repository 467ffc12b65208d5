package core

import "time"

// FixedStep paces simulation updates at an adjustable ticks-per-second rate,
// independent of how often the host loop calls it.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Adjust changes the tick rate by delta, clamped to [lo, hi], and returns
// the new rate.
func (f *FixedStep) Adjust(delta, lo, hi int) int {
	f.SetTPS(min(max(f.tps+delta, lo), hi))
	return f.tps
}

// Reset discards accumulated time so the next step is a full interval away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
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
