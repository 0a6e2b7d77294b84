package core

const (
	// DefaultTickInterval paces one generation per quarter second at speed 1.
	DefaultTickInterval = 0.25

	minSpeed = 1
	maxSpeed = 5
)

// Ticker decides when a generation step is due. It accumulates wall-clock
// time scaled by an adjustable speed multiplier and fires once per
// threshold crossing.
type Ticker struct {
	progress float64
	interval float64
	speed    int
	paused   bool
}

// NewTicker constructs a Ticker firing every interval seconds at speed 1.
func NewTicker(interval float64) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Ticker{interval: interval, speed: minSpeed}
}

// Advance consumes one frame's elapsed seconds and reports whether a
// generation step is due. The due check runs before any new time is
// accumulated, so a step that was already due fires even while paused,
// and a long frame spike can never schedule more than one step: the
// excess progress is discarded when it fires, not carried over.
func (t *Ticker) Advance(dt float64) bool {
	if t.progress >= t.interval {
		t.progress = 0
		return true
	}
	if !t.paused && dt > 0 {
		t.progress += float64(t.speed) * dt
	}
	return false
}

// TogglePause flips the paused flag.
func (t *Ticker) TogglePause() { t.paused = !t.paused }

// Paused reports whether accumulation is suspended.
func (t *Ticker) Paused() bool { return t.paused }

// SpeedUp raises the speed multiplier, clamped to the allowed range.
func (t *Ticker) SpeedUp() {
	if t.speed < maxSpeed {
		t.speed++
	}
}

// SlowDown lowers the speed multiplier, clamped to the allowed range.
func (t *Ticker) SlowDown() {
	if t.speed > minSpeed {
		t.speed--
	}
}

// Speed returns the current multiplier in [1, 5].
func (t *Ticker) Speed() int { return t.speed }

// Progress exposes the accumulated fraction of the current interval.
func (t *Ticker) Progress() float64 { return t.progress }
