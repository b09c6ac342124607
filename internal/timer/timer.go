// internal/timer/timer.go
package timer

import "time"

// warningThreshold is when the display switches to its warning state.
const warningThreshold = 5 * time.Minute

// Timer is a one-shot countdown driven by an external tick source. It
// holds a deadline rather than a decrementing counter, so remaining
// time is always derived from the clock and cannot drift. Once expired
// it never fires again until restarted.
type Timer struct {
	deadline time.Time
	running  bool
	fired    bool
}

// Start arms the countdown. Restarting re-arms a previously fired
// timer.
func (t *Timer) Start(duration time.Duration, now time.Time) {
	t.deadline = now.Add(duration)
	t.running = true
	t.fired = false
}

// Stop cancels the countdown. Idempotent; stopping a timer that is not
// running is a no-op.
func (t *Timer) Stop() {
	t.running = false
}

// Running reports whether the countdown is armed and not yet fired.
func (t *Timer) Running() bool {
	return t.running && !t.fired
}

// Remaining returns the time left, floored at zero.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if !t.running {
		return 0
	}
	remaining := t.deadline.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Warning reports whether the countdown is inside the final stretch.
// Display-only; not a separate state.
func (t *Timer) Warning(now time.Time) bool {
	return t.Running() && t.Remaining(now) < warningThreshold
}

// Tick advances the timer to now and reports whether the countdown
// expired on this tick. The expiry fires exactly once.
func (t *Timer) Tick(now time.Time) bool {
	if !t.running || t.fired {
		return false
	}
	if now.Before(t.deadline) {
		return false
	}
	t.fired = true
	return true
}
