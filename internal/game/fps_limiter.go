package game

import (
	"time"

	"cubetest/internal/config"
)

// spinMargin is left for busy polling after a sleep; yields substantially
// better precision on high FPS caps.
const spinMargin = 200 * time.Microsecond

// Governor gates frames to the configured cap when vsync is off.
// Gates sit at base + k/rate with an integer k; they advance by exactly one
// period per accepted frame and are never moved to the current time, so a
// stall is followed by catch-up frames rather than a shifted grid.
type Governor struct {
	// base is the gate reached when the rate last changed; time 0 (the GLFW
	// timer origin) until then.
	base  float64
	count int64
	rate  int
}

// NewGovernor creates a governor whose gates count from time 0.
func NewGovernor() *Governor {
	return &Governor{}
}

func (g *Governor) gating(w config.Window) bool {
	return !w.VsyncEnabled && !w.Unlimited && w.MaxFramerate > 0
}

// retarget switches to a new rate, continuing from the last gate passed.
func (g *Governor) retarget(rate int) {
	if g.rate == rate {
		return
	}
	if g.rate > 0 {
		g.base += float64(g.count) / float64(g.rate)
	}
	g.count, g.rate = 0, rate
}

func (g *Governor) nextGate() float64 {
	return g.base + float64(g.count+1)/float64(g.rate)
}

// ShouldRender reports whether a frame may be produced at time now (seconds).
// With vsync or unlimited it always does and the gates stay where they are;
// otherwise the frame is accepted once now reaches the next gate.
func (g *Governor) ShouldRender(now float64, w config.Window) bool {
	if !g.gating(w) {
		return true
	}
	g.retarget(w.MaxFramerate)
	if now < g.nextGate() {
		return false
	}
	g.count++
	return true
}

// Remaining returns the time left until the next gate, or zero when no gate applies.
func (g *Governor) Remaining(now float64, w config.Window) time.Duration {
	if !g.gating(w) {
		return 0
	}
	next := *g
	next.retarget(w.MaxFramerate)
	left := next.nextGate() - now
	if left <= 0 {
		return 0
	}
	return time.Duration(left * float64(time.Second))
}

// Pace sleeps for most of remaining and leaves the final stretch to the caller's
// polling loop.
func Pace(remaining time.Duration) {
	if remaining > spinMargin {
		time.Sleep(remaining - spinMargin)
	}
}
