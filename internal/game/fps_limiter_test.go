package game

import (
	"testing"
	"time"

	"cubetest/internal/config"
)

func cappedWindow(fps int) config.Window {
	w := config.Defaults().Window
	w.VsyncEnabled = false
	w.Unlimited = false
	w.MaxFramerate = fps
	return w
}

func TestGovernorPassThrough(t *testing.T) {
	tests := []struct {
		name   string
		window config.Window
	}{
		{"vsync", config.Defaults().Window},
		{"unlimited", func() config.Window { w := cappedWindow(60); w.Unlimited = true; return w }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGovernor()
			for i := 0; i < 1000; i++ {
				if !g.ShouldRender(float64(i)*1e-6, tt.window) {
					t.Fatalf("frame %d rejected", i)
				}
			}
			if r := g.Remaining(0, tt.window); r != 0 {
				t.Errorf("Remaining = %v, want 0", r)
			}
		})
	}
}

func TestGovernorAcceptsCapPerSecond(t *testing.T) {
	tests := []int{15, 60, 120, 144, 360}
	for _, fps := range tests {
		g := NewGovernor()
		w := cappedWindow(fps)
		accepted := 0
		// poll every 0.1 ms over [0, 1] s
		for i := 0; i <= 10000; i++ {
			if g.ShouldRender(float64(i)/10000, w) {
				accepted++
			}
		}
		// gates at 1/F, 2/F, ..., F/F
		if accepted != fps {
			t.Errorf("fps %d: accepted %d frames, want %d", fps, accepted, fps)
		}
	}
}

func TestGovernorNoDrift(t *testing.T) {
	g := NewGovernor()
	w := cappedWindow(120)
	accepted := 0
	// ten seconds of polling in 0.25 ms steps
	for i := 0; i <= 40000; i++ {
		if g.ShouldRender(float64(i)/4000, w) {
			accepted++
		}
	}
	if accepted != 1200 {
		t.Errorf("accepted %d frames in 10 s, want 1200", accepted)
	}
}

func TestGovernorGatesCountFromStart(t *testing.T) {
	g := NewGovernor()
	w := cappedWindow(100)
	polls := []struct {
		now  float64
		want bool
	}{
		{0, false},
		{0.0099, false},
		{0.01, true},
		{0.015, false},
		{0.02, true},
	}
	for _, p := range polls {
		if got := g.ShouldRender(p.now, w); got != p.want {
			t.Errorf("ShouldRender(%v) = %v, want %v", p.now, got, p.want)
		}
	}
}

func TestGovernorStallKeepsGrid(t *testing.T) {
	g := NewGovernor()
	w := cappedWindow(100)
	polls := []struct {
		now  float64
		want bool
	}{
		{0, false},
		{0.5055, true},
		// the gate at 2/F is still pending after the stall
		{0.51, true},
		{0.52, true},
	}
	for _, p := range polls {
		if got := g.ShouldRender(p.now, w); got != p.want {
			t.Errorf("ShouldRender(%v) = %v, want %v", p.now, got, p.want)
		}
	}
}

func TestGovernorCatchesUpAfterStall(t *testing.T) {
	g := NewGovernor()
	w := cappedWindow(100)
	if !g.ShouldRender(0.01, w) {
		t.Fatalf("first gate rejected")
	}

	// stall, then poll every 0.1 ms up to 0.6 s
	accepted := 0
	for i := 5055; i <= 6000; i++ {
		if g.ShouldRender(float64(i)/10000, w) {
			accepted++
		}
	}
	// gates 2/F .. 60/F, none skipped
	if accepted != 59 {
		t.Errorf("accepted %d frames after the stall, want 59", accepted)
	}
	if r := g.Remaining(0.6, w); r < 9900*time.Microsecond || r > 10100*time.Microsecond {
		t.Errorf("Remaining = %v, want about 10ms (next gate at 0.61)", r)
	}
}

func TestGovernorRateChangeContinuesFromLastGate(t *testing.T) {
	g := NewGovernor()
	w := cappedWindow(100)
	g.ShouldRender(0.01, w)
	g.ShouldRender(0.02, w)

	// next gate moves to 0.02 + 1/50
	w.MaxFramerate = 50
	if r := g.Remaining(0.03, w); r < 9900*time.Microsecond || r > 10100*time.Microsecond {
		t.Errorf("Remaining after rate change = %v, want about 10ms", r)
	}
	if g.ShouldRender(0.03, w) {
		t.Errorf("frame accepted before the 0.04 gate")
	}
	if !g.ShouldRender(0.0401, w) {
		t.Errorf("frame at the 0.04 gate rejected")
	}
	if g.ShouldRender(0.05, w) {
		t.Errorf("frame accepted before the 0.06 gate")
	}
}

func TestGovernorVsyncLeavesGates(t *testing.T) {
	g := NewGovernor()
	w := cappedWindow(100)
	g.ShouldRender(0.01, w)

	vs := w
	vs.VsyncEnabled = true
	for i := 0; i < 100; i++ {
		g.ShouldRender(0.5, vs)
	}

	// back to the cap: the 0.02 gate is still next
	if r := g.Remaining(0.015, w); r < 4900*time.Microsecond || r > 5100*time.Microsecond {
		t.Errorf("Remaining = %v, want about 5ms", r)
	}
	if g.ShouldRender(0.015, w) {
		t.Errorf("frame before the 0.02 gate accepted")
	}
}

func TestGovernorRemaining(t *testing.T) {
	g := NewGovernor()
	w := cappedWindow(100)
	g.ShouldRender(0.01, w)
	got := g.Remaining(0.014, w)
	if got < 5900*time.Microsecond || got > 6100*time.Microsecond {
		t.Errorf("Remaining = %v, want about 6ms", got)
	}
	if r := g.Remaining(0.03, w); r != 0 {
		t.Errorf("Remaining past the gate = %v, want 0", r)
	}
}
