package profiling

import (
	"math"
	"strings"
	"testing"
	"time"
)

func fakeClock(steps ...time.Duration) func() time.Time {
	base := time.Unix(0, 0)
	i := 0
	return func() time.Time {
		t := base
		if i < len(steps) {
			base = base.Add(steps[i])
		}
		i++
		return t
	}
}

func TestTrackAndTopN(t *testing.T) {
	p := New()
	// start/stop pairs advance the clock by the listed amounts
	p.now = fakeClock(4200*time.Microsecond, 0, 300*time.Microsecond, 0, 2*time.Millisecond, 0)

	p.Track("boxes.Render")()
	p.Track("panel.Build")()
	p.Track("ui.Flush")()

	got := p.TopN(2)
	want := "boxes.Render:4.2ms, ui.Flush:2ms"
	if got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if all := p.TopN(10); strings.Count(all, ",") != 2 {
		t.Errorf("TopN(10) = %q, want three entries", all)
	}
}

func TestTrackAccumulates(t *testing.T) {
	p := New()
	p.now = fakeClock(time.Millisecond, 0, time.Millisecond, 0)
	p.Track("boxes.Render")()
	p.Track("boxes.Render")()
	if got := p.Snapshot()["boxes.Render"]; got != 2*time.Millisecond {
		t.Errorf("accumulated = %v, want 2ms", got)
	}
}

func TestResetFrame(t *testing.T) {
	p := New()
	p.Track("x")()
	p.ResetFrame()
	if n := len(p.Snapshot()); n != 0 {
		t.Errorf("snapshot has %d entries after reset, want 0", n)
	}
	if got := p.TopN(3); got != "" {
		t.Errorf("TopN after reset = %q, want empty", got)
	}
}

func TestFrameTimerRefreshCadence(t *testing.T) {
	var ft FrameTimer
	// 64 frames per second for one second; 1/64 steps are exact in binary
	var refreshed []int
	for i := 1; i <= 64; i++ {
		if ft.Tick(float64(i) / 64.0) {
			refreshed = append(refreshed, i)
		}
	}
	// two frames span 1/32 s, under the 1/30 s window, so every third frame refreshes
	if len(refreshed) != 21 {
		t.Fatalf("refreshed on frames %v, want 21 refreshes", refreshed)
	}
	for n, frame := range refreshed {
		if frame != 3*(n+1) {
			t.Errorf("refresh %d on frame %d, want %d", n, frame, 3*(n+1))
		}
	}
	if ft.FPS != 64 {
		t.Errorf("FPS = %v, want 64", ft.FPS)
	}
	if ft.MillisPerFrame != 15.625 {
		t.Errorf("MillisPerFrame = %v, want 15.625", ft.MillisPerFrame)
	}
}

func TestFrameTimerHoldsBetweenRefreshes(t *testing.T) {
	var ft FrameTimer
	if !ft.Tick(0.1) {
		t.Fatalf("first tick past the window did not refresh")
	}
	fps, ms := ft.FPS, ft.MillisPerFrame
	if ft.Tick(0.11) {
		t.Fatalf("tick inside the window refreshed")
	}
	if ft.FPS != fps || ft.MillisPerFrame != ms {
		t.Errorf("values changed without refresh: %v/%v -> %v/%v", fps, ms, ft.FPS, ft.MillisPerFrame)
	}
}

func TestFrameTimerFPSTimesMillis(t *testing.T) {
	var ft FrameTimer
	for _, now := range []float64{0.01, 0.02, 0.03, 0.05} {
		ft.Tick(now)
	}
	if ft.FPS == 0 {
		t.Fatalf("no refresh happened")
	}
	if got := ft.FPS * ft.MillisPerFrame; math.Abs(got-1000) > 1e-6 {
		t.Errorf("FPS * ms = %v, want 1000", got)
	}
}
