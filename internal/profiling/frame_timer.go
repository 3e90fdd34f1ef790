package profiling

// RefreshInterval is how often the displayed frame statistics update, in seconds.
const RefreshInterval = 1.0 / 30.0

// FrameTimer derives FPS and frame time from rendered-frame timestamps.
// Values hold between refreshes so the panel text stays readable.
type FrameTimer struct {
	FPS            float64
	MillisPerFrame float64

	prev   float64
	frames int
}

// Tick records one rendered frame at time now (seconds) and reports whether
// the statistics were refreshed.
func (t *FrameTimer) Tick(now float64) bool {
	t.frames++
	elapsed := now - t.prev
	if elapsed < RefreshInterval {
		return false
	}
	t.FPS = float64(t.frames) / elapsed
	t.MillisPerFrame = elapsed / float64(t.frames) * 1000
	t.prev = now
	t.frames = 0
	return true
}
