package config

import (
	"fmt"
	"strings"

	"cubetest/internal/mathutil"
)

const (
	MinFramerateCap = 15
	MaxFramerateCap = 360
)

// VsyncMode is the number of display refreshes a buffer swap waits for.
type VsyncMode int

const (
	VsyncFull    VsyncMode = 1
	VsyncHalf    VsyncMode = 2
	VsyncQuarter VsyncMode = 4
	VsyncSixth   VsyncMode = 6
)

// VsyncModes lists the selectable modes in panel order.
var VsyncModes = []VsyncMode{VsyncFull, VsyncHalf, VsyncQuarter, VsyncSixth}

func (m VsyncMode) String() string {
	switch m {
	case VsyncFull:
		return "Full"
	case VsyncHalf:
		return "Half"
	case VsyncQuarter:
		return "Quarter"
	case VsyncSixth:
		return "Sixth"
	}
	return fmt.Sprintf("VsyncMode(%d)", int(m))
}

// ParseVsyncMode accepts the mode names case-insensitively.
func ParseVsyncMode(s string) (VsyncMode, error) {
	for _, m := range VsyncModes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown vsync mode %q (want full, half, quarter or sixth)", s)
}

// Window is the display state of the single window.
type Window struct {
	Width        int
	Height       int
	Fullscreen   bool
	VsyncEnabled bool
	Vsync        VsyncMode
	Unlimited    bool
	MaxFramerate int
}

// SwapInterval returns the interval to hand to the swap-interval call.
func (w Window) SwapInterval() int {
	if !w.VsyncEnabled {
		return 0
	}
	return int(w.Vsync)
}

// Resize records a new framebuffer size. Non-positive sizes (minimised
// windows) are ignored and reported as not applied.
func (w *Window) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	w.Width = width
	w.Height = height
	return true
}

// Clamp pulls the window settings into range.
func (w *Window) Clamp() {
	if w.Width <= 0 {
		w.Width = 1280
	}
	if w.Height <= 0 {
		w.Height = 720
	}
	switch w.Vsync {
	case VsyncFull, VsyncHalf, VsyncQuarter, VsyncSixth:
	default:
		w.Vsync = VsyncFull
	}
	w.MaxFramerate = mathutil.ClampInt(w.MaxFramerate, MinFramerateCap, MaxFramerateCap)
}
