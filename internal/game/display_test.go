package game

import (
	"fmt"
	"testing"

	"cubetest/internal/config"
)

type fakeDisplay struct {
	nativeW, nativeH int
	calls            []string
}

func (f *fakeDisplay) NativeMode() (int, int) { return f.nativeW, f.nativeH }

func (f *fakeDisplay) Fullscreen(w, h int) {
	f.calls = append(f.calls, fmt.Sprintf("fullscreen %dx%d", w, h))
}

func (f *fakeDisplay) Windowed(x, y, w, h int) {
	f.calls = append(f.calls, fmt.Sprintf("windowed %d,%d %dx%d", x, y, w, h))
}

func (f *fakeDisplay) SwapInterval(n int) {
	f.calls = append(f.calls, fmt.Sprintf("swap %d", n))
}

func (f *fakeDisplay) Viewport(w, h int) {
	f.calls = append(f.calls, fmt.Sprintf("viewport %dx%d", w, h))
}

func TestWindowedRect(t *testing.T) {
	tests := []struct {
		nw, nh     int
		x, y, w, h int
	}{
		{1920, 1080, 320, 180, 1280, 720},
		{2560, 1440, 426, 240, 1706, 960},
		{1366, 768, 227, 128, 910, 512},
		{3840, 2160, 640, 360, 2560, 1440},
	}
	for _, tt := range tests {
		x, y, w, h := WindowedRect(tt.nw, tt.nh)
		if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
			t.Errorf("WindowedRect(%d, %d) = %d,%d %dx%d, want %d,%d %dx%d",
				tt.nw, tt.nh, x, y, w, h, tt.x, tt.y, tt.w, tt.h)
		}
	}
}

func TestApplyResolution(t *testing.T) {
	tests := []struct {
		name       string
		fullscreen bool
		vsync      bool
		mode       config.VsyncMode
		want       []string
		w, h       int
	}{
		{
			name:       "enter fullscreen",
			fullscreen: true, vsync: true, mode: config.VsyncHalf,
			want: []string{"fullscreen 1920x1080", "swap 2", "viewport 1920x1080"},
			w:    1920, h: 1080,
		},
		{
			name:       "leave fullscreen",
			fullscreen: false, vsync: false, mode: config.VsyncFull,
			want: []string{"windowed 320,180 1280x720", "swap 0", "viewport 1280x720"},
			w:    1280, h: 720,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeDisplay{nativeW: 1920, nativeH: 1080}
			win := config.Defaults().Window
			win.Width, win.Height = 640, 480
			win.Fullscreen = tt.fullscreen
			win.VsyncEnabled = tt.vsync
			win.Vsync = tt.mode

			ApplyResolution(sys, &win)

			if win.Width != tt.w || win.Height != tt.h {
				t.Errorf("window size = %dx%d, want %dx%d", win.Width, win.Height, tt.w, tt.h)
			}
			if fmt.Sprint(sys.calls) != fmt.Sprint(tt.want) {
				t.Errorf("calls = %v, want %v", sys.calls, tt.want)
			}
		})
	}
}

func TestApplyResolutionRequeriesNativeMode(t *testing.T) {
	sys := &fakeDisplay{nativeW: 1920, nativeH: 1080}
	win := config.Defaults().Window
	win.Fullscreen = true
	ApplyResolution(sys, &win)

	// monitor mode changed while fullscreen
	sys.nativeW, sys.nativeH = 2560, 1440
	win.Fullscreen = false
	ApplyResolution(sys, &win)
	if win.Width != 1706 || win.Height != 960 {
		t.Errorf("windowed size = %dx%d, want 1706x960", win.Width, win.Height)
	}
}

func TestOnFramebufferResize(t *testing.T) {
	win := config.Defaults().Window
	var got []string
	viewport := func(w, h int) { got = append(got, fmt.Sprintf("%dx%d", w, h)) }

	OnFramebufferResize(&win, 800, 600, viewport)
	OnFramebufferResize(&win, 0, 600, viewport)
	OnFramebufferResize(&win, 800, -1, viewport)

	if win.Width != 800 || win.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", win.Width, win.Height)
	}
	if len(got) != 1 || got[0] != "800x600" {
		t.Errorf("viewport calls = %v, want [800x600]", got)
	}
}
