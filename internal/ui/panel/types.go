package panel

// Action is a set of requests the panel hands back to the app for the frame.
type Action int

const (
	ActionNone Action = 0
	// ActionExit asks the app to close the window.
	ActionExit Action = 1 << (iota - 1)
	// ActionSwapInterval asks the app to re-apply the vsync interval.
	ActionSwapInterval
	// ActionResolution asks the app to recompute the window size and monitor binding.
	ActionResolution
)

// Has reports whether all bits of flag are set.
func (a Action) Has(flag Action) bool {
	return a&flag == flag && flag != ActionNone
}
