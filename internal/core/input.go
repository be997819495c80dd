package core

import "time"

// Signals is the input snapshot the engine samples once per tick.
// Held signals reflect the current pressed state; edge semantics (restart,
// pause, back) are derived by the engine from consecutive snapshots.
type Signals struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool

	Restart bool
	Pause   bool
	Back    bool

	// WheelDelta is an optional continuous rotation adjustment in radians,
	// applied directly rather than rate-based.
	WheelDelta float64
}

// Edges reports which edge-triggered signals rose between the previous
// snapshot and this one.
type Edges struct {
	Restart bool
	Pause   bool
	Back    bool
}

// RisingEdges compares this snapshot against the previous one and returns
// the signals that transitioned from released to pressed.
func (s Signals) RisingEdges(prev Signals) Edges {
	return Edges{
		Restart: s.Restart && !prev.Restart,
		Pause:   s.Pause && !prev.Pause,
		Back:    s.Back && !prev.Back,
	}
}

// HoldLatch turns discrete terminal key events into a held boolean signal.
// Terminals report key presses (and autorepeat) but never releases, so a
// press asserts the signal for a short window that each repeat refreshes.
type HoldLatch struct {
	deadline time.Time
	window   time.Duration
}

// NewHoldLatch creates a latch with the given hold window.
func NewHoldLatch(window time.Duration) *HoldLatch {
	return &HoldLatch{window: window}
}

// Press marks the signal as held starting at now.
func (l *HoldLatch) Press(now time.Time) {
	l.deadline = now.Add(l.window)
}

// Held reports whether the signal is still considered pressed at now.
func (l *HoldLatch) Held(now time.Time) bool {
	return now.Before(l.deadline)
}

// Release clears the latch immediately.
func (l *HoldLatch) Release() {
	l.deadline = time.Time{}
}
