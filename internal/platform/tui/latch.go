package tui

import (
	"time"

	"github.com/vovakirdan/dodger/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last event.
// It must exceed the terminal's key repeat interval or held keys stutter.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyLatch turns the press/repeat events a terminal delivers into held and
// pressed states. Terminals send no key-up events, so a key is held until
// no event for it arrived within the hold window.
type KeyLatch struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	pending  map[core.Action]bool // Events since the last Frame
}

// NewKeyLatch creates a latch. A non-positive window uses DefaultHoldWindow.
func NewKeyLatch(window time.Duration) *KeyLatch {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyLatch{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
		pending:  make(map[core.Action]bool),
	}
}

// Observe records a key event for the action. Only the first event of a
// burst is a press; auto-repeat events inside the hold window just extend
// the hold.
func (l *KeyLatch) Observe(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if seen, ok := l.lastSeen[a]; !ok || now.Sub(seen) > l.window {
		l.pending[a] = true
	}
	l.lastSeen[a] = now
}

// Frame builds the input for a tick at now and starts a new pressed window.
func (l *KeyLatch) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a := range l.pending {
		in.Press(a)
		delete(l.pending, a)
	}
	for a, seen := range l.lastSeen {
		if now.Sub(seen) > l.window {
			delete(l.lastSeen, a)
			continue
		}
		in.Hold(a)
	}
	return in
}

// Reset forgets every key, so the next event of a key still held counts as
// a fresh press.
func (l *KeyLatch) Reset() {
	clear(l.lastSeen)
	clear(l.pending)
}
