// Package roundclock quantizes wall-clock time into shared round numbers.
//
// Two participants whose clocks agree to within the window length compute
// the same round number for the same instant, which is what lets the game
// run with no server and no network round-trip. Clock skew beyond the window
// length puts participants in different rounds; that is an accepted
// limitation of the scheme, not an error the engine detects.
package roundclock

import (
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultWindowSeconds is the standard round window length.
const DefaultWindowSeconds int64 = 120

// Number returns the round number for the given instant: the count of whole
// windows elapsed since the Unix epoch.
//
// Caller contract: windowSeconds > 0 and nowUnix >= 0.
func Number(nowUnix, windowSeconds int64) int64 {
	return nowUnix / windowSeconds
}

// SecondsUntilNext returns how many seconds remain in the current window.
// The result is always in [1, windowSeconds]: at a window boundary a full
// window remains.
func SecondsUntilNext(nowUnix, windowSeconds int64) int64 {
	return windowSeconds - nowUnix%windowSeconds
}

// Key renders a round number as the textual round key embedded in composite
// hash seeds. The decimal form is part of the cross-implementation contract.
func Key(round int64) string {
	return strconv.FormatInt(round, 10)
}

// Tracker binds a clock source to a window length so callers can ask for the
// current round without threading timestamps around. The clock is injected
// so tests can drive it with a fake.
type Tracker struct {
	clock         clockwork.Clock
	windowSeconds int64
}

// NewTracker returns a Tracker reading from the provided clock. A
// windowSeconds of 0 or less falls back to DefaultWindowSeconds.
func NewTracker(clock clockwork.Clock, windowSeconds int64) *Tracker {
	if windowSeconds <= 0 {
		windowSeconds = DefaultWindowSeconds
	}
	return &Tracker{clock: clock, windowSeconds: windowSeconds}
}

// Current returns the round number and seconds remaining at the tracker's
// current clock reading.
func (t *Tracker) Current() (round int64, remaining int64) {
	now := t.clock.Now().Unix()
	return Number(now, t.windowSeconds), SecondsUntilNext(now, t.windowSeconds)
}

// Clock returns the tracker's clock source, for callers that schedule their
// own periodic work against the same time base.
func (t *Tracker) Clock() clockwork.Clock {
	return t.clock
}

// Window returns the tracker's window length.
func (t *Tracker) Window() time.Duration {
	return time.Duration(t.windowSeconds) * time.Second
}
