package reveal

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Sink receives the refreshed view once per tick. Implementations render it
// however they like; the engine stays uncoupled from the display mechanism.
type Sink interface {
	Display(view View)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(view View)

// Display calls f(view).
func (f SinkFunc) Display(view View) {
	f(view)
}

// Run pushes the current view to sink once per second until ctx is
// cancelled. The initial view is pushed immediately so the display is never
// blank for the first second. Round transitions are logged as they happen.
func (a *App) Run(ctx context.Context, sink Sink) error {
	ticker := a.tracker.Clock().NewTicker(time.Second)
	defer ticker.Stop()

	view := a.Reveal()
	sink.Display(view)
	lastRound := view.Round

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("room_code", a.roomCode).Msg("countdown refresher stopping")
			return ctx.Err()
		case <-ticker.Chan():
			view = a.Reveal()
			if view.Round != lastRound {
				log.Info().
					Str("room_code", a.roomCode).
					Int64("round", view.Round).
					Msg("round rolled over")
				lastRound = view.Round
			}
			sink.Display(view)
		}
	}
}
