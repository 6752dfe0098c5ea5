// Package reveal is the caller-side layer between the pure engine and a
// presentation surface. It owns everything the engine deliberately does not:
// input validation, room-code normalization, assembling the per-player view,
// and the periodic countdown refresh.
package reveal

import (
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/imposter/go/internal/game"
	"github.com/mcdev12/imposter/go/internal/roundclock"
	"github.com/mcdev12/imposter/go/internal/words"
)

// Config carries everything a session needs. It is explicit input on every
// App; there is no package-level session state anywhere in the repo.
type Config struct {
	// RoomCode is the shared room identifier. Normalized to uppercase
	// before it reaches the engine; the engine itself is case-sensitive.
	RoomCode string

	// SlotCount is how many player slots exist this session.
	SlotCount int

	// Slot is this player's chosen slot, in [1, SlotCount].
	Slot int

	// WindowSeconds is the round window length. Zero selects the default.
	WindowSeconds int64
}

// Validate fails fast on inputs the engine would otherwise silently accept.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RoomCode) == "" {
		return ErrEmptyRoomCode
	}
	if c.SlotCount < 1 {
		return ErrInvalidSlotCount
	}
	if c.Slot < 1 || c.Slot > c.SlotCount {
		return ErrSlotOutOfRange
	}
	if c.WindowSeconds < 0 {
		return ErrInvalidWindow
	}
	return nil
}

// View is what a single player is allowed to see for the current round.
// SecretWord is empty when the player is the imposter.
type View struct {
	Round            int64
	SecondsRemaining int64
	Slot             int
	IsImposter       bool
	SecretWord       string
}

// App resolves per-player views for one configured session.
type App struct {
	roomCode  string
	slotCount int
	slot      int
	tracker   *roundclock.Tracker
	table     words.Table
}

// NewApp validates the config and builds an App reading time from the
// provided clock. The word table defaults to the current versioned table
// when nil.
func NewApp(cfg Config, clock clockwork.Clock, table words.Table) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if table == nil {
		table = words.Default
	}
	return &App{
		roomCode:  strings.ToUpper(strings.TrimSpace(cfg.RoomCode)),
		slotCount: cfg.SlotCount,
		slot:      cfg.Slot,
		tracker:   roundclock.NewTracker(clock, cfg.WindowSeconds),
		table:     table,
	}, nil
}

// RoomCode returns the normalized room code the app resolves with.
func (a *App) RoomCode() string {
	return a.roomCode
}

// Reveal computes this player's view of the current round. Stateless: every
// call re-derives from the clock and the configured inputs.
func (a *App) Reveal() View {
	round, remaining := a.tracker.Current()
	state := game.Resolve(a.roomCode, round, a.slotCount, a.table)

	view := View{
		Round:            round,
		SecondsRemaining: remaining,
		Slot:             a.slot,
		IsImposter:       state.ImposterSlot == a.slot,
	}
	if !view.IsImposter {
		view.SecretWord = state.SecretWord
	}

	log.Debug().
		Str("room_code", a.roomCode).
		Int64("round", round).
		Int64("seconds_remaining", remaining).
		Bool("is_imposter", view.IsImposter).
		Msg("resolved player view")

	return view
}
