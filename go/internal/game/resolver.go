// Package game resolves the per-round state of an imposter session from a
// room code and a round key.
//
// Resolution is a pure function of its inputs: any number of independent
// processes calling with the same room code, round key, slot count, and word
// table compute the same RoundState with no coordination. Nothing here is
// cached or stored.
package game

import (
	"github.com/mcdev12/imposter/go/internal/roundclock"
	"github.com/mcdev12/imposter/go/internal/seedhash"
)

// Seed tags keep the imposter and word derivations decorrelated even though
// both share the room code and round key.
const (
	imposterTag = "-imposter-"
	wordTag     = "-word-"
)

// RoundState is the resolved state of one round. Derived on demand, never
// stored.
type RoundState struct {
	Round        int64
	ImposterSlot int
	SecretWord   string
}

// ImposterSlot returns which player slot, in [1, slotCount], holds the
// imposter for the given room and round.
//
// Caller contract: slotCount >= 1. The result never exceeds slotCount
// because the unit float is strictly below 1; no clamping is applied, and
// adding any would skew the distribution away from other deployed copies.
func ImposterSlot(roomCode, roundKey string, slotCount int) int {
	u := seedhash.HashToUnitFloat(roomCode + imposterTag + roundKey)
	return 1 + int(u*float64(slotCount))
}

// SecretWord returns the round's secret word, drawn from table by hash
// index. The table's order is part of the contract: the same index into a
// reordered table is a different word.
//
// Caller contract: len(table) >= 1.
func SecretWord(roomCode, roundKey string, table []string) string {
	u := seedhash.HashToUnitFloat(roomCode + wordTag + roundKey)
	return table[int(u*float64(len(table)))]
}

// Resolve combines both derivations for a numeric round.
func Resolve(roomCode string, round int64, slotCount int, table []string) RoundState {
	key := roundclock.Key(round)
	return RoundState{
		Round:        round,
		ImposterSlot: ImposterSlot(roomCode, key, slotCount),
		SecretWord:   SecretWord(roomCode, key, table),
	}
}
