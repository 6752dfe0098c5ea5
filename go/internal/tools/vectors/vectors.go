// Command vectors prints the derived game state for a room across a range of
// rounds. Useful for pinning golden values and for cross-checking other
// implementations of the scheme.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mcdev12/imposter/go/internal/game"
	"github.com/mcdev12/imposter/go/internal/roundclock"
	"github.com/mcdev12/imposter/go/internal/seedhash"
	"github.com/mcdev12/imposter/go/internal/words"
)

func main() {
	room := "PINKFISH"
	rounds := int64(10)
	slots := 6

	if len(os.Args) > 1 {
		room = os.Args[1]
	}
	if len(os.Args) > 2 {
		n, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse rounds: %v\n", err)
			os.Exit(1)
		}
		rounds = n
	}
	if len(os.Args) > 3 {
		n, err := strconv.Atoi(os.Args[3])
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse slots: %v\n", err)
			os.Exit(1)
		}
		slots = n
	}

	fmt.Printf("room=%s slots=%d table=v%d\n", room, slots, words.Version)
	fmt.Println("round\timposter\tword\tunit(imposter)\tunit(word)")
	for round := int64(0); round < rounds; round++ {
		key := roundclock.Key(round)
		state := game.Resolve(room, round, slots, words.Default)
		fmt.Printf("%d\t%d\t%s\t%.17g\t%.17g\n",
			round,
			state.ImposterSlot,
			state.SecretWord,
			seedhash.HashToUnitFloat(room+"-imposter-"+key),
			seedhash.HashToUnitFloat(room+"-word-"+key),
		)
	}
}
