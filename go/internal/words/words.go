// Package words holds the fixed vocabulary the secret word is drawn from.
//
// The table's contents AND order are a compatibility surface: the resolver
// maps a hash index straight into the slice, so reordering or editing entries
// changes which word every deployed copy sees for a given room and round.
// Revisions append under a new Version; they never reorder.
package words

// Version identifies the current table revision.
const Version = 1

// Table is an ordered, immutable word list.
type Table []string

// Default is the version-1 table, 50 entries in document order.
var Default = Table{
	"pizza", "dragon", "mirror", "submarine", "volcano",
	"pirate", "library", "tornado", "campfire", "glacier",
	"saxophone", "lighthouse", "penguin", "carnival", "asteroid",
	"waterfall", "scarecrow", "dungeon", "hammock", "jellyfish",
	"origami", "avalanche", "telescope", "labyrinth", "parachute",
	"cactus", "iceberg", "treehouse", "tsunami", "juggler",
	"compass", "lantern", "vampire", "orchestra", "blizzard",
	"fortress", "whirlpool", "magnet", "gondola", "meteor",
	"sundial", "catapult", "aquarium", "bonfire", "hurricane",
	"pyramid", "chandelier", "zeppelin", "windmill", "skeleton",
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t)
}

// At returns the entry at index i.
func (t Table) At(i int) string {
	return t[i]
}

// Distinct reports whether every entry in the table is unique.
func (t Table) Distinct() bool {
	seen := make(map[string]struct{}, len(t))
	for _, w := range t {
		if _, ok := seen[w]; ok {
			return false
		}
		seen[w] = struct{}{}
	}
	return true
}
