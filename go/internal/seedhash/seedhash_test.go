package seedhash

import (
	"fmt"
	"math"
	"testing"
)

// TestHashToUint32GoldenVectors pins the rolling-hash output for known seeds.
// These values are shared with every other deployed copy of the scheme and
// must never change.
func TestHashToUint32GoldenVectors(t *testing.T) {
	tcs := []struct {
		seed string
		want uint32
	}{
		{"", 5381},
		{"A", 177638}, // 5381*33 + 65
		{"a", 177670},
		{"PINKFISH-imposter-0", 1036643870},
		{"PINKFISH-word-0", 2246968935},
	}
	for _, tc := range tcs {
		if got := HashToUint32(tc.seed); got != tc.want {
			t.Errorf("HashToUint32(%q) = %d, want %d", tc.seed, got, tc.want)
		}
	}
}

// TestHashToUnitFloatGoldenVectors pins the diffused output for known seeds.
// Expected values are the mixed uint32 divided by 2^32, which float64
// represents exactly.
func TestHashToUnitFloatGoldenVectors(t *testing.T) {
	tcs := []struct {
		seed  string
		mixed uint32
	}{
		{"", 1923223405},
		{"A", 2772057590},
		{"a", 3303243442},
		{"b", 2464349211},
		{"PINKFISH-imposter-0", 161538886},
		{"PINKFISH-word-0", 768135727},
	}
	for _, tc := range tcs {
		want := float64(tc.mixed) / 4294967296.0
		got := HashToUnitFloat(tc.seed)
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("HashToUnitFloat(%q) = %v, want %v", tc.seed, got, want)
		}
	}
}

// TestHashToUint32SurrogatePairs ensures non-BMP code points are consumed as
// UTF-16 surrogate pairs, matching the pinned enumeration convention.
func TestHashToUint32SurrogatePairs(t *testing.T) {
	// U+1F98A encodes as 0xD83E 0xDD8A.
	if got := HashToUint32("\U0001F98A"); got != 7743437 {
		t.Fatalf("HashToUint32(fox) = %d, want 7743437", got)
	}
	if got := HashToUint32("CAFÉ"); got != 2088954680 {
		t.Fatalf("HashToUint32(CAFÉ) = %d, want 2088954680", got)
	}
}

// TestHashToUnitFloatDeterminism ensures repeated calls return the identical
// bit pattern for the same seed.
func TestHashToUnitFloatDeterminism(t *testing.T) {
	seeds := []string{"", "A", "PINKFISH-word-0", "room-imposter-42", "\U0001F98A"}
	for _, seed := range seeds {
		first := HashToUnitFloat(seed)
		for i := 0; i < 10; i++ {
			if again := HashToUnitFloat(seed); math.Float64bits(again) != math.Float64bits(first) {
				t.Fatalf("HashToUnitFloat(%q) not deterministic: %v vs %v", seed, first, again)
			}
		}
	}
}

// TestHashToUnitFloatRange ensures outputs stay in [0, 1) over a varied
// sample of seeds.
func TestHashToUnitFloatRange(t *testing.T) {
	for i := 0; i < 5000; i++ {
		seed := fmt.Sprintf("ROOM%d-word-%d", i, i*7)
		u := HashToUnitFloat(seed)
		if u < 0 || u >= 1 {
			t.Fatalf("HashToUnitFloat(%q) = %v, outside [0, 1)", seed, u)
		}
	}
}

// TestHashToUnitFloatSensitivity verifies that no two distinct short seeds in
// a small corpus collide after diffusion.
func TestHashToUnitFloatSensitivity(t *testing.T) {
	letters := "ABCDE"
	seen := make(map[float64]string)
	for _, a := range letters {
		for _, b := range letters {
			for _, c := range letters {
				seed := string([]rune{a, b, c})
				u := HashToUnitFloat(seed)
				if prev, ok := seen[u]; ok {
					t.Fatalf("collision: %q and %q both hash to %v", prev, seed, u)
				}
				seen[u] = seed
			}
		}
	}
}
