// Package seedhash derives deterministic pseudorandom values from text seeds.
//
// Every participant in a round computes game state independently from the
// same seed strings, so the functions here must return bit-identical results
// across processes, platforms, and versions. The constants and operation
// order are a stable compatibility surface; changing any of them desyncs
// this build from every other deployed copy of the scheme.
package seedhash

import "unicode/utf16"

// HashToUint32 folds a seed string into an unsigned 32-bit value using a
// djb2-style rolling hash (accumulator 5381, multiplier 33, wrapping mod
// 2^32).
//
// Seeds are consumed as UTF-16 code units, so a code point above 0xFFFF
// contributes its surrogate pair in order. Room codes are uppercase ASCII in
// practice, for which this is identical to per-byte enumeration.
//
// The output is NOT uniformly distributed; it is the warm-up stage for
// HashToUnitFloat, not a randomness source on its own.
func HashToUint32(seed string) uint32 {
	var acc uint32 = 5381
	for _, cu := range utf16.Encode([]rune(seed)) {
		acc = acc*33 + uint32(cu)
	}
	return acc
}

// HashToUnitFloat maps a seed string to a uniform float64 in [0, 1).
//
// The rolling hash is diffused through a fixed xorshift/multiply finalizer
// before division by 2^32. Given the same seed, the result is the identical
// floating-point bit pattern on every run; given seeds differing in a single
// character, the results are decorrelated.
func HashToUnitFloat(seed string) float64 {
	h := HashToUint32(seed)
	h ^= h >> 17
	h *= 0xed5ad4bb
	h ^= h >> 11
	h *= 0xac4c1b51
	h ^= h >> 15
	h *= 0x31848bab
	h ^= h >> 14
	return float64(h) / 4294967296.0
}
