// Package seed turns human-friendly names into the 32-bit seeds the table
// constructor consumes, and draws fresh seeds from the system randomness
// source. Derived seeds are stable: the same name maps to the same seed in
// every process and release, so named profiles reproduce their output.
package seed

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// deriveKey keys the name mix. Changing it would change every derived seed,
// so it is fixed for the lifetime of the project.
var deriveKey = [16]byte{
	'n', 'o', 'i', 's', 'e', '-', 'g', 'o',
	'p', 'e', 'r', 'm', 't', 'a', 'b', 'l',
}

// Derive maps a name to a deterministic 32-bit seed by folding a 64-bit
// keyed mix of the name's bytes. Any string is valid, including the empty
// one.
func Derive(name string) uint32 {
	h := mix64([]byte(name), deriveKey)
	return uint32(h>>32) ^ uint32(h)
}

// Random returns a seed drawn from crypto/rand.
func Random() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("seed: reading system randomness: %w", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// mix64 absorbs data one byte per round into a SipHash-shaped state and
// collapses it to 64 bits. The mix is not interoperable with reference
// SipHash; stability across releases is its only contract.
func mix64(data []byte, key [16]byte) uint64 {
	v0 := binary.LittleEndian.Uint64(key[0:8])
	v1 := binary.LittleEndian.Uint64(key[8:16])
	v2 := v0 ^ 0x736f6d6570736575
	v3 := v1 ^ 0x646f72616e646f6d

	round := func() {
		v0 += v1
		v2 += v3
		v1 = (v1 << 13) | (v1 >> (64 - 13))
		v3 = (v3 << 15) | (v3 >> (64 - 15))
		v0 ^= v3
		v2 ^= v1
		v1 += v2
		v3 += v0
		v2 = (v2 << 5) | (v2 >> (64 - 5))
		v0 = (v0 << 10) | (v0 >> (64 - 10))
		v3 ^= v1
		v2 ^= v0
	}

	for _, b := range data {
		v3 ^= uint64(b)
		round()
	}
	round()

	return v0 ^ v1 ^ v2 ^ v3
}
