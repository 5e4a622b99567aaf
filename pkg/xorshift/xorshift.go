// Package xorshift implements George Marsaglia's xor128 generator
// ("Xorshift RNGs", Journal of Statistical Software, 2003), a four-word
// generator with a period of 2^128-1 that steps with three shift-xor
// rounds per draw.
//
// The package exists for reproducibility rather than statistical strength:
// every operation is defined on fixed-width integers only, so a given state
// yields the same stream on every platform and in every faithful port of
// the algorithm. Nothing here is cryptographically secure.
package xorshift

import (
	"encoding/binary"
	"math/bits"
)

// replacementWord fills in for the all-zero state, which xor128 would
// otherwise never leave.
const replacementWord = 0x0BAD5EED

// Source supplies a stream of uniform 32-bit words.
type Source interface {
	Uint32() uint32
}

// XorShift128 holds the four words of xor128 state. The zero value is not
// usable; construct with New or NewFromState.
type XorShift128 struct {
	x, y, z, w uint32
}

// New returns a generator seeded from a single 32-bit seed. The seed is
// widened to the full 16-byte state by setting byte 0 to 1 and repeating
// the seed little-endian over the three remaining words, so distinct seeds
// always produce distinct states and seed 0 stays usable.
func New(seed uint32) *XorShift128 {
	var state [16]byte
	state[0] = 1
	binary.LittleEndian.PutUint32(state[4:8], seed)
	binary.LittleEndian.PutUint32(state[8:12], seed)
	binary.LittleEndian.PutUint32(state[12:16], seed)
	return NewFromState(state)
}

// NewFromState returns a generator whose four words are read little-endian
// from state. An all-zero state is replaced with four copies of 0x0BAD5EED.
func NewFromState(state [16]byte) *XorShift128 {
	g := &XorShift128{
		x: binary.LittleEndian.Uint32(state[0:4]),
		y: binary.LittleEndian.Uint32(state[4:8]),
		z: binary.LittleEndian.Uint32(state[8:12]),
		w: binary.LittleEndian.Uint32(state[12:16]),
	}
	if g.x == 0 && g.y == 0 && g.z == 0 && g.w == 0 {
		g.x, g.y, g.z, g.w = replacementWord, replacementWord, replacementWord, replacementWord
	}
	return g
}

// Uint32 advances the generator and returns the next word of the stream.
func (g *XorShift128) Uint32() uint32 {
	t := g.x ^ (g.x << 11)
	g.x, g.y, g.z = g.y, g.z, g.w
	g.w = g.w ^ (g.w >> 19) ^ (t ^ (t >> 8))
	return g.w
}

// Uint64 builds a 64-bit value from two consecutive draws, low word first.
func (g *XorShift128) Uint64() uint64 {
	lo := uint64(g.Uint32())
	hi := uint64(g.Uint32())
	return lo | hi<<32
}

// Uint32n returns a uniform draw in [0, bound) taken from src. Each 32-bit
// draw is widened to a 64-bit product with the bound and the high word is
// kept; low words beyond the unbiased zone are rejected and redrawn. The
// procedure consumes exactly one draw per attempt and accepts on the first
// attempt for all but a vanishing fraction of draws.
//
// Uint32n panics if bound is 0.
func Uint32n(src Source, bound uint32) uint32 {
	if bound == 0 {
		panic("xorshift: Uint32n with zero bound")
	}
	zone := (bound << bits.LeadingZeros32(bound)) - 1
	for {
		m := uint64(src.Uint32()) * uint64(bound)
		if uint32(m) <= zone {
			return uint32(m >> 32)
		}
	}
}

// Shuffle permutes n elements with the Fisher-Yates algorithm, walking from
// the highest index down and drawing each swap partner through Uint32n.
// swap exchanges the elements at the two indices it is given. n must fit
// in a uint32.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(Uint32n(src, uint32(i)+1))
		swap(i, j)
	}
}
