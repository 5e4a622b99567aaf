// Package permtable provides the seed-derived permutation table that backs
// coordinate hashing for procedural noise. A table is a shuffled copy of
// the byte values 0..255; hashing folds any number of lattice coordinates
// through the table and yields a byte in [0, 255] that downstream noise
// functions use to pick per-corner randomness.
//
// Construction is fully deterministic: a given 32-bit seed produces the
// same table on every platform, in every process and on every run. Seeding
// and shuffling are defined exclusively in terms of the fixed-width
// generator in pkg/xorshift, so independent implementations of the same
// procedure reproduce tables bit for bit.
package permtable

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"noise-go/pkg/xorshift"
)

// TableSize is the number of entries in a permutation table.
const TableSize = 256

// Source supplies the uniform 32-bit draws a shuffle consumes. Any
// xorshift.Source satisfies it.
type Source interface {
	Uint32() uint32
}

// Hasher maps lattice coordinates to a value in [0, 255]. Implementations
// must be deterministic and accept any number of coordinates greater than
// zero. Noise functions consume this interface rather than a concrete
// table, so alternative hashing substrates can be substituted.
type Hasher interface {
	Hash(index ...int) int
}

// Table is a permutation of the byte values 0..255, fixed at construction.
// Copying a Table with plain assignment yields an independent table. The
// zero value is all zeros rather than a permutation; use New, NewFromSource
// or Random to obtain one.
//
// *Table implements Hasher, encoding.BinaryMarshaler/Unmarshaler and
// json.Marshaler/Unmarshaler.
type Table struct {
	values [TableSize]uint8
}

// New builds the table for seed. The seed is expanded to the generator's
// 16-byte state with byte 0 set to 1 and the seed repeated little-endian
// over bytes 4..15, then the identity table is shuffled by Fisher-Yates
// with bounded draws from the resulting stream. Identical seeds always
// yield identical tables.
func New(seed uint32) Table {
	return NewFromSource(xorshift.New(seed))
}

// NewFromSource builds a table by shuffling the identity permutation with
// draws taken from src. No global random state is consulted; a
// deterministic src yields a deterministic table.
func NewFromSource(src Source) Table {
	var t Table
	for i := range t.values {
		t.values[i] = uint8(i)
	}
	xorshift.Shuffle(src, TableSize, func(i, j int) {
		t.values[i], t.values[j] = t.values[j], t.values[i]
	})
	return t
}

// Random builds a table from a crypto/rand-seeded generator state. If the
// system randomness source fails, the state falls back to the clock.
func Random() Table {
	var state [16]byte
	if _, err := rand.Read(state[:]); err != nil {
		binary.LittleEndian.PutUint64(state[0:8], uint64(time.Now().UnixNano()))
		binary.LittleEndian.PutUint64(state[8:16], uint64(time.Now().UnixNano()))
	}
	return NewFromSource(xorshift.NewFromState(state))
}

// Hash folds the coordinates through the table and returns a value in
// [0, 255]. Each coordinate contributes only its low byte, so the hash is
// periodic with period 256 along every axis and negative coordinates wrap.
// A single coordinate indexes the table directly.
//
// Hash panics if called with no coordinates; callers must supply at least
// one. The method does not allocate and is safe for concurrent use on a
// shared table.
func (t *Table) Hash(index ...int) int {
	if len(index) == 0 {
		panic("permtable: Hash requires at least one coordinate")
	}
	acc := index[0] & 0xff
	for _, v := range index[1:] {
		acc = int(t.values[acc]) ^ (v & 0xff)
	}
	return int(t.values[acc])
}

// String identifies the value without exposing table contents.
func (t *Table) String() string {
	return "PermutationTable{..}"
}
