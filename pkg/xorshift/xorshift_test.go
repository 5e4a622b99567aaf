package xorshift

import (
	"testing"
)

// Stream vectors below were produced by an independent implementation of
// the algorithm as documented in the package comment, so a regression here
// means the generator no longer matches the published xor128 step.

func TestNewSeedZeroStream(t *testing.T) {
	// Seed 0 expands to state bytes {1, 0, ..., 0}.
	g := New(0)
	want := []uint32{2057, 2057, 2057, 2057, 4196416, 2049, 4196424, 2057}
	for i, w := range want {
		if got := g.Uint32(); got != w {
			t.Errorf("draw %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestNewFromStateStream(t *testing.T) {
	var state [16]byte
	for i := range state {
		state[i] = byte(i + 1)
	}
	g := NewFromState(state)
	want := []uint32{201331975, 1007095212, 1745359719, 2033421, 213615140, 148210802}
	for i, w := range want {
		if got := g.Uint32(); got != w {
			t.Errorf("draw %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestNewFromStateZeroReplaced(t *testing.T) {
	g := NewFromState([16]byte{})
	want := []uint32{1788228419, 195908298, 1788231524, 195911405}
	for i, w := range want {
		if got := g.Uint32(); got != w {
			t.Errorf("draw %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestNewMatchesManualExpansion(t *testing.T) {
	const seed = 0xDEADBEEF
	var state [16]byte
	state[0] = 1
	for _, off := range []int{4, 8, 12} {
		state[off+0] = 0xEF
		state[off+1] = 0xBE
		state[off+2] = 0xAD
		state[off+3] = 0xDE
	}
	a := New(seed)
	b := NewFromState(state)
	for i := 0; i < 64; i++ {
		va, vb := a.Uint32(), b.Uint32()
		if va != vb {
			t.Fatalf("draw %d: seeded generator gave %d, expanded state gave %d", i, va, vb)
		}
	}
}

func TestUint64LowWordFirst(t *testing.T) {
	a := New(77)
	b := New(77)
	for i := 0; i < 32; i++ {
		lo := uint64(b.Uint32())
		hi := uint64(b.Uint32())
		if got, want := a.Uint64(), lo|hi<<32; got != want {
			t.Fatalf("draw %d: expected %#x, got %#x", i, want, got)
		}
	}
}

func TestUint32nWithinBound(t *testing.T) {
	g := New(12345)
	for _, bound := range []uint32{1, 2, 3, 7, 10, 100, 256, 1 << 20, 1<<32 - 1} {
		for i := 0; i < 500; i++ {
			if v := Uint32n(g, bound); v >= bound {
				t.Fatalf("bound %d: draw %d out of range: %d", bound, i, v)
			}
		}
	}
}

func TestUint32nZeroBoundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for bound 0")
		}
	}()
	Uint32n(New(1), 0)
}

func TestUint32nDeterministic(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 1000; i++ {
		bound := uint32(i%255) + 2
		va, vb := Uint32n(a, bound), Uint32n(b, bound)
		if va != vb {
			t.Fatalf("draw %d: generators diverged: %d vs %d", i, va, vb)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	vals := make([]int, 256)
	for i := range vals {
		vals[i] = i
	}
	Shuffle(New(42), len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})

	seen := make([]bool, 256)
	for _, v := range vals {
		if v < 0 || v >= 256 {
			t.Fatalf("value out of range after shuffle: %d", v)
		}
		if seen[v] {
			t.Fatalf("value %d appears twice after shuffle", v)
		}
		seen[v] = true
	}
}

func TestShuffleDeterministic(t *testing.T) {
	run := func() []int {
		vals := make([]int, 100)
		for i := range vals {
			vals[i] = i
		}
		Shuffle(New(7), len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
		return vals
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: expected %d, got %d", i, a[i], b[i])
		}
	}
}
