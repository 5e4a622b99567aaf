package mapbuild

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"noise-go/pkg/noise"
	"noise-go/pkg/transform"
)

func newTestProcessor(t *testing.T) *transform.PayloadProcessor {
	t.Helper()
	proc, err := NewDefaultProcessor()
	if err != nil {
		t.Fatalf("NewDefaultProcessor failed: %v", err)
	}
	return proc
}

func buildTestGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewBuilder(noise.NewPerlin(99)).SetSize(32, 24).Build(context.Background())
	if err != nil {
		t.Fatalf("building fixture grid failed: %v", err)
	}
	return g
}

func TestGridCodecRoundTrip(t *testing.T) {
	proc := newTestProcessor(t)
	g := buildTestGrid(t)

	encoded, err := EncodeGrid(g, proc)
	if err != nil {
		t.Fatalf("EncodeGrid failed: %v", err)
	}
	decoded, err := DecodeGrid(encoded, proc)
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}
	if decoded.W != g.W || decoded.H != g.H {
		t.Fatalf("Expected a %dx%d grid, got %dx%d", g.W, g.H, decoded.W, decoded.H)
	}
	for i := range g.Values {
		if decoded.Values[i] != g.Values[i] {
			t.Fatalf("Value %d changed across the round trip: %v vs %v", i, g.Values[i], decoded.Values[i])
		}
	}
}

func TestDecodeGridRejectsBadMagic(t *testing.T) {
	proc := newTestProcessor(t)
	if _, err := DecodeGrid([]byte("JUNKJUNKJUNKJUNK"), proc); !errors.Is(err, ErrBadMagic) {
		t.Errorf("Expected ErrBadMagic, got %v", err)
	}
	if _, err := DecodeGrid([]byte("NG"), proc); !errors.Is(err, ErrBadMagic) {
		t.Errorf("Expected ErrBadMagic for short data, got %v", err)
	}
}

func TestDecodeGridRejectsBadVersion(t *testing.T) {
	proc := newTestProcessor(t)
	encoded, err := EncodeGrid(buildTestGrid(t), proc)
	if err != nil {
		t.Fatalf("EncodeGrid failed: %v", err)
	}
	encoded[4] = 9
	if _, err := DecodeGrid(encoded, proc); !errors.Is(err, ErrBadVersion) {
		t.Errorf("Expected ErrBadVersion, got %v", err)
	}
}

func TestDecodeGridRejectsDimensionMismatch(t *testing.T) {
	proc := newTestProcessor(t)
	encoded, err := EncodeGrid(buildTestGrid(t), proc)
	if err != nil {
		t.Fatalf("EncodeGrid failed: %v", err)
	}
	// Claim half the real width; the payload no longer fits the header.
	binary.LittleEndian.PutUint32(encoded[5:9], 16)
	_, err = DecodeGrid(encoded, proc)
	var sizeErr *PayloadSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("Expected a *PayloadSizeError, got %v", err)
	}
	if sizeErr.Expected != 16*24*8 || sizeErr.Actual != 32*24*8 {
		t.Errorf("Expected a 3072/6144 mismatch, got %d/%d", sizeErr.Expected, sizeErr.Actual)
	}
}

func TestDecodeGridRejectsImplausibleDimensions(t *testing.T) {
	proc := newTestProcessor(t)
	encoded, err := EncodeGrid(buildTestGrid(t), proc)
	if err != nil {
		t.Fatalf("EncodeGrid failed: %v", err)
	}
	binary.LittleEndian.PutUint32(encoded[5:9], 0)
	if _, err := DecodeGrid(encoded, proc); err == nil {
		t.Error("Expected an error for a zero-width header")
	}
}

func TestDecodeGridRejectsTruncatedPayload(t *testing.T) {
	proc := newTestProcessor(t)
	encoded, err := EncodeGrid(buildTestGrid(t), proc)
	if err != nil {
		t.Fatalf("EncodeGrid failed: %v", err)
	}
	if _, err := DecodeGrid(encoded[:headerSize+3], proc); err == nil {
		t.Error("Expected an error for a truncated payload")
	}
}
