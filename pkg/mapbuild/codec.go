package mapbuild

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"

	"noise-go/pkg/transform"
)

// Encoded grid framing: a fixed header identifying the format and raster
// dimensions, followed by the transformed float64 payload.
const (
	gridMagic   = "NGRD"
	gridVersion = 1
	headerSize  = 4 + 1 + 4 + 4
)

// maxGridBytes caps the decoded payload a header may announce.
const maxGridBytes = 1 << 31

var (
	// ErrBadMagic reports data that is not an encoded grid.
	ErrBadMagic = errors.New("mapbuild: not an encoded grid")
	// ErrBadVersion reports an encoded grid from an unknown format
	// revision.
	ErrBadVersion = errors.New("mapbuild: unsupported grid version")
)

// PayloadSizeError reports a decoded payload whose size disagrees with the
// dimensions in the header.
type PayloadSizeError struct {
	Expected int
	Actual   int
}

func (e *PayloadSizeError) Error() string {
	return fmt.Sprintf("mapbuild: grid payload must be %d bytes, found %d", e.Expected, e.Actual)
}

// NewDefaultProcessor returns the standard grid payload pipeline: a single
// zstd stage at the default level.
func NewDefaultProcessor() (*transform.PayloadProcessor, error) {
	zs, err := transform.NewZstdTransform(zstd.SpeedDefault)
	if err != nil {
		return nil, err
	}
	return transform.NewPayloadProcessor([]transform.Transform{zs})
}

// EncodeGrid frames g and runs its payload through proc. The payload is
// the grid's values as little-endian float64 bits in row-major order.
func EncodeGrid(g *Grid, proc *transform.PayloadProcessor) ([]byte, error) {
	payload := make([]byte, 8*len(g.Values))
	for i, v := range g.Values {
		binary.LittleEndian.PutUint64(payload[i*8:], math.Float64bits(v))
	}
	packed, err := proc.PrepareOutput(payload)
	if err != nil {
		return nil, fmt.Errorf("mapbuild: encoding grid payload: %w", err)
	}

	out := make([]byte, headerSize+len(packed))
	copy(out, gridMagic)
	out[4] = gridVersion
	binary.LittleEndian.PutUint32(out[5:9], uint32(g.W))
	binary.LittleEndian.PutUint32(out[9:13], uint32(g.H))
	copy(out[headerSize:], packed)
	return out, nil
}

// DecodeGrid reverses EncodeGrid with the same pipeline. The header is
// validated before the payload is touched; a payload whose size disagrees
// with the header fails with a *PayloadSizeError.
func DecodeGrid(data []byte, proc *transform.PayloadProcessor) (*Grid, error) {
	if len(data) < headerSize || string(data[:4]) != gridMagic {
		return nil, ErrBadMagic
	}
	if data[4] != gridVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, data[4])
	}
	w := int(binary.LittleEndian.Uint32(data[5:9]))
	h := int(binary.LittleEndian.Uint32(data[9:13]))
	if w < 1 || h < 1 || uint64(w)*uint64(h)*8 > maxGridBytes {
		return nil, fmt.Errorf("mapbuild: implausible grid dimensions %dx%d", w, h)
	}

	payload, err := proc.ParseInput(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("mapbuild: decoding grid payload: %w", err)
	}
	if len(payload) != w*h*8 {
		return nil, &PayloadSizeError{Expected: w * h * 8, Actual: len(payload)}
	}

	g := NewGrid(w, h)
	for i := range g.Values {
		g.Values[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
	}
	return g, nil
}
