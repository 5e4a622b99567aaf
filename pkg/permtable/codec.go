package permtable

import (
	"encoding/json"
	"fmt"
)

// LengthError reports a serialized table whose element count is not
// TableSize.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("permtable: table must have exactly %d elements, found %d", e.Expected, e.Actual)
}

// MarshalBinary encodes the table as exactly TableSize raw bytes in index
// order, with no framing or padding.
func (t *Table) MarshalBinary() ([]byte, error) {
	buf := make([]byte, TableSize)
	copy(buf, t.values[:])
	return buf, nil
}

// UnmarshalBinary replaces the table with the TableSize bytes of data. Any
// other length fails with a *LengthError. The bytes are not checked for
// being a permutation; callers that accept tables from untrusted inputs
// carry that trust decision themselves.
func (t *Table) UnmarshalBinary(data []byte) error {
	if len(data) != TableSize {
		return &LengthError{Expected: TableSize, Actual: len(data)}
	}
	copy(t.values[:], data)
	return nil
}

// MarshalJSON encodes the table as a JSON array of TableSize integers.
func (t *Table) MarshalJSON() ([]byte, error) {
	vals := make([]int, TableSize)
	for i, v := range t.values {
		vals[i] = int(v)
	}
	return json.Marshal(vals)
}

// UnmarshalJSON decodes a JSON array of TableSize integers, each in
// [0, 255]. Element counts other than TableSize fail with a *LengthError;
// out-of-range elements fail with a value error. As with UnmarshalBinary,
// the decoded values are not checked for being a permutation.
func (t *Table) UnmarshalJSON(data []byte) error {
	var vals []int
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if len(vals) != TableSize {
		return &LengthError{Expected: TableSize, Actual: len(vals)}
	}
	for i, v := range vals {
		if v < 0 || v > 255 {
			return fmt.Errorf("permtable: element %d out of byte range: %d", i, v)
		}
		t.values[i] = uint8(v)
	}
	return nil
}
