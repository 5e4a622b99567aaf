// Package transform provides reversible payload transforms and the ordered
// pipeline grid payloads pass through on their way to disk or the wire.
package transform

// Transform is a reversible payload transformation. Reverse must undo
// Apply exactly: Reverse(Apply(p)) equals p for every payload.
type Transform interface {
	Apply(data []byte) ([]byte, error)
	Reverse(data []byte) ([]byte, error)
}

type noOpTransform struct{}

// NewNoOpTransform returns the identity transform.
func NewNoOpTransform() Transform                            { return &noOpTransform{} }
func (n *noOpTransform) Apply(data []byte) ([]byte, error)   { return data, nil }
func (n *noOpTransform) Reverse(data []byte) ([]byte, error) { return data, nil }
