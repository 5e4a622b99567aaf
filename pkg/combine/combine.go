// Package combine builds composite noise fields from simpler ones. Each
// combinator is itself a noise.Sampler, so pipelines nest arbitrarily, and
// each exposes its operator label and inputs so tooling can walk a built
// pipeline as a graph.
//
// Combinators do not renormalize: Add of two unit-range fields spans
// [-2, 2]. Use ScaleBias to bring a pipeline back into the range a consumer
// expects.
package combine

import (
	"math"

	"noise-go/pkg/noise"
)

// Node is a Sampler whose structure is visible: a short operator label and
// the inputs it combines. Leaf sources are plain Samplers and terminate the
// walk.
type Node interface {
	noise.Sampler
	Label() string
	Inputs() []noise.Sampler
}

// Add sums two fields pointwise.
type Add struct{ A, B noise.Sampler }

func NewAdd(a, b noise.Sampler) *Add { return &Add{A: a, B: b} }

func (n *Add) Sample(x, y, z float64) float64 {
	return n.A.Sample(x, y, z) + n.B.Sample(x, y, z)
}
func (n *Add) Label() string           { return "add" }
func (n *Add) Inputs() []noise.Sampler { return []noise.Sampler{n.A, n.B} }

// Min takes the pointwise minimum of two fields.
type Min struct{ A, B noise.Sampler }

func NewMin(a, b noise.Sampler) *Min { return &Min{A: a, B: b} }

func (n *Min) Sample(x, y, z float64) float64 {
	return math.Min(n.A.Sample(x, y, z), n.B.Sample(x, y, z))
}
func (n *Min) Label() string           { return "min" }
func (n *Min) Inputs() []noise.Sampler { return []noise.Sampler{n.A, n.B} }

// Max takes the pointwise maximum of two fields.
type Max struct{ A, B noise.Sampler }

func NewMax(a, b noise.Sampler) *Max { return &Max{A: a, B: b} }

func (n *Max) Sample(x, y, z float64) float64 {
	return math.Max(n.A.Sample(x, y, z), n.B.Sample(x, y, z))
}
func (n *Max) Label() string           { return "max" }
func (n *Max) Inputs() []noise.Sampler { return []noise.Sampler{n.A, n.B} }

// Multiply multiplies two fields pointwise.
type Multiply struct{ A, B noise.Sampler }

func NewMultiply(a, b noise.Sampler) *Multiply { return &Multiply{A: a, B: b} }

func (n *Multiply) Sample(x, y, z float64) float64 {
	return n.A.Sample(x, y, z) * n.B.Sample(x, y, z)
}
func (n *Multiply) Label() string           { return "multiply" }
func (n *Multiply) Inputs() []noise.Sampler { return []noise.Sampler{n.A, n.B} }

// ScaleBias maps a field through value*Scale + Bias.
type ScaleBias struct {
	Source noise.Sampler
	Scale  float64
	Bias   float64
}

// NewScaleBias wraps src with the given scale and bias.
func NewScaleBias(src noise.Sampler, scale, bias float64) *ScaleBias {
	return &ScaleBias{Source: src, Scale: scale, Bias: bias}
}

func (n *ScaleBias) Sample(x, y, z float64) float64 {
	return n.Source.Sample(x, y, z)*n.Scale + n.Bias
}
func (n *ScaleBias) Label() string           { return "scalebias" }
func (n *ScaleBias) Inputs() []noise.Sampler { return []noise.Sampler{n.Source} }

// Abs takes the pointwise absolute value of a field.
type Abs struct{ Source noise.Sampler }

func NewAbs(src noise.Sampler) *Abs { return &Abs{Source: src} }

func (n *Abs) Sample(x, y, z float64) float64 {
	return math.Abs(n.Source.Sample(x, y, z))
}
func (n *Abs) Label() string           { return "abs" }
func (n *Abs) Inputs() []noise.Sampler { return []noise.Sampler{n.Source} }

// Negate flips the sign of a field.
type Negate struct{ Source noise.Sampler }

func NewNegate(src noise.Sampler) *Negate { return &Negate{Source: src} }

func (n *Negate) Sample(x, y, z float64) float64 {
	return -n.Source.Sample(x, y, z)
}
func (n *Negate) Label() string           { return "negate" }
func (n *Negate) Inputs() []noise.Sampler { return []noise.Sampler{n.Source} }

// ScalePoint multiplies the input coordinates before sampling, raising the
// source's spatial frequency without touching its value range.
type ScalePoint struct {
	Source noise.Sampler
	Factor float64
}

func NewScalePoint(src noise.Sampler, factor float64) *ScalePoint {
	return &ScalePoint{Source: src, Factor: factor}
}

func (n *ScalePoint) Sample(x, y, z float64) float64 {
	return n.Source.Sample(x*n.Factor, y*n.Factor, z*n.Factor)
}
func (n *ScalePoint) Label() string           { return "scalepoint" }
func (n *ScalePoint) Inputs() []noise.Sampler { return []noise.Sampler{n.Source} }

// Constant is a field with the same value everywhere.
type Constant struct{ Value float64 }

func NewConstant(v float64) *Constant { return &Constant{Value: v} }

func (n *Constant) Sample(x, y, z float64) float64 { return n.Value }
func (n *Constant) Label() string                  { return "constant" }
func (n *Constant) Inputs() []noise.Sampler        { return nil }
