package noise

import "math"

// Cylinders is a seedless field of concentric cylinders around the y axis:
// the value is 1 on each integer-radius shell in the x/z plane and falls
// to -1 halfway between shells. Frequency scales the shell spacing.
type Cylinders struct {
	Frequency float64
}

// NewCylinders returns a cylinder field with frequency 1.
func NewCylinders() *Cylinders {
	return &Cylinders{Frequency: 1}
}

// Sample evaluates the field at (x, y, z); y does not contribute.
func (c *Cylinders) Sample(x, y, z float64) float64 {
	x *= c.Frequency
	z *= c.Frequency

	distFromCenter := math.Sqrt(x*x + z*z)
	distFromSmaller := distFromCenter - math.Floor(distFromCenter)
	distFromLarger := 1 - distFromSmaller
	nearest := math.Min(distFromSmaller, distFromLarger)

	return 1 - nearest*4
}
