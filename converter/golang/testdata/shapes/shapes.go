// Package shapes describes drawable shapes.
//
//docmerge:mergeTarget
//docmerge:categoryDescription Models\nShape models.
package shapes

// Shape is anything with an area.
//
//docmerge:category Models
type Shape interface {
	Area() float64
}

// Unit is the measure used by every shape.
type Unit string

// Square is a shape with equal sides.
type Square struct {
	Side float64
}

// Area returns the square area.
func (s Square) Area() float64 {
	return s.Side * s.Side
}

// NewSquare creates a square.
func NewSquare(side float64) *Square {
	return &Square{Side: side}
}

const (
	Small Unit = "s"
	Large Unit = "l"
)

// Version of the package.
var Version = "1.0"

var internalCounter int
