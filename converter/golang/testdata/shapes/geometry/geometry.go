// Package geometry holds geometry helpers.
package geometry

// Pi is an approximation of pi.
const Pi = 3.14159

// Distance returns the distance between two points on a line.
func Distance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
