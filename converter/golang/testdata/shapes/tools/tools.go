// Package tools builds shapes.
package tools

// Build returns a build label.
func Build() string {
	return "shapes"
}
