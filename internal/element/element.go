package element

import (
	"fmt"
	"strings"
)

// Point is a position in screen units.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair in screen units.
type Size struct {
	Width  float64
	Height float64
}

// Element is an interactive on-screen element supplied by an external
// provider (accessibility tree, UI automation, a test fixture). The core
// reads it, never mutates it.
//
// Rel is the element's position within the overlay's coordinate space,
// Abs its position on screen. The two differ by a constant translation
// (the overlay origin) fixed when the overlay opens.
type Element struct {
	Role   string
	Name   string
	Width  float64
	Height float64
	Rel    Point
	Abs    Point
}

// Candidate is an element with the provider's stable key. Candidates
// travel as ordered slices rather than maps so that label assignment
// stays reproducible for a given provider ordering.
type Candidate struct {
	Key string
	El  Element
}

// Validate reports the first structural problem with the element.
func (e Element) Validate() error {
	if e.Width < 0 || e.Height < 0 {
		return fmt.Errorf("negative size %gx%g", e.Width, e.Height)
	}
	return nil
}

// TrimmedName returns the element name with surrounding whitespace removed.
func (e Element) TrimmedName() string {
	return strings.TrimSpace(e.Name)
}
