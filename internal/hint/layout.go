package hint

import (
	"github.com/kobzarvs/hinto/internal/element"
)

const (
	// DefaultPaddingX is the horizontal padding inside a label box.
	DefaultPaddingX = 3.0
	// DefaultHintHeight is the label box height.
	DefaultHintHeight = 13.0

	// anchorInset pulls the label up-left of the element origin so it
	// sits near, not on top of, the element's own content.
	anchorInset = 5.0
	// collisionGap separates a shifted label from the box it collided
	// with.
	collisionGap = 2.0
)

// Rect is an axis-aligned label rectangle in overlay coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Center returns the rectangle's center point.
func (r Rect) Center() element.Point {
	return element.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Pass lays out one redraw's worth of labels. Placement threads the
// already-placed list through successive Place calls, and the pass
// records each label's offset from its element anchor to the drawn box
// center, which the resolver later uses to aim the click at the
// element rather than the label chrome.
type Pass struct {
	bounds   element.Size
	paddingX float64
	height   float64
	placed   []Rect
	offsets  map[string]element.Point
}

// NewPass starts a layout pass. Zero padding/height fall back to the
// defaults.
func NewPass(bounds element.Size, paddingX, height float64) *Pass {
	if paddingX <= 0 {
		paddingX = DefaultPaddingX
	}
	if height <= 0 {
		height = DefaultHintHeight
	}
	return &Pass{
		bounds:   bounds,
		paddingX: paddingX,
		height:   height,
		offsets:  make(map[string]element.Point),
	}
}

// Place positions one label box near its element, clamped to the
// overlay and nudged off already placed boxes. Collision resolution is
// a single greedy sweep over earlier boxes: a shifted box is not
// re-checked against the ones it was already compared with, so clusters
// of three or more overlapping labels can still end up touching. That
// is an accepted approximation, kept on purpose.
func (p *Pass) Place(label string, el element.Element, textWidth float64) Rect {
	w := textWidth + 2*p.paddingX
	h := p.height

	x := el.Rel.X - anchorInset
	y := el.Rel.Y - anchorInset
	x = clamp(x, 0, p.bounds.Width-w)
	y = clamp(y, 0, p.bounds.Height-h)

	box := Rect{X: x, Y: y, W: w, H: h}
	for _, d := range p.placed {
		if box.overlaps(d) {
			box.Y = d.Y + d.H + collisionGap
			if box.Y+box.H > p.bounds.Height {
				box.Y = d.Y - box.H - collisionGap
			}
		}
	}

	p.placed = append(p.placed, box)
	center := box.Center()
	p.offsets[label] = element.Point{X: center.X - el.Rel.X, Y: center.Y - el.Rel.Y}
	return box
}

// Offsets returns the label→offset map recorded during this pass.
func (p *Pass) Offsets() map[string]element.Point {
	return p.offsets
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
