package hint

import (
	"testing"

	"github.com/kobzarvs/hinto/internal/element"
)

func testElementAt(x, y float64) element.Element {
	return element.Element{
		Width:  30,
		Height: 20,
		Rel:    element.Point{X: x, Y: y},
		Abs:    element.Point{X: x, Y: y},
	}
}

func TestPlaceAnchorsNearElement(t *testing.T) {
	pass := NewPass(testBounds, 0, 0)
	box := pass.Place("S", testElementAt(100, 100), 10)
	if box.X != 95 || box.Y != 95 {
		t.Fatalf("box at (%g, %g), want (95, 95)", box.X, box.Y)
	}
	if box.W != 16 || box.H != 13 {
		t.Fatalf("box size %gx%g, want 16x13", box.W, box.H)
	}
}

func TestPlaceClampsToBounds(t *testing.T) {
	pass := NewPass(testBounds, 0, 0)
	box := pass.Place("S", testElementAt(-20, -20), 10)
	if box.X != 0 || box.Y != 0 {
		t.Fatalf("box at (%g, %g), want (0, 0)", box.X, box.Y)
	}

	pass = NewPass(testBounds, 0, 0)
	box = pass.Place("A", testElementAt(2000, 2000), 10)
	if box.X != testBounds.Width-box.W || box.Y != testBounds.Height-box.H {
		t.Fatalf("box at (%g, %g), want bottom-right corner", box.X, box.Y)
	}
}

func TestPlaceStaysInBoundsAcrossEnvelope(t *testing.T) {
	el := testElementAt(0, 0)
	for x := -el.Width; x <= testBounds.Width+el.Width; x += 17 {
		for y := -el.Height; y <= testBounds.Height+el.Height; y += 13 {
			el.Rel = element.Point{X: x, Y: y}
			pass := NewPass(testBounds, 0, 0)
			box := pass.Place("S", el, 10)
			if box.X < 0 || box.Y < 0 || box.X+box.W > testBounds.Width || box.Y+box.H > testBounds.Height {
				t.Fatalf("box (%g, %g, %g, %g) escapes bounds for element at (%g, %g)",
					box.X, box.Y, box.W, box.H, x, y)
			}
		}
	}
}

func TestPlacePushesCollidingLabelDown(t *testing.T) {
	pass := NewPass(testBounds, 0, 0)
	first := pass.Place("S", testElementAt(100, 100), 10)
	second := pass.Place("A", testElementAt(102, 101), 10)
	wantY := first.Y + first.H + 2
	if second.Y != wantY {
		t.Fatalf("second box Y = %g, want %g", second.Y, wantY)
	}
}

func TestPlacePushesUpWhenOffBottom(t *testing.T) {
	pass := NewPass(testBounds, 0, 0)
	first := pass.Place("S", testElementAt(100, 2000), 10)
	second := pass.Place("A", testElementAt(101, 2000), 10)
	wantY := first.Y - second.H - 2
	if second.Y != wantY {
		t.Fatalf("second box Y = %g, want %g", second.Y, wantY)
	}
}

func TestPassRecordsCenterOffsets(t *testing.T) {
	pass := NewPass(testBounds, 0, 0)
	box := pass.Place("S", testElementAt(100, 100), 10)
	off, ok := pass.Offsets()["S"]
	if !ok {
		t.Fatal("no offset recorded for S")
	}
	wantX := box.X + box.W/2 - 100
	wantY := box.Y + box.H/2 - 100
	if off.X != wantX || off.Y != wantY {
		t.Fatalf("offset = (%g, %g), want (%g, %g)", off.X, off.Y, wantX, wantY)
	}
}

func TestPassCustomMetrics(t *testing.T) {
	pass := NewPass(testBounds, 1, 1)
	box := pass.Place("S", testElementAt(100, 100), 2)
	if box.W != 4 || box.H != 1 {
		t.Fatalf("box size %gx%g, want 4x1", box.W, box.H)
	}
}
