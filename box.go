// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// Box is an axis-aligned rectangle. A Box used as the bounding box of
// a Node must have XMin < XMax and YMin < YMax. Query boxes passed to
// Node.Intersect are not validated.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.YMax - b.YMin
}

// Contains reports whether the point (x, y) lies inside the box. The
// lower bounds are inclusive and the upper bounds exclusive.
func (b Box) Contains(x, y float64) bool {
	return b.XMin <= x && x < b.XMax && b.YMin <= y && y < b.YMax
}

// Validate returns a *GeometryError if the box is degenerate or
// inverted on either axis.
func (b Box) Validate() error {
	if b.XMin < b.XMax && b.YMin < b.YMax {
		return nil
	}
	return &GeometryError{Box: b}
}

// overlaps reports whether the query box q may contain points that lie
// inside b. The receiver is treated as the half-open box: q is rejected
// if it starts at or beyond b's upper bound, or ends strictly before
// b's lower bound.
func (b *Box) overlaps(q *Box) bool {
	vertical := !(q.YMin >= b.YMax || q.YMax < b.YMin)
	horizontal := !(q.XMin >= b.XMax || q.XMax < b.XMin)
	return vertical && horizontal
}

// quadrants bisects the box at its horizontal and vertical midpoints,
// returning the four quadrant boxes in SW, SE, NE, NW order.
func (b *Box) quadrants() [4]Box {
	xm := b.Width() / 2
	ym := b.Height() / 2
	return [4]Box{
		{b.XMin, b.YMin, b.XMin + xm, b.YMin + ym},
		{b.XMin + xm, b.YMin, b.XMax, b.YMin + ym},
		{b.XMin + xm, b.YMin + ym, b.XMax, b.YMax},
		{b.XMin, b.YMin + ym, b.XMin + xm, b.YMax},
	}
}
