// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a point quadtree: a recursive spatial index
// over a fixed rectangular region which splits into four quadrants on
// demand.
//
// A Node is both the tree and every subtree within it. A Node is either
// a leaf, holding a bounded list of elements, or an internal node,
// holding exactly four children (SW, SE, NE, NW). Leaves split when
// they hold more than their maximum item count and still have depth
// budget remaining. Internal nodes never revert to leaves.
//
// Point containment is half-open on both axes: a point (x, y) lies in
// a Box if XMin <= x < XMax and YMin <= y < YMax. This guarantees that
// a point on the shared edge of two adjacent quadrants belongs to at
// most one of them.
//
// A Node is not safe for concurrent use. Callers needing concurrent
// access must serialize writers themselves, for example by wrapping the
// tree in a Locked.
package quadtree
