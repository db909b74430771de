// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// An Element is a single item stored in a Node: an opaque key located
// at the point (X, Y). Two elements are equal if their keys and both
// coordinates are equal.
type Element[K comparable] struct {
	// Key identifies the element. It is the value matched by Node.Get.
	Key K
	X   float64
	Y   float64
}
