// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"iter"
	"maps"
	"slices"
)

// Set is an unordered collection of distinct elements, returned by
// Node.Intersect. Equal elements stored more than once in a tree
// appear once in a Set. Iteration order is not defined.
type Set[K comparable] map[Element[K]]struct{}

// Has reports whether e is in the set.
func (s Set[K]) Has(e Element[K]) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[K]) Len() int {
	return len(s)
}

// All returns an iterator over the elements of the set, in no
// particular order.
func (s Set[K]) All() iter.Seq[Element[K]] {
	return maps.Keys(s)
}

// Slice returns the elements of the set as a new slice, in no
// particular order.
func (s Set[K]) Slice() []Element[K] {
	return slices.Collect(maps.Keys(s))
}

func (s Set[K]) add(e Element[K]) {
	s[e] = struct{}{}
}
