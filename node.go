// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"iter"

	"github.com/sirupsen/logrus"
)

// A Quadrant identifies one of the four children of an internal Node.
// The numeric order of the quadrants is the order in which children are
// tried by Insert and Get.
type Quadrant int

const (
	SW Quadrant = iota
	SE
	NE
	NW
)

// Node is a quadtree node. The Node returned by New is the root of a
// tree; the children of an internal node are themselves Nodes rooted at
// one quadrant of their parent's bounding box.
//
// The zero value is not usable. Use New to create a Node.
type Node[K comparable] struct {
	// bbox is the region covered by the node. Only elements whose
	// points lie inside bbox are accepted.
	bbox Box
	// maxItems is the number of elements the node may hold before it
	// attempts to split.
	maxItems int
	// maxDepth is the remaining split budget. The children created by a
	// split have a budget one less than their parent's. A node with a
	// budget of zero never splits.
	maxDepth int
	// contents holds the elements stored directly in this node, in
	// insertion order. Under normal operation only leaves have
	// contents.
	contents []Element[K]
	// children is nil for a leaf. For an internal node it holds the SW,
	// SE, NE, and NW children, in that order.
	children *[4]Node[K]
	// log receives split and misplaced element events.
	log logrus.FieldLogger
}

// New creates an empty quadtree covering the bounding box bbox. New
// returns a *GeometryError, which matches ErrInvalidGeometry, if bbox
// does not satisfy XMin < XMax and YMin < YMax.
//
// Unless overridden by options, the tree uses DefaultMaxItems and
// DefaultMaxDepth.
func New[K comparable](bbox Box, opts ...Option) (*Node[K], error) {
	if err := bbox.Validate(); err != nil {
		return nil, err
	}
	c := newConfig(opts)
	return &Node[K]{
		bbox:     bbox,
		maxItems: c.maxItems,
		maxDepth: c.maxDepth,
		log:      c.log,
	}, nil
}

// Bounds returns the bounding box of the node.
func (n *Node[K]) Bounds() Box {
	return n.bbox
}

// MaxItems returns the number of elements the node may hold before it
// attempts to split.
func (n *Node[K]) MaxItems() int {
	return n.maxItems
}

// MaxDepth returns the remaining split budget of the node.
func (n *Node[K]) MaxDepth() int {
	return n.maxDepth
}

// IsLeaf reports whether the node has no children.
func (n *Node[K]) IsLeaf() bool {
	return n.children == nil
}

// Child returns the child of an internal node covering quadrant q, or
// nil if the node is a leaf. Panics if q is not a valid Quadrant.
func (n *Node[K]) Child(q Quadrant) *Node[K] {
	if q < SW || q > NW {
		fmtPanic("invalid quadrant %d", int(q))
	}
	if n.children == nil {
		return nil
	}
	return &n.children[q]
}

// Contents returns a copy of the elements stored directly in the node,
// in storage order. Elements stored in the node's children are not
// included.
func (n *Node[K]) Contents() []Element[K] {
	return append([]Element[K](nil), n.contents...)
}

// Insert stores e in the subtree rooted at n, returning true if e was
// stored and false if e's point lies outside the node's bounding box.
//
// Insert tries the children of an internal node in SW, SE, NE, NW
// order. If no child accepts e, which can only happen when
// floating-point rounding leaves a gap between the quadrants, e is
// stored directly in the internal node. A later insert accepted by a
// child clears any elements stored directly in the internal node.
func (n *Node[K]) Insert(e Element[K]) bool {
	if !n.bbox.Contains(e.X, e.Y) {
		return false
	}
	if n.children != nil {
		if n.insertChild(e) {
			n.contents = nil
			return true
		}
		n.logElement(e, "quadtree: no quadrant accepted element, storing on internal node")
	}
	n.contents = append(n.contents, e)
	if len(n.contents) > n.maxItems && n.maxDepth > 0 {
		n.split()
	}
	return true
}

// insertChild inserts e into the first child, in quadrant order, which
// accepts it.
func (n *Node[K]) insertChild(e Element[K]) bool {
	for i := range n.children {
		if n.children[i].Insert(e) {
			return true
		}
	}
	return false
}

// split creates four fresh children and moves the node's contents into
// them. Contents are redistributed last-in-first-out. An element which
// no child accepts is dropped.
func (n *Node[K]) split() {
	n.log.WithFields(logrus.Fields{
		"bounds": n.bbox.String(),
		"depth":  n.maxDepth,
		"items":  len(n.contents),
	}).Debug("quadtree: splitting node")

	boxes := n.bbox.quadrants()
	n.children = new([4]Node[K])
	for i := range n.children {
		n.children[i] = Node[K]{
			bbox:     boxes[i],
			maxItems: n.maxItems,
			maxDepth: n.maxDepth - 1,
			log:      n.log,
		}
	}

	for len(n.contents) > 0 {
		last := len(n.contents) - 1
		e := n.contents[last]
		n.contents = n.contents[:last]
		if !n.insertChild(e) {
			n.logElement(e, "quadtree: no quadrant accepted element during split, dropping it")
		}
	}
	n.contents = nil
}

func (n *Node[K]) logElement(e Element[K], msg string) {
	n.log.WithFields(logrus.Fields{
		"key":    e.Key,
		"x":      e.X,
		"y":      e.Y,
		"bounds": n.bbox.String(),
	}).Warn(msg)
}

// A nodeStack holds the pending nodes of an Intersect search.
type nodeStack[K comparable] []*Node[K]

func (s *nodeStack[K]) push(n *Node[K]) {
	*s = append(*s, n)
}

func (s *nodeStack[K]) pop() *Node[K] {
	old := *s
	last := len(old) - 1
	n := old[last]
	*s = old[:last]
	return n
}

// Intersect returns the set of elements in the subtree rooted at n
// whose points lie inside the query box q, using the same half-open
// containment test as Box.Contains.
//
// The search only descends into nodes whose bounding box overlaps q.
// The elements of an internal node are those of its four children;
// elements stored directly on an internal node are not searched.
func (n *Node[K]) Intersect(q Box) Set[K] {
	r := make(Set[K])
	s := nodeStack[K]{n}
	for len(s) > 0 {
		m := s.pop()
		if !m.bbox.overlaps(&q) {
			continue
		}
		if m.children != nil {
			for i := range m.children {
				s.push(&m.children[i])
			}
			continue
		}
		for _, e := range m.contents {
			if q.Contains(e.X, e.Y) {
				r.add(e)
			}
		}
	}
	return r
}

// Contains reports whether an element equal to e is stored anywhere in
// the subtree rooted at n, including directly on internal nodes.
func (n *Node[K]) Contains(e Element[K]) bool {
	for i := range n.contents {
		if n.contents[i] == e {
			return true
		}
	}
	if n.children != nil {
		for i := range n.children {
			if n.children[i].Contains(e) {
				return true
			}
		}
	}
	return false
}

// All returns an iterator over the elements of the subtree rooted at n.
// Each use of the iterator walks the tree afresh.
//
// If n stores elements directly, only those elements are yielded and
// n's children are not visited. Otherwise the iterator yields the
// elements of the SW, SE, NE, and NW children in turn.
func (n *Node[K]) All() iter.Seq[Element[K]] {
	return func(yield func(Element[K]) bool) {
		n.all(yield)
	}
}

func (n *Node[K]) all(yield func(Element[K]) bool) bool {
	if len(n.contents) > 0 {
		for _, e := range n.contents {
			if !yield(e) {
				return false
			}
		}
		return true
	}
	if n.children != nil {
		for i := range n.children {
			if !n.children[i].all(yield) {
				return false
			}
		}
	}
	return true
}

// Len returns the number of elements All would yield.
func (n *Node[K]) Len() int {
	if len(n.contents) > 0 {
		return len(n.contents)
	}
	var sum int
	if n.children != nil {
		for i := range n.children {
			sum += n.children[i].Len()
		}
	}
	return sum
}

// Get returns the first element whose key equals key. The children of
// an internal node are searched in SW, SE, NE, NW order; elements
// stored directly on an internal node are never considered. Within a
// leaf, elements are searched in storage order.
//
// If no element matches, Get returns a *KeyError, which matches
// ErrNotFound.
func (n *Node[K]) Get(key K) (Element[K], error) {
	if e, ok := n.get(key); ok {
		return e, nil
	}
	return Element[K]{}, &KeyError{Key: key}
}

func (n *Node[K]) get(key K) (Element[K], bool) {
	if n.children != nil {
		for i := range n.children {
			if e, ok := n.children[i].get(key); ok {
				return e, true
			}
		}
		return Element[K]{}, false
	}
	for _, e := range n.contents {
		if e.Key == key {
			return e, true
		}
	}
	return Element[K]{}, false
}
