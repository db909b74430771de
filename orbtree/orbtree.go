// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package orbtree exposes a quadtree through the planar geometry types
// of github.com/paulmach/orb.
//
// Containment keeps the half-open semantics of package quadtree: a
// point on the Max edge of an orb.Bound is outside the bound, unlike
// orb.Bound.Contains.
package orbtree

import (
	"github.com/gogama/quadtree"
	"github.com/paulmach/orb"
)

// BoxFromBound converts an orb.Bound to a quadtree.Box.
func BoxFromBound(b orb.Bound) quadtree.Box {
	return quadtree.Box{
		XMin: b.Min.X(),
		YMin: b.Min.Y(),
		XMax: b.Max.X(),
		YMax: b.Max.Y(),
	}
}

// BoundFromBox converts a quadtree.Box to an orb.Bound.
func BoundFromBox(b quadtree.Box) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.XMin, b.YMin},
		Max: orb.Point{b.XMax, b.YMax},
	}
}

// A Feature is a keyed point returned by Tree.InBound.
type Feature[K comparable] struct {
	Key   K
	Point orb.Point
}

func featureOf[K comparable](e quadtree.Element[K]) Feature[K] {
	return Feature[K]{Key: e.Key, Point: orb.Point{e.X, e.Y}}
}

func elementOf[K comparable](key K, p orb.Point) quadtree.Element[K] {
	return quadtree.Element[K]{Key: key, X: p.X(), Y: p.Y()}
}

// Tree is a quadtree of keyed orb.Point values.
type Tree[K comparable] struct {
	index *quadtree.Node[K]
}

// New creates an empty Tree covering b. The options are passed through
// to quadtree.New, and the error, if any, matches
// quadtree.ErrInvalidGeometry.
func New[K comparable](b orb.Bound, opts ...quadtree.Option) (*Tree[K], error) {
	index, err := quadtree.New[K](BoxFromBound(b), opts...)
	if err != nil {
		return nil, err
	}
	return &Tree[K]{index: index}, nil
}

// Insert stores p under key, returning false if p is outside the tree's
// bound.
func (t *Tree[K]) Insert(key K, p orb.Point) bool {
	return t.index.Insert(elementOf(key, p))
}

// InBound returns the distinct features whose points lie inside b. The
// order of the result is not defined.
func (t *Tree[K]) InBound(b orb.Bound) []Feature[K] {
	s := t.index.Intersect(BoxFromBound(b))
	fs := make([]Feature[K], 0, s.Len())
	for e := range s.All() {
		fs = append(fs, featureOf(e))
	}
	return fs
}

// Contains reports whether p is stored under key.
func (t *Tree[K]) Contains(key K, p orb.Point) bool {
	return t.index.Contains(elementOf(key, p))
}

// Get returns the point stored under key, following the lookup order of
// quadtree.Node.Get. The error, if any, matches quadtree.ErrNotFound.
func (t *Tree[K]) Get(key K) (orb.Point, error) {
	e, err := t.index.Get(key)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{e.X, e.Y}, nil
}

// Bound returns the bound covered by the tree.
func (t *Tree[K]) Bound() orb.Bound {
	return BoundFromBox(t.index.Bounds())
}

// Len returns the number of features in the tree, as quadtree.Node.Len.
func (t *Tree[K]) Len() int {
	return t.index.Len()
}

// Index returns the underlying quadtree.
func (t *Tree[K]) Index() *quadtree.Node[K] {
	return t.index
}

func (t *Tree[K]) String() string {
	return "orbtree." + t.index.String()
}
