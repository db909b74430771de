// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"iter"
	"slices"
	"sync"
)

// Locked wraps a Node for concurrent use. Insert takes an exclusive
// lock; all other operations share a read lock.
//
// The wrapped Node must not be used directly while it is wrapped.
type Locked[K comparable] struct {
	mu   sync.RWMutex
	node *Node[K]
}

// NewLocked wraps n. Panics if n is nil.
func NewLocked[K comparable](n *Node[K]) *Locked[K] {
	if n == nil {
		textPanic("nil node")
	}
	return &Locked[K]{node: n}
}

// Insert calls Node.Insert under the write lock.
func (l *Locked[K]) Insert(e Element[K]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.node.Insert(e)
}

// Intersect calls Node.Intersect under the read lock.
func (l *Locked[K]) Intersect(q Box) Set[K] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.node.Intersect(q)
}

// Contains calls Node.Contains under the read lock.
func (l *Locked[K]) Contains(e Element[K]) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.node.Contains(e)
}

// Get calls Node.Get under the read lock.
func (l *Locked[K]) Get(key K) (Element[K], error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.node.Get(key)
}

// Len calls Node.Len under the read lock.
func (l *Locked[K]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.node.Len()
}

// All returns an iterator over a snapshot of the tree. Each use of the
// iterator takes a new snapshot under the read lock and yields from it
// after the lock is released, so the loop body may call Insert.
func (l *Locked[K]) All() iter.Seq[Element[K]] {
	return func(yield func(Element[K]) bool) {
		l.mu.RLock()
		snapshot := slices.Collect(l.node.All())
		l.mu.RUnlock()
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

func (l *Locked[K]) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return "Locked" + l.node.String()
}
