// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxItems is the number of elements a leaf may hold before
	// it attempts to split, unless overridden with WithMaxItems.
	DefaultMaxItems = 10
	// DefaultMaxDepth is the split budget of a new root node, unless
	// overridden with WithMaxDepth.
	DefaultMaxDepth = 10
)

// An Option configures a Node created by New.
type Option func(*config)

type config struct {
	maxItems int
	maxDepth int
	log      logrus.FieldLogger
}

// discard is the logger used when no logger is configured.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

func newConfig(opts []Option) config {
	c := config{
		maxItems: DefaultMaxItems,
		maxDepth: DefaultMaxDepth,
		log:      discard,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMaxItems sets the number of elements a leaf may hold before it
// attempts to split. Panics if n is less than 1.
func WithMaxItems(n int) Option {
	if n < 1 {
		fmtPanic("max items must be at least 1, got %d", n)
	}
	return func(c *config) {
		c.maxItems = n
	}
}

// WithMaxDepth sets the maximum number of times the root may be
// recursively split. A negative depth is clamped to 0, which produces
// a tree that never splits.
func WithMaxDepth(d int) Option {
	if d < 0 {
		d = 0
	}
	return func(c *config) {
		c.maxDepth = d
	}
}

// WithLogger sets the logger used to report splits (at debug level)
// and elements that could not be placed in any quadrant (at warn
// level). By default nothing is logged. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		textPanic("nil logger")
	}
	return func(c *config) {
		c.log = l
	}
}
