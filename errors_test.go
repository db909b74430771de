// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("textErr", func(t *testing.T) {
		assert.EqualError(t, textErr("foo"), "quadtree: foo")
	})

	t.Run("textPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "quadtree: foo", func() {
			textPanic("foo")
		})
	})

	t.Run("fmtPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "quadtree: my bar is baz-ed to 10", func() {
			fmtPanic("my %s is %s-ed to %d", "bar", "baz", 10)
		})
	})
}

func TestGeometryError(t *testing.T) {
	err := &GeometryError{Box: Box{10, 10, 0, 0}}

	assert.EqualError(t, err, "quadtree: invalid bounding box: [10,10,0,0]")
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.NotErrorIs(t, err, ErrNotFound)

	wrapped := fmt.Errorf("loading index: %w", err)
	var target *GeometryError
	assert.ErrorIs(t, wrapped, ErrInvalidGeometry)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, Box{10, 10, 0, 0}, target.Box)
}

func TestKeyError(t *testing.T) {
	testCases := []struct {
		name     string
		key      interface{}
		expected string
	}{
		{"String", "absent", "quadtree: key not found: absent"},
		{"Int", 42, "quadtree: key not found: 42"},
		{"Struct", struct{ A, B int }{1, 2}, "quadtree: key not found: {1 2}"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := &KeyError{Key: testCase.key}

			assert.EqualError(t, err, testCase.expected)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.NotErrorIs(t, err, ErrInvalidGeometry)
		})
	}
}
