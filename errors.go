// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is matched, via errors.Is, by the error
	// returned when constructing a Node from a degenerate or inverted
	// bounding box.
	ErrInvalidGeometry = textErr("invalid geometry")
	// ErrNotFound is matched, via errors.Is, by the error returned
	// from Node.Get when no element has the requested key.
	ErrNotFound = textErr("not found")
)

// GeometryError reports an invalid bounding box.
type GeometryError struct {
	// Box is the rejected bounding box.
	Box Box
}

func (e *GeometryError) Error() string {
	return packageName + "invalid bounding box: " + e.Box.String()
}

// Is reports whether target is ErrInvalidGeometry.
func (e *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

// KeyError reports that no element with the given key was found.
type KeyError struct {
	// Key is the key that was looked up.
	Key interface{}
}

func (e *KeyError) Error() string {
	return fmt.Sprintf(packageName+"key not found: %v", e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *KeyError) Is(target error) bool {
	return target == ErrNotFound
}

const packageName = "quadtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
