// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"fmt"
	"strconv"
	"strings"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the box as [XMin,YMin,XMax,YMax].
func (b Box) String() string {
	var s strings.Builder
	s.WriteByte('[')
	s.WriteString(formatFloat(b.XMin))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.YMin))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.XMax))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.YMax))
	s.WriteByte(']')
	return s.String()
}

func (e Element[K]) String() string {
	return fmt.Sprintf("Element{Key:%v,X:%s,Y:%s}", e.Key, formatFloat(e.X), formatFloat(e.Y))
}

// String returns a summary description of the node: its bounding box
// and the limits it was created with. The description does not include
// the node's contents.
func (n *Node[K]) String() string {
	return fmt.Sprintf("Node{Bounds:%s,MaxItems:%d,MaxDepth:%d}", n.bbox, n.maxItems, n.maxDepth)
}

var quadrantNames = [...]string{"SW", "SE", "NE", "NW"}

func (q Quadrant) String() string {
	if q < SW || q > NW {
		return "Quadrant(" + strconv.Itoa(int(q)) + ")"
	}
	return quadrantNames[q]
}
