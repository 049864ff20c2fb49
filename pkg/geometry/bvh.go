package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrEmptyBVH is returned when a BVH is built from no shapes
var ErrEmptyBVH = errors.New("bvh needs at least one shape")

// ErrInvalidBoundingBox is returned when a shape reports a box with min > max
var ErrInvalidBoundingBox = errors.New("bounding box is inverted")

// BVHNode is a node of a binary Bounding Volume Hierarchy.
// Children are either other nodes or leaf shapes; a node built over a single
// shape has both children pointing at it.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   core.AABB
}

// bvhItem caches a shape's bounding box for sorting
type bvhItem struct {
	shape Shape
	box   core.AABB
}

// NewBVH constructs a BVH over shapes, choosing split axes with random.
// Every shape must be bounded.
func NewBVH(shapes []Shape, random *rand.Rand) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	// Work on a copy so the caller's slice order is untouched
	items := make([]bvhItem, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox()
		if !ok {
			return nil, fmt.Errorf("bvh: shape %d (%T): %w", i, shape, ErrNoBoundingBox)
		}
		if !box.IsValid() {
			return nil, fmt.Errorf("bvh: shape %d (%T) box %v: %w", i, shape, box, ErrInvalidBoundingBox)
		}
		items[i] = bvhItem{shape: shape, box: box}
	}

	root := buildBVH(items, random)
	return root, nil
}

// buildBVH recursively partitions items at the median along a random axis
func buildBVH(items []bvhItem, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	less := func(a, b bvhItem) bool {
		return a.box.Min.Component(axis) < b.box.Min.Component(axis)
	}

	var left, right bvhItem
	node := &BVHNode{}

	switch len(items) {
	case 1:
		left, right = items[0], items[0]
		node.Left, node.Right = left.shape, right.shape
		node.Box = left.box
		return node
	case 2:
		if less(items[0], items[1]) {
			left, right = items[0], items[1]
		} else {
			left, right = items[1], items[0]
		}
		node.Left, node.Right = left.shape, right.shape
		node.Box = left.box.Union(right.box)
		return node
	}

	sort.Slice(items, func(i, j int) bool { return less(items[i], items[j]) })

	mid := len(items) / 2
	leftNode := buildBVH(items[:mid], random)
	rightNode := buildBVH(items[mid:], random)

	node.Left, node.Right = leftNode, rightNode
	node.Box = leftNode.Box.Union(rightNode.Box)
	return node
}

// Hit tests if a ray intersects any shape in the BVH
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return n.trace(ray, tMin, tMax, TraceContext{})
}

// trace searches the left child first and then the right child with tMax
// capped at the left hit, so a right hit is never farther than the left one
func (n *BVHNode) trace(ray core.Ray, tMin, tMax float64, ctx TraceContext) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		ctx.Stats.recordMiss()
		return nil, false
	}
	ctx.Stats.recordHit()

	leftHit, hitLeft := Trace(n.Left, ray, tMin, tMax, ctx)
	if hitLeft {
		tMax = leftHit.T
	}

	rightHit, hitRight := Trace(n.Right, ray, tMin, tMax, ctx)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox implements the Shape interface
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.Box, true
}
