package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

// BVHNode is a node in the Bounding Volume Hierarchy. Leaves are the scene
// objects themselves; a node over a single object holds it on both sides.
type BVHNode struct {
	Left   Hittable
	Right  Hittable
	Box    core.AABB
	single bool // Left and Right are the same object
}

// boxed pairs an object with its bounding box so construction computes each box once
type boxed struct {
	object Hittable
	box    core.AABB
}

// NewBVH constructs a BVH over objects for the time interval [time0, time1].
// The split axis of every node is drawn from sampler.
func NewBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	// Work on a copy so the caller's slice order is left alone
	items := make([]boxed, len(objects))
	for i, object := range objects {
		if object == nil {
			return nil, fmt.Errorf("object %d: %w", i, ErrInvalidParameter)
		}
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		items[i] = boxed{object: object, box: box}
	}

	node, _ := buildBVH(items, sampler)
	return node, nil
}

// buildBVH recursively splits items at the median along a random axis and
// returns the node with its box
func buildBVH(items []boxed, sampler core.Sampler) (*BVHNode, core.AABB) {
	axis := core.RandomInt(sampler, 0, 3)

	node := &BVHNode{}
	var leftBox, rightBox core.AABB

	switch len(items) {
	case 1:
		node.Left, node.Right = items[0].object, items[0].object
		node.single = true
		leftBox, rightBox = items[0].box, items[0].box
	case 2:
		first, second := items[0], items[1]
		if core.CompareOnAxis(second.box, first.box, axis) {
			first, second = second, first
		}
		node.Left, node.Right = first.object, second.object
		leftBox, rightBox = first.box, second.box
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return core.CompareOnAxis(items[i].box, items[j].box, axis)
		})
		mid := len(items) / 2
		node.Left, leftBox = buildBVH(items[:mid], sampler)
		node.Right, rightBox = buildBVH(items[mid:], sampler)
	}

	node.Box = core.SurroundingBox(leftBox, rightBox)
	return node, node.Box
}

// Hit tests the node's box, then the left child, then the right child with
// tMax tightened to the left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the node's box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// Validate checks every object below the node. An object aliased on both
// sides of a node is checked once.
func (n *BVHNode) Validate() error {
	if err := Validate(n.Left); err != nil {
		return err
	}
	if n.single {
		return nil
	}
	return Validate(n.Right)
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int
	LeafCount  int // object references, aliased leaves counted once
	MaxDepth   int
	AvgDepth   float64
}

// Stats returns statistics about the tree below n
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafCount > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafCount)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	children := []Hittable{n.Left}
	if !n.single {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
			continue
		}
		stats.LeafCount++
		stats.AvgDepth += float64(depth + 1) // Accumulate depth for average calculation
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
