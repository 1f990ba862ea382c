package geometry

import (
	"errors"

	"github.com/df07/go-mc-raytracer/pkg/material"
)

var (
	// ErrNoBoundingBox is returned when an unbounded object is placed in a BVH
	ErrNoBoundingBox = errors.New("no bounding box in bvh node")

	// ErrEmptyBVH is returned when a BVH is built from no objects
	ErrEmptyBVH = errors.New("cannot build bvh from an empty object list")

	// ErrMissingMaterial is returned when a primitive, or a mix below it, has no material attached
	ErrMissingMaterial = material.ErrMissingMaterial

	// ErrInvalidParameter is returned for degenerate primitive parameters
	ErrInvalidParameter = errors.New("invalid primitive parameter")
)
