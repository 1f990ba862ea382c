package material

import "errors"

var (
	// ErrMissingMaterial is returned when a surface or mix has no material attached
	ErrMissingMaterial = errors.New("primitive has no material")

	// ErrMissingTexture is returned when a material or texture references a nil texture
	ErrMissingTexture = errors.New("material has no texture")
)
