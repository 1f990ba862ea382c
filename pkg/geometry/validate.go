package geometry

import (
	"fmt"

	"github.com/df07/go-mc-raytracer/pkg/material"
)

// Validator is implemented by hittables that can check their own configuration
type Validator interface {
	Validate() error
}

// Validate walks the object graph below h and reports the first configuration
// problem found. Objects that do not implement Validator are accepted as-is.
func Validate(h Hittable) error {
	if h == nil {
		return fmt.Errorf("nil hittable: %w", ErrInvalidParameter)
	}
	if v, ok := h.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// requireMaterial checks that m is set and that every material and texture
// it references is set too
func requireMaterial(owner string, m material.Material) error {
	if err := material.Validate(m); err != nil {
		return fmt.Errorf("%s: %w", owner, err)
	}
	return nil
}
