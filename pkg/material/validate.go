package material

import "fmt"

// Validator is implemented by materials and textures that reference other
// materials or textures
type Validator interface {
	Validate() error
}

// Validate reports the first nil material or texture reachable from m
func Validate(m Material) error {
	if m == nil {
		return ErrMissingMaterial
	}
	if v, ok := m.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// ValidateTexture reports the first nil texture reachable from t
func ValidateTexture(t Texture) error {
	if t == nil {
		return ErrMissingTexture
	}
	if v, ok := t.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// Validate checks the albedo texture
func (l *Lambertian) Validate() error {
	if err := ValidateTexture(l.Albedo); err != nil {
		return fmt.Errorf("lambertian albedo: %w", err)
	}
	return nil
}

// Validate checks the emission texture
func (e *DiffuseLight) Validate() error {
	if err := ValidateTexture(e.Emit); err != nil {
		return fmt.Errorf("diffuse light emission: %w", err)
	}
	return nil
}

// Validate checks the albedo texture
func (i *Isotropic) Validate() error {
	if err := ValidateTexture(i.Albedo); err != nil {
		return fmt.Errorf("isotropic albedo: %w", err)
	}
	return nil
}

// Validate checks both mixed materials
func (m *Mix) Validate() error {
	if err := Validate(m.Material1); err != nil {
		return fmt.Errorf("mix material 1: %w", err)
	}
	if err := Validate(m.Material2); err != nil {
		return fmt.Errorf("mix material 2: %w", err)
	}
	return nil
}

// Validate checks both sub-textures
func (c *Checker) Validate() error {
	if err := ValidateTexture(c.Odd); err != nil {
		return fmt.Errorf("checker odd: %w", err)
	}
	if err := ValidateTexture(c.Even); err != nil {
		return fmt.Errorf("checker even: %w", err)
	}
	return nil
}

// Validate checks that the noise tables are present
func (n *NoiseTexture) Validate() error {
	if n.Noise == nil {
		return fmt.Errorf("noise texture tables: %w", ErrMissingTexture)
	}
	return nil
}
