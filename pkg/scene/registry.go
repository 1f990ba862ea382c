package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-mc-raytracer/pkg/core"
)

// Options controls how demo scenes are built
type Options struct {
	Seed                int64  // Seeds object placement, noise tables and BVH splits
	TexturePath         string // Image for the earth texture
	TextureMaxDimension int    // Downscale the texture so no side exceeds this (0 = full size)
}

type builder func(opts Options, sampler core.Sampler) (*Scene, error)

type entry struct {
	description string
	build       builder
}

var registry = map[string]entry{
	"weekend":       {"Random spheres with motion blur on a checker ground", weekendScene},
	"two-spheres":   {"Two checker textured spheres", twoSpheresScene},
	"perlin":        {"Marble noise spheres", perlinScene},
	"earth":         {"Image textured globe (set a texture path)", earthScene},
	"simple-light":  {"Marble spheres lit by a rectangle and a sphere light", simpleLightScene},
	"cornell":       {"Cornell box with two rotated boxes", cornellScene},
	"cornell-smoke": {"Cornell box with smoke and fog blocks", cornellSmokeScene},
	"final":         {"Every primitive, material and texture in one scene", finalScene},
}

// Create builds the named scene. The same name and options always produce
// the same scene.
func Create(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return e.build(opts, core.NewSeededSampler(opts.Seed))
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one line description of the named scene
func Describe(name string) (string, bool) {
	e, ok := registry[name]
	return e.description, ok
}
