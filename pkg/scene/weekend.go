package scene

import (
	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
	"github.com/df07/go-mc-raytracer/pkg/loaders"
	"github.com/df07/go-mc-raytracer/pkg/material"
	"github.com/df07/go-mc-raytracer/pkg/renderer"
)

// skyColor is the background of the outdoor scenes
var skyColor = core.NewVec3(0.70, 0.80, 1.00)

// outdoorCamera looks at lookAt from lookFrom with a 20 degree field of view
func outdoorCamera(lookFrom, lookAt core.Vec3, aspectRatio float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

func weekendScene(opts Options, sampler core.Sampler) (*Scene, error) {
	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse spheres bounce during the exposure
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	camera := outdoorCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 3.0/2.0)
	camera.Aperture = 0.1

	s, err := New("weekend", objects, camera, skyColor, sampler)
	if err != nil {
		return nil, err
	}
	return s.withSettings(400, 100, 50), nil
}

func twoSpheresScene(opts Options, sampler core.Sampler) (*Scene, error) {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	}

	camera := outdoorCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 16.0/9.0)
	return New("two-spheres", objects, camera, skyColor, sampler)
}

// marbleSpheres is a marble ground with a marble sphere resting on it
func marbleSpheres(sampler core.Sampler) []geometry.Hittable {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	return []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

func perlinScene(opts Options, sampler core.Sampler) (*Scene, error) {
	camera := outdoorCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 16.0/9.0)
	return New("perlin", marbleSpheres(sampler), camera, skyColor, sampler)
}

// earthTexture loads the globe image, falling back to the missing-data
// texture when no path is set
func earthTexture(opts Options) (material.Texture, error) {
	if opts.TexturePath == "" {
		logger.Warning("no texture path set, the globe will render in the missing-texture color")
		return material.NewImageTexture(0, 0, nil), nil
	}
	return loaders.LoadTexture(opts.TexturePath, loaders.ImageOptions{MaxDimension: opts.TextureMaxDimension})
}

func earthScene(opts Options, sampler core.Sampler) (*Scene, error) {
	texture, err := earthTexture(opts)
	if err != nil {
		return nil, err
	}

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	}

	camera := outdoorCamera(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 0), 16.0/9.0)
	return New("earth", objects, camera, skyColor, sampler)
}
