package scene

import (
	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
	"github.com/df07/go-mc-raytracer/pkg/material"
	"github.com/df07/go-mc-raytracer/pkg/renderer"
)

// cornellSize is the edge length of the Cornell box
const cornellSize = 555.0

var black = core.NewVec3(0, 0, 0)

func simpleLightScene(opts Options, sampler core.Sampler) (*Scene, error) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	objects := marbleSpheres(sampler)
	objects = append(objects,
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	camera := outdoorCamera(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 16.0/9.0)
	s, err := New("simple-light", objects, camera, black, sampler)
	if err != nil {
		return nil, err
	}
	return s.withSettings(400, 400, 50), nil
}

// cornellCamera looks into the open side of the box
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// cornellWalls returns the five walls of the box and the ceiling light
func cornellWalls(light geometry.Hittable) []geometry.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Hittable{
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green),
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),
		light,
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white),
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white),
	}
}

// cornellBlocks returns the tall and the short block, rotated and moved into place
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

func cornellScene(opts Options, sampler core.Sampler) (*Scene, error) {
	light := geometry.NewXZRect(213, 343, 227, 332, 554, material.NewDiffuseLight(core.NewVec3(15, 15, 15)))
	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))

	objects := append(cornellWalls(light), tall, short)

	s, err := New("cornell", objects, cornellCamera(), black, sampler)
	if err != nil {
		return nil, err
	}
	return s.withSettings(400, 200, 50), nil
}

func cornellSmokeScene(opts Options, sampler core.Sampler) (*Scene, error) {
	light := geometry.NewXZRect(113, 443, 127, 432, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))

	objects := append(cornellWalls(light),
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	s, err := New("cornell-smoke", objects, cornellCamera(), black, sampler)
	if err != nil {
		return nil, err
	}
	return s.withSettings(400, 200, 50), nil
}
