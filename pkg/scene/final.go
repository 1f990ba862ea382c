package scene

import (
	"fmt"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
	"github.com/df07/go-mc-raytracer/pkg/material"
	"github.com/df07/go-mc-raytracer/pkg/renderer"
)

const (
	groundBoxesPerSide = 20
	clusterSpheres     = 1000
)

func finalScene(opts Options, sampler core.Sampler) (*Scene, error) {
	var objects []geometry.Hittable

	// Ground of boxes with random heights, grouped under their own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]geometry.Hittable, 0, groundBoxesPerSide*groundBoxesPerSide)
	for i := 0; i < groundBoxesPerSide; i++ {
		for j := 0; j < groundBoxesPerSide; j++ {
			const w = 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBVH, err := geometry.NewBVH(boxes, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("ground: %w", err)
	}
	objects = append(objects, groundBVH)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	objects = append(objects, geometry.NewXZRect(123, 423, 147, 412, 554, light))

	// Glazed ceramic: mostly diffuse red with a quarter of bounces off a sharp coat
	glazed := material.NewMix(
		material.NewLambertian(core.NewVec3(0.8, 0.15, 0.1)),
		material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0.05),
		0.25,
	)

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	objects = append(objects,
		geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
		geometry.NewSphere(core.NewVec3(130, 150, -40), 40, glazed),
	)

	// Glass shell filled with blue smoke; the shell is both a surface and
	// the boundary of the medium
	shell := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects, shell, geometry.NewConstantMedium(shell, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	texture, err := earthTexture(opts)
	if err != nil {
		return nil, err
	}
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(texture)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))),
	)

	// Cluster of small spheres, rotated and moved as one object
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	spheres := make([]geometry.Hittable, clusterSpheres)
	for i := range spheres {
		spheres[i] = geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white)
	}
	cluster, err := geometry.NewBVH(spheres, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("sphere cluster: %w", err)
	}
	objects = append(objects, geometry.NewTranslate(geometry.NewRotateY(cluster, 15), core.NewVec3(-100, 270, 395)))

	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}

	s, err := New("final", objects, camera, black, sampler)
	if err != nil {
		return nil, err
	}
	return s.withSettings(400, 200, 50), nil
}
