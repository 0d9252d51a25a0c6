// Package scene builds demo Scene instances: the object tables the
// renderer traces against. It is a pure authoring layer; nothing here
// is mutated once handed to the renderer.
package scene

import (
	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/vec3"
)

func box(origin, size vec3.Vector3, mat core.Material) core.Object {
	return core.Object{Kind: core.KindBox, Box: core.Box{Origin: origin, Size: size}, Material: mat}
}

func sphere(center vec3.Vector3, radius float32, mat core.Material) core.Object {
	return core.Object{Kind: core.KindSphere, Sphere: core.Sphere{Center: center, Radius: radius}, Material: mat}
}

// NewDefaultScene builds the demo scene the original renderer ships
// with: a row of three mirror-finish red panels at increasing
// roughness, a floor, two colored boxes, two colored spheres, and a
// warm emissive sphere overhead.
func NewDefaultScene() *core.Scene {
	s := core.NewScene()

	red := vec3.New(1, 0.3, 0.3)
	s.Add(box(vec3.New(0, 0, 0), vec3.New(3, 5, 0.1), core.Material{Albedo: red, Metallic: 1, Roughness: 1}))
	s.Add(box(vec3.New(3, 0, 0), vec3.New(3, 5, 0.1), core.Material{Albedo: red, Metallic: 1, Roughness: 0.5}))
	s.Add(box(vec3.New(6, 0, 0), vec3.New(3, 5, 0.1), core.Material{Albedo: red, Metallic: 1, Roughness: 0}))

	s.Add(box(vec3.New(0, -0.1, 0), vec3.New(9, 0.1, 9), core.Material{Albedo: vec3.New(0.4, 0.3, 0.9), Roughness: 1}))

	s.Add(box(vec3.New(5, 0, 6), vec3.New(1, 1, 1), core.Material{Albedo: vec3.New(1, 0, 0), Roughness: 1}))
	s.Add(box(vec3.New(4, 0, 5), vec3.New(1, 1, 1), core.Material{Albedo: vec3.New(1, 0, 1), Reflectance: 1, Roughness: 0}))

	s.Add(sphere(vec3.New(3, 1, 3), 1, core.Material{Albedo: vec3.New(1, 0.4, 0), Roughness: 1}))
	s.Add(sphere(vec3.New(5, 1, 3), 1, core.Material{Albedo: vec3.New(0, 1, 0), Reflectance: 1, Roughness: 0}))
	s.Add(sphere(vec3.New(3, 5, 3), 1, core.Material{
		Albedo:        vec3.New(1, 0.4, 0),
		EmissionColor: vec3.New(1, 0.5, 0.5),
		EmissionPower: 5,
		Roughness:     1,
	}))

	return s
}

// NewCornellScene builds a Cornell-box-like scene: five colored walls
// (red on the left, green on the right), a ceiling-mounted emissive
// patch, a diffuse sphere and a metallic sphere.
func NewCornellScene() *core.Scene {
	s := core.NewScene()

	wallThickness := float32(0.2)
	boxSize := float32(6)
	white := vec3.New(0.73, 0.73, 0.73)
	red := vec3.New(0.65, 0.05, 0.05)
	green := vec3.New(0.12, 0.45, 0.15)
	diffuse := func(albedo vec3.Vector3) core.Material {
		return core.Material{Albedo: albedo, Roughness: 1}
	}

	// floor
	s.Add(box(vec3.New(-boxSize/2, -wallThickness, -boxSize/2), vec3.New(boxSize, wallThickness, boxSize), diffuse(white)))
	// ceiling
	s.Add(box(vec3.New(-boxSize/2, boxSize, -boxSize/2), vec3.New(boxSize, wallThickness, boxSize), diffuse(white)))
	// back wall
	s.Add(box(vec3.New(-boxSize/2, 0, boxSize/2), vec3.New(boxSize, boxSize, wallThickness), diffuse(white)))
	// left wall (red)
	s.Add(box(vec3.New(-boxSize/2-wallThickness, 0, -boxSize/2), vec3.New(wallThickness, boxSize, boxSize), diffuse(red)))
	// right wall (green)
	s.Add(box(vec3.New(boxSize/2, 0, -boxSize/2), vec3.New(wallThickness, boxSize, boxSize), diffuse(green)))

	// ceiling light patch
	s.Add(box(vec3.New(-1, boxSize-wallThickness-0.01, -1), vec3.New(2, 0.02, 2), core.Material{
		EmissionColor: vec3.New(1, 1, 0.9),
		EmissionPower: 8,
	}))

	s.Add(sphere(vec3.New(-1.2, 1, 0), 1, diffuse(white)))
	s.Add(sphere(vec3.New(1.3, 0.7, -1.5), 0.7, core.Material{Albedo: vec3.New(1, 1, 1), Metallic: 1, Roughness: 0.1}))

	return s
}
