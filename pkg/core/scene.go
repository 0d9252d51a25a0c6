package core

import "github.com/kdrisco/flareray/pkg/vec3"

// maxObjects bounds the scene's fixed-capacity object table. The original
// renderer this package is modeled on keeps its scene in a flat array sized
// generously above anything its demo scenes populate.
const maxObjects = 1024

// Ray is a parametric line: Origin + t*Direction.
type Ray struct {
	Origin    vec3.Vector3
	Direction vec3.Vector3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) vec3.Vector3 {
	return vec3.Combine(r.Origin, 1, r.Direction, t)
}

// Material describes a single PBR-ish surface, combining a diffuse albedo
// with metallic/roughness/reflectance terms in the Filament convention:
// F0 = mix(0.16*reflectance^2, albedo, metallic). It doubles as the
// emitter description; EmissionPower of zero means the surface does not
// emit.
type Material struct {
	Albedo         vec3.Vector3
	EmissionColor  vec3.Vector3
	Roughness      float32
	Reflectance    float32
	Metallic       float32
	EmissionPower  float32
}

// IsEmissive reports whether the material contributes direct light.
func (m Material) IsEmissive() bool {
	return m.EmissionPower > 0
}

// Emission returns the material's radiant exitance.
func (m Material) Emission() vec3.Vector3 {
	return m.EmissionColor.MulScalar(m.EmissionPower)
}

// ObjectKind discriminates the tagged union held by Object.
type ObjectKind int

const (
	KindSphere ObjectKind = iota
	KindBox
)

// Sphere is an analytic sphere primitive.
type Sphere struct {
	Center vec3.Vector3
	Radius float32
}

// Box is an axis-aligned box, unlike the teacher renderer's
// quad-composed rotated box: the spec calls for a slab-method
// intersection against a simple origin/size pair.
type Box struct {
	Origin vec3.Vector3
	Size   vec3.Vector3
}

// Object is a tagged union of the scene's two primitive kinds plus the
// material both share.
type Object struct {
	Kind     ObjectKind
	Sphere   Sphere
	Box      Box
	Material Material
}

// OriginOf returns the primitive's reference point: the sphere's center,
// or the box's center (Origin + Size*0.5).
func (o Object) OriginOf() vec3.Vector3 {
	if o.Kind == KindSphere {
		return o.Sphere.Center
	}
	return vec3.Combine(o.Box.Origin, 1, o.Box.Size, 0.5)
}

// HitInfo describes a ray/object intersection. Object is -1 on a miss.
type HitInfo struct {
	Distance float32
	Point    vec3.Vector3
	Normal   vec3.Vector3
	Object   int
}

// Miss is the sentinel HitInfo returned when a ray strikes nothing.
var Miss = HitInfo{Object: -1}

// Scene is a fixed-capacity, append-only table of objects, mirroring the
// flat C array the original renderer iterates linearly per ray.
type Scene struct {
	objects [maxObjects]Object
	count   int
}

// NewScene returns an empty scene ready for Add.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends an object to the scene, returning its index. It panics if
// the scene's fixed capacity is exceeded, matching the original's
// unchecked array write.
func (s *Scene) Add(o Object) int {
	if s.count >= maxObjects {
		panic("core: scene object capacity exceeded")
	}
	s.objects[s.count] = o
	s.count++
	return s.count - 1
}

// Get returns the object at index i.
func (s *Scene) Get(i int) Object {
	return s.objects[i]
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return s.count
}

// OriginOf returns the reference point of the object at index i.
func (s *Scene) OriginOf(i int) vec3.Vector3 {
	return s.objects[i].OriginOf()
}
