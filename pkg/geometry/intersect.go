// Package geometry implements ray intersection against the two analytic
// primitives the renderer supports: spheres and axis-aligned boxes.
package geometry

import (
	"math"

	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/vec3"
)

// IntersectSphere tests ray r against sphere s, returning the smaller
// non-negative root of the intersection quadratic.
func IntersectSphere(r core.Ray, s core.Sphere) (t float32, ok bool) {
	oc := s.Center.Sub(r.Origin)
	a := r.Direction.Dot(r.Direction)
	b := -2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := float32(math.Sqrt(float64(discriminant)))
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	if t0 >= 0 {
		return t0, true
	}
	if t1 >= 0 {
		return t1, true
	}
	return 0, false
}

// IntersectBox tests ray r against box b using the slab method,
// returning the entry distance and the hit-face normal.
func IntersectBox(r core.Ray, b core.Box) (t float32, normal vec3.Vector3, ok bool) {
	min := b.Origin
	max := vec3.Combine(b.Origin, 1, b.Size, 1)

	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))
	hitAxis := -1
	sign := float32(1)

	dir := [3]float32{r.Direction.X(), r.Direction.Y(), r.Direction.Z()}
	origin := [3]float32{r.Origin.X(), r.Origin.Y(), r.Origin.Z()}
	lo := [3]float32{min.X(), min.Y(), min.Z()}
	hi := [3]float32{max.X(), max.Y(), max.Z()}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, vec3.Zero, false
			}
			continue
		}

		invD := 1 / dir[axis]
		t0 := (lo[axis] - origin[axis]) * invD
		t1 := (hi[axis] - origin[axis]) * invD
		s := float32(1)
		if t0 > t1 {
			t0, t1 = t1, t0
			s = -1
		}

		if t0 > tMin {
			tMin = t0
			hitAxis = axis
			sign = s
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, vec3.Zero, false
		}
	}

	if tMin < 0 || hitAxis == -1 {
		return 0, vec3.Zero, false
	}

	n := vec3.Zero
	n[hitAxis] = -sign
	return tMin, n, true
}

// IntersectObject dispatches to the intersection routine matching the
// object's kind and returns t and the surface normal at the hit point.
func IntersectObject(r core.Ray, o core.Object) (t float32, normal vec3.Vector3, ok bool) {
	switch o.Kind {
	case core.KindSphere:
		t, ok = IntersectSphere(r, o.Sphere)
		if !ok {
			return 0, vec3.Zero, false
		}
		point := r.At(t)
		normal = point.Sub(o.Sphere.Center).Normalize()
		return t, normal, true
	case core.KindBox:
		return IntersectBox(r, o.Box)
	default:
		return 0, vec3.Zero, false
	}
}

// Trace finds the closest object the ray hits, scanning the scene
// linearly and normalizing the ray's direction once at entry.
func Trace(scene *core.Scene, r core.Ray) core.HitInfo {
	r.Direction = r.Direction.Normalize()

	best := core.Miss
	bestT := float32(math.Inf(1))

	for i := 0; i < scene.Len(); i++ {
		obj := scene.Get(i)
		t, normal, ok := IntersectObject(r, obj)
		if !ok || t < 0 || t >= bestT {
			continue
		}
		bestT = t
		best = core.HitInfo{
			Distance: t,
			Point:    r.At(t),
			Normal:   normal,
			Object:   i,
		}
	}

	return best
}
