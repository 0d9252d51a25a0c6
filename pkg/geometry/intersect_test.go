package geometry

import (
	"testing"

	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/vec3"
)

func TestIntersectSphereHit(t *testing.T) {
	s := core.Sphere{Center: vec3.New(0, 0, 5), Radius: 1}
	r := core.Ray{Origin: vec3.Zero, Direction: vec3.New(0, 0, 1)}
	dist, ok := IntersectSphere(r, s)
	if !ok {
		t.Fatal("expected hit")
	}
	if dist < 3.999 || dist > 4.001 {
		t.Errorf("expected distance ~4, got %v", dist)
	}
}

func TestIntersectSphereMiss(t *testing.T) {
	s := core.Sphere{Center: vec3.New(5, 5, 5), Radius: 1}
	r := core.Ray{Origin: vec3.Zero, Direction: vec3.New(0, 0, 1)}
	if _, ok := IntersectSphere(r, s); ok {
		t.Error("expected miss")
	}
}

func TestIntersectSphereBehindOriginMisses(t *testing.T) {
	s := core.Sphere{Center: vec3.New(0, 0, -5), Radius: 1}
	r := core.Ray{Origin: vec3.Zero, Direction: vec3.New(0, 0, 1)}
	if _, ok := IntersectSphere(r, s); ok {
		t.Error("expected sphere behind ray origin to not register as a hit")
	}
}

func TestIntersectBoxFaceNormals(t *testing.T) {
	b := core.Box{Origin: vec3.New(-1, -1, -1), Size: vec3.New(2, 2, 2)}

	tests := []struct {
		name   string
		origin vec3.Vector3
		dir    vec3.Vector3
		normal vec3.Vector3
	}{
		{"from +z", vec3.New(0, 0, 5), vec3.New(0, 0, -1), vec3.New(0, 0, 1)},
		{"from -z", vec3.New(0, 0, -5), vec3.New(0, 0, 1), vec3.New(0, 0, -1)},
		{"from +x", vec3.New(5, 0, 0), vec3.New(-1, 0, 0), vec3.New(1, 0, 0)},
		{"from +y", vec3.New(0, 5, 0), vec3.New(0, -1, 0), vec3.New(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := core.Ray{Origin: tt.origin, Direction: tt.dir}
			_, normal, ok := IntersectBox(r, b)
			if !ok {
				t.Fatal("expected hit")
			}
			if normal.Sub(tt.normal).Length() > 1e-5 {
				t.Errorf("expected normal %v, got %v", tt.normal, normal)
			}
		})
	}
}

func TestIntersectBoxMiss(t *testing.T) {
	b := core.Box{Origin: vec3.New(-1, -1, -1), Size: vec3.New(2, 2, 2)}
	r := core.Ray{Origin: vec3.New(10, 10, 10), Direction: vec3.New(0, 0, 1)}
	if _, _, ok := IntersectBox(r, b); ok {
		t.Error("expected miss")
	}
}

func TestTracePicksClosest(t *testing.T) {
	scene := core.NewScene()
	scene.Add(core.Object{Kind: core.KindSphere, Sphere: core.Sphere{Center: vec3.New(0, 0, 10), Radius: 1}})
	near := scene.Add(core.Object{Kind: core.KindSphere, Sphere: core.Sphere{Center: vec3.New(0, 0, 3), Radius: 1}})

	hit := Trace(scene, core.Ray{Origin: vec3.Zero, Direction: vec3.New(0, 0, 1)})
	if hit.Object != near {
		t.Errorf("expected closest object %d, got %d", near, hit.Object)
	}
}

func TestTraceMissReturnsSentinel(t *testing.T) {
	scene := core.NewScene()
	hit := Trace(scene, core.Ray{Origin: vec3.Zero, Direction: vec3.New(0, 0, 1)})
	if hit.Object != -1 {
		t.Errorf("expected sentinel miss, got object %d", hit.Object)
	}
}
