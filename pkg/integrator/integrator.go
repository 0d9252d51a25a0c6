// Package integrator implements the bounded-depth Monte Carlo radiance
// estimator: sample_pixel in the original renderer's terms.
package integrator

import (
	"math"
	"math/rand"

	"github.com/kdrisco/flareray/pkg/camera"
	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/geometry"
	"github.com/kdrisco/flareray/pkg/skybox"
	"github.com/kdrisco/flareray/pkg/vec3"
)

// Params collects the estimator's tunable constants. None of these are
// exposed as scene or CLI configuration; they mirror the literal
// constants the original renderer hard-codes in its pixel() function.
type Params struct {
	MaxDepth          int
	LightSamples      int
	LightSampleSpread float32
	LightSampleWeight float32
	RayEpsilon        float32
}

// DefaultParams returns the constants the original renderer used.
func DefaultParams() Params {
	return Params{
		MaxDepth:          5,
		LightSamples:      5,
		LightSampleSpread: 0.5,
		LightSampleWeight: 0.05,
		RayEpsilon:        0.001,
	}
}

// SamplePixel traces a path starting from the camera's primary ray
// through screen coordinates (u,v) and returns the clamped radiance
// estimate for that pixel.
func SamplePixel(scene *core.Scene, sky *skybox.Cubemap, state camera.CameraState, p Params, u, v, aspectRatio float32, rng *rand.Rand) vec3.Vector3 {
	ray := state.RayThroughScreen(u, v, aspectRatio)

	contrib := vec3.New(1, 1, 1)
	result := vec3.Zero

	for bounce := 0; bounce < p.MaxDepth; bounce++ {
		hit := geometry.Trace(scene, ray)
		if hit.Object < 0 {
			result = result.Add(contrib.Mul(sky.Sample(ray.Direction.Normalize())))
			break
		}

		obj := scene.Get(hit.Object)
		mat := obj.Material

		view := ray.Direction.Normalize().MulScalar(-1)
		nDotV := clamp01(hit.Normal.Dot(view))
		dielectricF0 := vec3.New(1, 1, 1).MulScalar(0.16 * mat.Reflectance * mat.Reflectance)
		f0 := vec3.Combine(dielectricF0, 1-mat.Metallic, mat.Albedo, mat.Metallic)
		f := fresnelSchlick(nDotV, f0)

		sampledLight, lightSampled := sampleDirectLight(scene, hit, rng, p)

		result = result.Add(contrib.MulScalar(mat.EmissionPower).Mul(mat.EmissionColor))

		randDir := sampleHemisphere(hit.Normal, rng)

		specular := mat.Metallic > 0.001 || vec3.RandomFloat(rng) <= f.Average()
		if specular {
			reflected := vec3.Reflect(ray.Direction.Normalize(), hit.Normal)
			dir := vec3.Combine(reflected, 1-mat.Roughness, randDir, mat.Roughness).Normalize()
			ray = core.Ray{Direction: dir}
		} else {
			ray = core.Ray{Direction: randDir}
			contrib = contrib.Mul(mat.Albedo.MulScalar(1 - mat.Metallic))
		}

		if lightSampled && !sampledLight.IsZero() {
			result = result.Add(contrib.Mul(sampledLight).MulScalar(p.LightSampleWeight))
			contrib = contrib.MulScalar(1 - p.LightSampleWeight)
		}

		ray.Origin = vec3.Combine(hit.Point, 1, ray.Direction, p.RayEpsilon)
	}

	return result.Clamp01()
}

// sampleDirectLight implements the one-bounce next-event estimate. It
// deliberately stops after the FIRST emissive object found by scan
// order, even if others exist in the scene: this reproduces a known
// limitation of the renderer this package is modeled on, not a bug in
// this implementation.
func sampleDirectLight(scene *core.Scene, hit core.HitInfo, rng *rand.Rand, p Params) (vec3.Vector3, bool) {
	for j := 0; j < scene.Len(); j++ {
		if j == hit.Object {
			continue
		}
		emitter := scene.Get(j)
		if !emitter.Material.IsEmissive() {
			continue
		}

		toLight := emitter.OriginOf().Sub(hit.Point)
		accum := vec3.Zero

		for s := 0; s < p.LightSamples; s++ {
			randDir := vec3.RandomDirection(rng)
			if randDir.Dot(hit.Normal) < 0 {
				randDir = randDir.MulScalar(-1)
			}
			dir := vec3.Combine(randDir, p.LightSampleSpread, toLight, 1).Normalize()

			shadowRay := core.Ray{
				Origin:    vec3.Combine(hit.Point, 1, dir, p.RayEpsilon),
				Direction: dir,
			}
			shadowHit := geometry.Trace(scene, shadowRay)
			if shadowHit.Object < 0 {
				continue
			}
			lit := scene.Get(shadowHit.Object)
			accum = accum.Add(lit.Material.EmissionColor.MulScalar(lit.Material.EmissionPower))
		}

		return accum.MulScalar(1 / float32(p.LightSamples)), true
	}
	return vec3.Zero, false
}

// sampleHemisphere draws a uniformly distributed random direction and
// mirrors it into the hemisphere aligned with normal.
func sampleHemisphere(normal vec3.Vector3, rng *rand.Rand) vec3.Vector3 {
	dir := vec3.RandomDirection(rng)
	if dir.Dot(normal) < 0 {
		return dir.MulScalar(-1)
	}
	return dir
}

// fresnelSchlick evaluates the Fresnel-Schlick approximation:
// F0 + (1-F0)*(1-cosTheta)^5.
func fresnelSchlick(cosTheta float32, f0 vec3.Vector3) vec3.Vector3 {
	t := float32(math.Pow(float64(clamp01(1-cosTheta)), 5))
	one := vec3.New(1, 1, 1)
	return vec3.Combine(f0, 1, one.Sub(f0), t)
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
