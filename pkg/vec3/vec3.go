// Package vec3 provides the 3-component float32 vector arithmetic the
// renderer is built on: addition, linear combination, dot products,
// normalization, and the uniform direction sampling used by the
// integrator's Monte Carlo bounces.
package vec3

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// zeroTolerance is the magnitude below which a vector (or one of its
// components) is treated as zero.
const zeroTolerance = 1e-4

// Vector3 is a triple of IEEE-754 single-precision floats. It shares its
// memory layout with mgl32.Vec3 so the two convert for free; Vector3
// carries the renderer's own combine/clamp/average helpers that mgl32
// doesn't provide.
type Vector3 [3]float32

// New creates a vector from its components.
func New(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Zero is the additive identity.
var Zero = Vector3{}

func (v Vector3) X() float32 { return v[0] }
func (v Vector3) Y() float32 { return v[1] }
func (v Vector3) Z() float32 { return v[2] }

func (v Vector3) mgl() mgl32.Vec3 { return mgl32.Vec3(v) }

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3(v.mgl().Add(o.mgl())) }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3(v.mgl().Sub(o.mgl())) }

// MulScalar returns v scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 { return Vector3(v.mgl().Mul(s)) }

// Mul returns the componentwise product of v and o.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// Combine returns a*alphaA + b*alphaB, the linear-combination primitive
// the original path tracer's combine() function provides.
func Combine(a Vector3, alphaA float32, b Vector3, alphaB float32) Vector3 {
	return a.MulScalar(alphaA).Add(b.MulScalar(alphaB))
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 { return v.mgl().Dot(o.mgl()) }

// Cross returns the cross product of v and o.
func (v Vector3) Cross(o Vector3) Vector3 { return Vector3(v.mgl().Cross(o.mgl())) }

// Length returns the magnitude of v.
func (v Vector3) Length() float32 { return v.mgl().Len() }

// Normalize returns a unit vector in the direction of v, or the zero
// vector if v is too small to normalize reliably.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length < zeroTolerance {
		return Zero
	}
	return v.MulScalar(1 / length)
}

// Max returns the componentwise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{
		max32(v[0], o[0]),
		max32(v[1], o[1]),
		max32(v[2], o[2]),
	}
}

// Clamp01 clamps every component of v to [0, 1].
func (v Vector3) Clamp01() Vector3 {
	return Vector3{clamp32(v[0], 0, 1), clamp32(v[1], 0, 1), clamp32(v[2], 0, 1)}
}

// Average returns the mean of v's three components.
func (v Vector3) Average() float32 {
	return (v[0] + v[1] + v[2]) / 3
}

// IsZero reports whether every component of v is within zeroTolerance
// of zero.
func (v Vector3) IsZero() bool {
	return isZeroScalar(v[0]) && isZeroScalar(v[1]) && isZeroScalar(v[2])
}

func isZeroScalar(f float32) bool {
	return f < zeroTolerance && f > -zeroTolerance
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Reflect reflects dir about normal: dir - 2*dot(normal,dir)*normal.
func Reflect(dir, normal Vector3) Vector3 {
	f := -2 * normal.Dot(dir)
	return Combine(dir, 1, normal, f)
}

// RandomVector returns a vector with each component uniform in [-1, 1].
func RandomVector(rng *rand.Rand) Vector3 {
	return Vector3{
		rng.Float32()*2 - 1,
		rng.Float32()*2 - 1,
		rng.Float32()*2 - 1,
	}
}

// RandomDirection returns a uniformly distributed unit direction. It
// draws RandomVector samples until one lies inside the unit ball (and
// away from the origin), then normalizes it.
func RandomDirection(rng *rand.Rand) Vector3 {
	for {
		v := RandomVector(rng)
		if l := v.Length(); l >= zeroTolerance && l <= 1 {
			return v.MulScalar(1 / l)
		}
	}
}

// RandomFloat returns a uniform float32 in [0, 1), matching the
// original path tracer's random_float().
func RandomFloat(rng *rand.Rand) float32 {
	return rng.Float32()
}
