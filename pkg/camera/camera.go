// Package camera implements the free-fly camera collaborator: it turns
// normalized screen coordinates into primary rays and exposes WASD
// movement plus mouse look-around, mirroring the original renderer's
// camera_pov/move_camera/rotate_camera trio.
package camera

import (
	"math"
	"sync"

	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/vec3"
)

// Direction names the four movement keys the original camera supports.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

const (
	fieldOfView  = math.Pi / 3 // 60 degrees
	maxPitch     = math.Pi/2 - 0.01
	mouseSens    = 0.0025
)

// CameraState is an immutable snapshot of the camera's eye position and
// orientation, safe to read without the camera's lock.
type CameraState struct {
	Position vec3.Vector3
	Forward  vec3.Vector3
	Right    vec3.Vector3
	Up       vec3.Vector3
}

// RayThroughScreen returns the primary ray for normalized screen
// coordinates u,v in [0,1] given the render target's aspect ratio.
func (s CameraState) RayThroughScreen(u, v, aspectRatio float32) core.Ray {
	halfHeight := float32(math.Tan(fieldOfView / 2))
	halfWidth := halfHeight * aspectRatio

	px := (u*2 - 1) * halfWidth
	py := (v*2 - 1) * halfHeight

	dir := vec3.Combine(s.Forward, 1, s.Right, px)
	dir = vec3.Combine(dir, 1, s.Up, py)

	return core.Ray{Origin: s.Position, Direction: dir.Normalize()}
}

// Camera is the mutable collaborator workers and input handlers share.
// Every mutation happens under lock; workers read a consistent snapshot
// via Snapshot rather than touching the live fields, so a torn read
// during an input callback can never corrupt an in-flight render.
type Camera struct {
	mu       sync.Mutex
	position vec3.Vector3
	yaw      float64
	pitch    float64
}

// New returns a camera positioned at eye, looking toward -Z (yaw=0,
// pitch=0), matching the original renderer's default orientation.
func New(eye vec3.Vector3) *Camera {
	return &Camera{position: eye}
}

// Snapshot returns the camera's current state for use by a renderer
// worker. It is safe to call concurrently with Move and Rotate.
func (c *Camera) Snapshot() CameraState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Camera) stateLocked() CameraState {
	cosPitch := float32(math.Cos(c.pitch))
	forward := vec3.New(
		float32(math.Sin(c.yaw))*cosPitch,
		float32(math.Sin(c.pitch)),
		float32(-math.Cos(c.yaw))*cosPitch,
	).Normalize()

	worldUp := vec3.New(0, 1, 0)
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward).Normalize()

	return CameraState{Position: c.position, Forward: forward, Right: right, Up: up}
}

// Move translates the camera's position by speed along dir, relative to
// its current facing (Forward/Backward track the look direction
// projected onto the horizontal plane; Left/Right strafe).
func (c *Camera) Move(dir Direction, speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.stateLocked()
	flatForward := vec3.New(state.Forward.X(), 0, state.Forward.Z()).Normalize()

	var delta vec3.Vector3
	switch dir {
	case Forward:
		delta = flatForward.MulScalar(speed)
	case Backward:
		delta = flatForward.MulScalar(-speed)
	case Left:
		delta = state.Right.MulScalar(-speed)
	case Right:
		delta = state.Right.MulScalar(speed)
	}
	c.position = c.position.Add(delta)
}

// Rotate adjusts yaw and pitch by a mouse delta, clamping pitch short of
// the poles to avoid the look direction flipping.
func (c *Camera) Rotate(dx, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.yaw += dx * mouseSens
	c.pitch -= dy * mouseSens

	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < -maxPitch {
		c.pitch = -maxPitch
	}
}
