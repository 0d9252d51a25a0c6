package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kdrisco/flareray/pkg/camera"
	"github.com/kdrisco/flareray/pkg/renderer"
)

const moveSpeed = 0.5

// inputState tracks WASD movement and mouse look, invalidating the
// accumulator on every camera-changing event per the original
// renderer's invalidate-on-input protocol.
type inputState struct {
	window *glfw.Window
	cam    *camera.Camera
	acc    *renderer.Accumulator

	lastX, lastY float64
	initialized  bool
}

func newInputState(window *glfw.Window, cam *camera.Camera, acc *renderer.Accumulator) *inputState {
	return &inputState{window: window, cam: cam, acc: acc}
}

func (in *inputState) poll(screenW, screenH int) {
	moved := false

	if in.window.GetKey(glfw.KeyW) == glfw.Press {
		in.cam.Move(camera.Forward, moveSpeed)
		moved = true
	}
	if in.window.GetKey(glfw.KeyS) == glfw.Press {
		in.cam.Move(camera.Backward, moveSpeed)
		moved = true
	}
	if in.window.GetKey(glfw.KeyA) == glfw.Press {
		in.cam.Move(camera.Left, moveSpeed)
		moved = true
	}
	if in.window.GetKey(glfw.KeyD) == glfw.Press {
		in.cam.Move(camera.Right, moveSpeed)
		moved = true
	}

	x, y := in.window.GetCursorPos()
	if in.initialized {
		dx, dy := x-in.lastX, y-in.lastY
		if dx != 0 || dy != 0 {
			in.cam.Rotate(dx, dy)
			moved = true
		}
	} else {
		in.initialized = true
	}
	in.lastX, in.lastY = x, y

	if moved {
		in.acc.Invalidate()
	}
}
