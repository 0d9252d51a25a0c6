package main

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kdrisco/flareray/pkg/camera"
	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/renderer"
	"github.com/kdrisco/flareray/pkg/skybox"
	"github.com/kdrisco/flareray/pkg/vec3"
)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 position;
out vec2 uv;
void main() {
	uv = (position + vec2(1.0)) * 0.5;
	gl_Position = vec4(position, 0.0, 1.0);
}
` + "\x00"

const fragmentShaderSource = `
#version 330 core
in vec2 uv;
out vec4 fragColor;
uniform sampler2D frame;
void main() {
	fragColor = vec4(texture(frame, uv).rgb, 1.0);
}
` + "\x00"

// a clip-space quad covering the whole viewport, drawn as two triangles.
var quadVertices = []float32{
	-1, -1, 1, -1, 1, 1,
	-1, -1, 1, 1, -1, 1,
}

// presenter owns the GL program, VAO, and frame texture used to blit
// the renderer's Frame buffer to the screen each tick.
type presenter struct {
	program uint32
	vao     uint32
	texture uint32
}

func newPresenter() (*presenter, error) {
	program, err := linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &presenter{program: program, vao: vao, texture: texture}, nil
}

// seedPreview returns the seed callback Accumulator.Present invokes
// when the accumulator is empty.
func (p *presenter) seedPreview(scene *core.Scene, sky *skybox.Cubemap, cam *camera.Camera) func(accum []vec3.Vector3, w, h int) {
	return func(accum []vec3.Vector3, w, h int) {
		renderer.SeedPreview(scene, sky, cam, accum, w, h)
	}
}

func (p *presenter) draw(frame renderer.Frame, screenW, screenH int) {
	gl.Viewport(0, 0, int32(screenW), int32(screenH))
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGB,
		int32(frame.Width), int32(frame.Height), 0,
		gl.RGB, gl.FLOAT,
		unsafe.Pointer(&frame.Pixels[0]),
	)

	gl.UseProgram(p.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("linking shader program: %v", log)
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compiling shader: %v", log)
	}

	return shader, nil
}
