// Command pathtracer is the interactive GLFW/OpenGL demo front end for
// the progressive path tracer: it owns the window, input, and texture
// presentation, and leaves rendering to pkg/renderer.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli"

	"github.com/kdrisco/flareray/pkg/camera"
	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/renderer"
	"github.com/kdrisco/flareray/pkg/scene"
	"github.com/kdrisco/flareray/pkg/skybox"
	"github.com/kdrisco/flareray/pkg/vec3"
)

func init() {
	// GLFW and OpenGL calls must happen on the thread that owns the
	// window's GL context.
	runtime.LockOSThread()
}

type logger struct{}

func (logger) Printf(format string, args ...interface{}) { log.Printf(format, args...) }

func main() {
	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "interactive progressive path tracer"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "skybox", Value: "assets/skybox", Usage: "directory containing right/left/top/bottom/front/back face images"},
		cli.IntFlag{Name: "width", Value: 1280, Usage: "window width"},
		cli.IntFlag{Name: "height", Value: 960, Usage: "window height"},
		cli.IntFlag{Name: "workers", Value: 16, Usage: "number of render worker goroutines"},
		cli.StringFlag{Name: "scene", Value: "default", Usage: "scene to render: default or cornell"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	var log core.Logger = logger{}

	sky, err := skybox.LoadCubemap(c.String("skybox"))
	if err != nil {
		return fmt.Errorf("pathtracer: %w", err)
	}

	var sc *core.Scene
	switch c.String("scene") {
	case "cornell":
		sc = scene.NewCornellScene()
	default:
		sc = scene.NewDefaultScene()
	}

	width, height := c.Int("width"), c.Int("height")

	window, err := initWindow(width, height)
	if err != nil {
		return fmt.Errorf("pathtracer: %w", err)
	}
	defer glfw.Terminate()

	cam := camera.New(vec3.Zero)
	acc := renderer.NewAccumulator(width, height)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	numWorkers := c.Int("workers")
	for i := 0; i < numWorkers; i++ {
		w := renderer.NewWorker(i, sc, sky, cam, acc)
		go w.Run(ctx)
	}

	input := newInputState(window, cam, acc)
	presenter, err := newPresenter()
	if err != nil {
		return fmt.Errorf("pathtracer: %w", err)
	}

	log.Printf("rendering with %d workers at %dx%d", numWorkers, width, height)

	for !window.ShouldClose() {
		screenW, screenH := window.GetSize()
		input.poll(screenW, screenH)

		frame := acc.Present(screenW, screenH, 1, presenter.seedPreview(sc, sky, cam))
		presenter.draw(frame, screenW, screenH)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

func initWindow(width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, "Path Trace", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("initializing gl: %w", err)
	}

	glfw.SwapInterval(1)

	return window, nil
}
