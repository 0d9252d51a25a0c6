package renderer

import (
	"context"
	"math/rand"

	"github.com/kdrisco/flareray/pkg/camera"
	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/integrator"
	"github.com/kdrisco/flareray/pkg/skybox"
	"github.com/kdrisco/flareray/pkg/vec3"
)

// maxScale bounds the worker coarseness assigned by scaleForWorker.
const maxScale = 16

// scaleForWorker returns the initial coarseness scale for worker index
// i: worker 0 renders at full resolution, higher-indexed workers render
// proportionally coarser tiles up to maxScale.
func scaleForWorker(i int) int {
	scale := 1
	for ; i > 0 && scale < maxScale; i-- {
		scale <<= 1
	}
	if scale > maxScale {
		return maxScale
	}
	return scale
}

// Worker renders repeated full passes at a fixed coarseness and merges
// each pass into the shared Accumulator, discarding its local sum
// whenever the accumulator's generation has moved on since the pass
// started.
type Worker struct {
	Index       int
	Scale       int
	Scene       *core.Scene
	Sky         *skybox.Cubemap
	Camera      *camera.Camera
	Params      integrator.Params
	Accumulator *Accumulator

	rng       *rand.Rand
	local     []vec3.Vector3
	localW    int
	localH    int
	cachedGen uint32
}

// NewWorker returns a worker with scale assigned by its index per
// scaleForWorker.
func NewWorker(index int, scene *core.Scene, sky *skybox.Cubemap, cam *camera.Camera, acc *Accumulator) *Worker {
	return &Worker{
		Index:       index,
		Scale:       scaleForWorker(index),
		Scene:       scene,
		Sky:         sky,
		Camera:      cam,
		Params:      integrator.DefaultParams(),
		Accumulator: acc,
		rng:         rand.New(rand.NewSource(int64(index) + 1)),
	}
}

// Run executes the worker loop until ctx is canceled.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.pass()
	}
}

func (w *Worker) pass() {
	frameW, frameH, generation := w.Accumulator.mergeOrDiscard(w.local, w.weight(), w.cachedGen)

	if frameW != w.localW || frameH != w.localH {
		w.localW, w.localH = frameW, frameH
		w.local = make([]vec3.Vector3, frameW*frameH)
	} else {
		for i := range w.local {
			w.local[i] = vec3.Zero
		}
	}
	w.cachedGen = generation

	if frameW == 0 || frameH == 0 {
		return
	}

	scale := w.Scale
	coarseW := frameW / scale
	coarseH := frameH / scale
	if coarseW == 0 || coarseH == 0 {
		return
	}

	state := w.Camera.Snapshot()
	aspect := float32(frameW) / float32(frameH)
	weight := w.weight()

	for j := 0; j < coarseH; j++ {
		for i := 0; i < coarseW; i++ {
			u := 1 - float32(i)/float32(coarseW-1+boolToInt(coarseW == 1))
			v := 1 - float32(j)/float32(coarseH-1+boolToInt(coarseH == 1))
			color := integrator.SamplePixel(w.Scene, w.Sky, state, w.Params, u, v, aspect, w.rng)
			splatTileInto(w.local, i*scale, j*scale, scale, color.MulScalar(weight), frameW, frameH)
		}
	}
}

func (w *Worker) weight() float32 {
	return 1 / float32(w.Scale*w.Scale)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
