package renderer

import (
	"math/rand"

	"github.com/kdrisco/flareray/pkg/camera"
	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/integrator"
	"github.com/kdrisco/flareray/pkg/skybox"
	"github.com/kdrisco/flareray/pkg/vec3"
)

// previewScale is the coarseness of the seed pass the presenter renders
// directly into an empty accumulator, guaranteeing the user sees
// something immediately after a camera move.
const previewScale = 16

// SeedPreview renders one coarse 1/16-resolution pass directly into
// accum, splatting each coarse cell into its 16x16 tile. It is called
// by the presenter whenever the accumulator is empty.
func SeedPreview(scene *core.Scene, sky *skybox.Cubemap, cam *camera.Camera, accum []vec3.Vector3, frameW, frameH int) {
	if frameW == 0 || frameH == 0 {
		return
	}
	coarseW := frameW / previewScale
	coarseH := frameH / previewScale
	if coarseW == 0 || coarseH == 0 {
		return
	}

	state := cam.Snapshot()
	aspect := float32(frameW) / float32(frameH)
	params := integrator.DefaultParams()
	rng := rand.New(rand.NewSource(1))

	for j := 0; j < coarseH; j++ {
		for i := 0; i < coarseW; i++ {
			u := 1 - float32(i)/float32(coarseW-1+boolToInt(coarseW == 1))
			v := 1 - float32(j)/float32(coarseH-1+boolToInt(coarseH == 1))
			color := integrator.SamplePixel(scene, sky, state, params, u, v, aspect, rng)
			splatTileInto(accum, i*previewScale, j*previewScale, previewScale, color.MulScalar(previewSeedWeight), frameW, frameH)
		}
	}
}

func splatTileInto(accum []vec3.Vector3, x0, y0, scale int, color vec3.Vector3, frameW, frameH int) {
	x1 := x0 + scale
	if x1 > frameW {
		x1 = frameW
	}
	y1 := y0 + scale
	if y1 > frameH {
		y1 = frameH
	}
	for y := y0; y < y1; y++ {
		row := y * frameW
		for x := x0; x < x1; x++ {
			accum[row+x] = accum[row+x].Add(color)
		}
	}
}
