package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/kdrisco/flareray/pkg/camera"
	"github.com/kdrisco/flareray/pkg/core"
	"github.com/kdrisco/flareray/pkg/skybox"
	"github.com/kdrisco/flareray/pkg/vec3"
)

func solidSky(c color.RGBA) *skybox.Cubemap {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, c)
		}
	}
	return skybox.FromImages([6]image.Image{img, img, img, img, img, img})
}

func TestScaleForWorkerCapsAtMax(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 1},
		{1, 2},
		{4, 16},
		{5, 16},
		{10, 16},
	}
	for _, tt := range tests {
		if got := scaleForWorker(tt.index); got != tt.want {
			t.Errorf("scaleForWorker(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestWorkerPassMergesIntoAccumulator(t *testing.T) {
	scene := core.NewScene()
	sky := solidSky(color.RGBA{128, 128, 128, 255})
	cam := camera.New(vec3.Zero)
	acc := NewAccumulator(8, 8)

	w := NewWorker(0, scene, sky, cam, acc)
	w.pass()

	if acc.AccumCount() == 0 {
		t.Error("expected first pass to contribute to accumCount")
	}
}

func TestWorkerDiscardsStalePassAfterInvalidate(t *testing.T) {
	scene := core.NewScene()
	sky := solidSky(color.RGBA{255, 255, 255, 255})
	cam := camera.New(vec3.Zero)
	acc := NewAccumulator(8, 8)

	w := NewWorker(1, scene, sky, cam, acc)
	w.pass() // first pass merges nothing (w.local is nil) and caches the current generation

	acc.Invalidate()

	// w.cachedGen is still the pre-invalidate generation, simulating a
	// pass that was already in flight when the invalidation fired; the
	// merge of its local buffer must discard rather than add.
	_, _, gen := acc.mergeOrDiscard(w.local, w.weight(), w.cachedGen)
	if gen == w.cachedGen {
		t.Fatal("test setup invalid: generation did not change")
	}
	if acc.AccumCount() != 0 {
		t.Errorf("expected stale in-flight pass to be discarded, accumCount=%v", acc.AccumCount())
	}
}
