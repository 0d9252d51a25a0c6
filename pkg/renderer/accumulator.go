// Package renderer implements the worker pool and shared accumulator
// that turn per-pixel radiance samples into a progressively refining
// preview image.
package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/kdrisco/flareray/pkg/vec3"
)

// previewSeedWeight is the weight assigned to the coarse preview pass
// seeded whenever the accumulator is empty, matching the original
// renderer's 1/256 (a 16x16 coarse tile) seed value.
const previewSeedWeight = 1.0 / 256.0

// Frame is a row-major, bottom-left-origin buffer of linear RGB pixels
// ready for presentation.
type Frame struct {
	Pixels []vec3.Vector3
	Width  int
	Height int
}

// Accumulator holds the shared frame and accumulation buffers plus the
// generation counter invalidation protocol. All fields are mutated only
// under mu; workers and the presenter never touch them unlocked.
type Accumulator struct {
	mu         sync.Mutex
	frame      []vec3.Vector3
	accum      []vec3.Vector3
	frameW     int
	frameH     int
	accumCount float32
	generation atomic.Uint32
}

// NewAccumulator returns an accumulator sized for width x height.
func NewAccumulator(width, height int) *Accumulator {
	a := &Accumulator{}
	a.resizeLocked(width, height)
	return a
}

// Invalidate zeroes the accumulated sample count and bumps the
// generation, causing every worker's next merge attempt to discard its
// in-flight local sum.
func (a *Accumulator) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accumCount = 0
	a.generation.Add(1)
}

// Generation returns the current generation counter.
func (a *Accumulator) Generation() uint32 {
	return a.generation.Load()
}

// Dimensions returns the accumulator's current frame size.
func (a *Accumulator) Dimensions() (w, h int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frameW, a.frameH
}

func (a *Accumulator) resizeLocked(width, height int) {
	a.frameW = width
	a.frameH = height
	a.frame = make([]vec3.Vector3, width*height)
	a.accum = make([]vec3.Vector3, width*height)
	a.accumCount = 0
	a.generation.Add(1)
}

// mergeOrDiscard is called by a worker after it finishes a pass. If
// local's cached generation still matches the accumulator's current
// generation, its contribution is merged in; otherwise it is silently
// discarded. It returns the accumulator's current size so the caller
// can detect a resize and reallocate its local buffer outside the lock,
// and the generation observed for the worker's next pass.
func (a *Accumulator) mergeOrDiscard(local []vec3.Vector3, weight float32, cachedGeneration uint32) (w, h int, generation uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if local != nil && cachedGeneration == a.generation.Load() {
		for i, c := range local {
			a.accum[i] = a.accum[i].Add(c)
		}
		a.accumCount += weight
	}

	return a.frameW, a.frameH, a.generation.Load()
}

// Present produces the current frame by dividing accum by accumCount,
// reallocating for a size change and seeding a coarse preview if the
// accumulator is empty. When accumCount is zero, accum is cleared of any
// stale sums and seedPreview is called with the buffer and the frame
// dimensions.
func (a *Accumulator) Present(screenW, screenH int, scale float32, seedPreview func(accum []vec3.Vector3, frameW, frameH int)) Frame {
	a.mu.Lock()
	defer a.mu.Unlock()

	targetW := int(float32(screenW) * scale)
	targetH := int(float32(screenH) * scale)
	if targetW != a.frameW || targetH != a.frameH {
		a.resizeLocked(targetW, targetH)
	}

	if a.accumCount == 0 {
		for i := range a.accum {
			a.accum[i] = vec3.Zero
		}
		seedPreview(a.accum, a.frameW, a.frameH)
		a.accumCount = previewSeedWeight
	}

	for i, c := range a.accum {
		a.frame[i] = c.MulScalar(1 / a.accumCount)
	}

	out := make([]vec3.Vector3, len(a.frame))
	copy(out, a.frame)
	return Frame{Pixels: out, Width: a.frameW, Height: a.frameH}
}

// AccumCount returns the current accumulated sample weight, for tests
// that verify the generation/invalidation protocol.
func (a *Accumulator) AccumCount() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.accumCount
}
