// Package skybox loads and samples the six-face cubemap used as
// environment radiance whenever a path escapes the scene.
package skybox

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/kdrisco/flareray/pkg/vec3"
)

// face names the six cubemap faces in the on-disk naming convention.
type face int

const (
	faceRight face = iota
	faceLeft
	faceTop
	faceBottom
	faceFront
	faceBack
)

var faceFileNames = [6]string{"right", "left", "top", "bottom", "front", "back"}

// Cubemap holds six decoded faces and samples environment radiance by
// dominant-axis direction.
type Cubemap struct {
	faces [6]image.Image
}

// LoadCubemap decodes the six face images (named right/left/top/bottom/
// front/back, any format image/jpeg or image/png can read) from dir. A
// face whose dimensions don't match the first decoded face is resized
// to match, so a skybox assembled from mismatched source images still
// samples consistently.
func LoadCubemap(dir string) (*Cubemap, error) {
	var cm Cubemap
	var want image.Rectangle

	for i, name := range faceFileNames {
		img, err := loadFace(dir, name)
		if err != nil {
			return nil, fmt.Errorf("skybox: loading face %q: %w", name, err)
		}

		if i == 0 {
			want = img.Bounds()
		} else if img.Bounds().Dx() != want.Dx() || img.Bounds().Dy() != want.Dy() {
			img = resizeFace(img, want.Dx(), want.Dy())
		}

		cm.faces[i] = img
	}
	return &cm, nil
}

func resizeFace(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// FromImages builds a Cubemap directly from six already-decoded face
// images, ordered right, left, top, bottom, front, back. Useful for
// procedurally generated environments and tests.
func FromImages(faces [6]image.Image) *Cubemap {
	return &Cubemap{faces: faces}
}

func loadFace(dir, name string) (image.Image, error) {
	matches, err := filepath.Glob(filepath.Join(dir, name+".*"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no file named %s.* found in %s", name, dir)
	}

	f, err := os.Open(matches[0])
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", matches[0], err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", matches[0], err)
	}
	return img, nil
}

// Sample returns the environment radiance for direction d, selecting a
// face by d's dominant axis and looking up the nearest pixel.
func (cm *Cubemap) Sample(d vec3.Vector3) vec3.Vector3 {
	x, y, z := d.X(), d.Y(), d.Z()
	ax, ay, az := abs32(x), abs32(y), abs32(z)

	var f face
	var u, v float32

	switch {
	case ax >= ay && ax >= az:
		if x > 0 {
			f = faceRight
			u, v = -z/ax, -y/ax
		} else {
			f = faceLeft
			u, v = z/ax, -y/ax
		}
	case ay >= ax && ay >= az:
		if y > 0 {
			f = faceTop
			u, v = x/ay, z/ay
		} else {
			f = faceBottom
			u, v = x/ay, -z/ay
		}
	default:
		if z > 0 {
			f = faceFront
			u, v = x/az, -y/az
		} else {
			f = faceBack
			u, v = -x/az, -y/az
		}
	}

	return cm.sampleFace(f, u, v)
}

func (cm *Cubemap) sampleFace(f face, u, v float32) vec3.Vector3 {
	img := cm.faces[f]
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	u = clamp(u, -1, 1)*0.5 + 0.5
	v = clamp(v, -1, 1)*0.5 + 0.5

	px := bounds.Min.X + clampInt(int(u*float32(w)), 0, w-1)
	py := bounds.Min.Y + clampInt(int(v*float32(h)), 0, h-1)

	r, g, b, _ := img.At(px, py).RGBA()
	// RGBA() widens 8-bit channels to 16-bit by replication; shift back
	// down to the original 8-bit sample before linearizing by /255.
	return vec3.New(
		float32(r>>8)/255,
		float32(g>>8)/255,
		float32(b>>8)/255,
	)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func clamp(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func clampInt(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
