package texture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/webp"

	"github.com/df07/pathtracer/pkg/core"
)

// Mapped indexes into a decoded image's pixels as a 2D color grid.
type Mapped struct {
	colors [][]core.Vec3 // colors[row][col], row 0 at the top of the image
}

// NewMapped wraps an already-decoded color grid.
func NewMapped(colors [][]core.Vec3) *Mapped {
	return &Mapped{colors: colors}
}

// LoadMapped decodes a PNG or WebP file (chosen by extension) into a Mapped
// texture's color grid.
func LoadMapped(path string) (*Mapped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mapped texture %q: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(f)
	case ".webp":
		img, err = webp.Decode(f)
	default:
		return nil, fmt.Errorf("mapped texture %q: unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding mapped texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	colors := make([][]core.Vec3, bounds.Dy())
	for row := 0; row < bounds.Dy(); row++ {
		colors[row] = make([]core.Vec3, bounds.Dx())
		for col := 0; col < bounds.Dx(); col++ {
			r, g, b, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			colors[row][col] = core.NewVec3(float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0)
		}
	}

	return &Mapped{colors: colors}, nil
}

// ValueAt indexes colors[floor(v*H)][floor(u*W)], clamping u and v to
// [0,1] first so out-of-range surface coordinates degrade to edge pixels
// instead of wrapping or panicking.
func (m *Mapped) ValueAt(u, v float64, p core.Vec3) core.Vec3 {
	if len(m.colors) == 0 {
		return core.Vec3{}
	}
	height := len(m.colors)
	width := len(m.colors[0])

	row := clampIndex(int(clamp01(v)*float64(height)), height)
	col := clampIndex(int(clamp01(u)*float64(width)), width)
	return m.colors[row][col]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
