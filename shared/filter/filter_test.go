package filter

import (
	"image"
	"image/color"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePlane(size, lo, hi int, value float32) *Plane {
	p := NewPlane(size, size)
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			p.Set(x, y, value)
		}
	}
	return p
}

func TestIndexBorders(t *testing.T) {
	tests := []struct {
		name   string
		i, n   int
		border Border
		want   int
	}{
		{"inside", 3, 8, BorderReflect101, 3},
		{"reflect101 before", -1, 8, BorderReflect101, 1},
		{"reflect101 after", 8, 8, BorderReflect101, 6},
		{"reflect before", -1, 8, BorderReflect, 0},
		{"reflect after", 8, 8, BorderReflect, 7},
		{"replicate before", -5, 8, BorderReplicate, 0},
		{"replicate after", 20, 8, BorderReplicate, 7},
		{"wrap before", -1, 8, BorderWrap, 7},
		{"wrap after", 9, 8, BorderWrap, 1},
		{"single pixel", -3, 1, BorderReflect101, 0},
		{"far reflect101", -20, 8, BorderReflect101, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Index(tt.i, tt.n, tt.border))
		})
	}
}

func TestParallelRowsCoversEveryRowOnce(t *testing.T) {
	for _, height := range []int{0, 1, 7, 480} {
		var visits = make([]int32, height)
		ParallelRows(height, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				atomic.AddInt32(&visits[y], 1)
			}
		})
		for y, v := range visits {
			assert.Equal(t, int32(1), v, "row %d of %d", y, height)
		}
	}
}

func TestGaussianKernelIsNormalizedAndSymmetric(t *testing.T) {
	k := GaussianKernel(0, 5)
	require.Len(t, k, 5)

	var sum float32
	for _, v := range k {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-5)
	assert.InDelta(t, k[0], k[4], 1e-7)
	assert.InDelta(t, k[1], k[3], 1e-7)
	assert.Greater(t, k[2], k[1])

	assert.InDelta(t, 1.1, SigmaForSize(5), 1e-9)
	assert.Len(t, GaussianKernel(1.0, 0), 7)
}

func TestGaussianBlurKeepsConstantPlane(t *testing.T) {
	p := NewPlane(20, 10)
	for i := range p.Pix {
		p.Pix[i] = 42
	}
	out := GaussianBlur(p, 1.1)
	for _, v := range out.Pix {
		assert.InDelta(t, 42, v, 1e-3)
	}
}

func TestCannyFindsNoEdgesOnFlatPlane(t *testing.T) {
	p := NewPlane(32, 32)
	em := Canny(p, 50, 150, NormL1)
	assert.Zero(t, em.Count())
}

func TestCannyOutlinesSquare(t *testing.T) {
	p := squarePlane(40, 10, 29, 255)
	em := Canny(p, 50, 150, NormL1)

	assert.Positive(t, em.Count())
	assert.False(t, em.Edge[20*40+20], "center of the square is not an edge")
	assert.False(t, em.Edge[2*40+2], "background is not an edge")

	onBorder := em.Edge[20*40+9] || em.Edge[20*40+10]
	assert.True(t, onBorder, "left side of the square is detected")
}

func TestCannyThresholdsSuppressWeakEdges(t *testing.T) {
	p := squarePlane(40, 10, 29, 10)
	em := Canny(p, 50, 150, NormL1)
	assert.Zero(t, em.Count(), "a step of 10 stays below the low threshold")

	em = Canny(p, 5, 20, NormL2)
	assert.Positive(t, em.Count())
}

func TestFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	img.SetGray(1, 2, color.Gray{Y: 200})
	p := FromImage(img)
	assert.Equal(t, float32(200), p.At(1, 2))

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	q := FromImage(rgba)
	assert.Equal(t, float32(255), q.At(0, 0))
	assert.Equal(t, float32(0), q.At(1, 1))
}

func TestEdgeMapImage(t *testing.T) {
	em := &EdgeMap{Width: 2, Height: 1, Edge: []bool{true, false}}
	img := em.Image()
	assert.Equal(t, uint8(255), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(1, 0).Y)
	assert.Equal(t, 1, em.Count())
}
