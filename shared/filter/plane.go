// Package filter implements the convolution and edge-detection kernels shared
// by the imaging and vision demos.
//
// Images are handled as single-channel float32 planes. Rows are processed in
// bands on separate goroutines; every band writes only its own rows.
package filter

import (
	"image"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Plane is a single-channel image stored row-major.
type Plane struct {
	Width  int
	Height int
	Pix    []float32
}

// NewPlane allocates a zeroed plane.
func NewPlane(width, height int) *Plane {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Plane{Width: width, Height: height, Pix: make([]float32, width*height)}
}

// FromImage converts img to a luminance plane.
func FromImage(img image.Image) *Plane {
	b := img.Bounds()
	p := NewPlane(b.Dx(), b.Dy())
	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < p.Height; y++ {
			row := g.Pix[y*g.Stride : y*g.Stride+p.Width]
			for x, v := range row {
				p.Pix[y*p.Width+x] = float32(v)
			}
		}
		return p
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			p.Pix[y*p.Width+x] = float32(c.Y)
		}
	}
	return p
}

// At returns the value at (x, y) with mirrored borders.
func (p *Plane) At(x, y int) float32 {
	return p.Pix[Index(y, p.Height, BorderReflect101)*p.Width+Index(x, p.Width, BorderReflect101)]
}

// Set stores v at (x, y). Out-of-range coordinates are ignored.
func (p *Plane) Set(x, y int, v float32) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	p.Pix[y*p.Width+x] = v
}

// Border selects how coordinates outside the plane are mapped back inside.
type Border int

const (
	// BorderReflect101 mirrors around the edge pixel: gfedcb|abcdefgh|gfedcba.
	BorderReflect101 Border = iota
	// BorderReflect mirrors including the edge pixel: fedcba|abcdefgh|hgfedcb.
	BorderReflect
	// BorderReplicate repeats the edge pixel: aaaaaa|abcdefgh|hhhhhhh.
	BorderReplicate
	// BorderWrap tiles the plane: cdefgh|abcdefgh|abcdefg.
	BorderWrap
)

// Index maps i into [0, n) according to border.
func Index(i, n int, border Border) int {
	if n <= 1 {
		return 0
	}
	if i >= 0 && i < n {
		return i
	}
	switch border {
	case BorderReplicate:
		if i < 0 {
			return 0
		}
		return n - 1
	case BorderWrap:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case BorderReflect:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default:
		period := 2*n - 2
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - i
		}
		return i
	}
}

// ParallelRows calls fn on disjoint row bands covering [0, height).
func ParallelRows(height int, fn func(y0, y1 int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		if height > 0 {
			fn(0, height)
		}
		return
	}

	band := (height + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += band {
		y0 := y0
		y1 := min(y0+band, height)
		g.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}
