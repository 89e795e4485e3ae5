package filter

import (
	"image"
	"math"
)

// Norm selects how the gradient magnitude is computed.
type Norm int

const (
	// NormL1 uses |gx| + |gy|.
	NormL1 Norm = iota
	// NormL2 uses sqrt(gx² + gy²).
	NormL2
)

const (
	tan22 = 0.41421356
	tan67 = 2.41421356
)

// Sobel returns the horizontal and vertical 3×3 Sobel derivatives of p.
func Sobel(p *Plane) (gx, gy *Plane) {
	gx = NewPlane(p.Width, p.Height)
	gy = NewPlane(p.Width, p.Height)

	ParallelRows(p.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < p.Width; x++ {
				tl, tc, tr := p.At(x-1, y-1), p.At(x, y-1), p.At(x+1, y-1)
				ml, mr := p.At(x-1, y), p.At(x+1, y)
				bl, bc, br := p.At(x-1, y+1), p.At(x, y+1), p.At(x+1, y+1)

				gx.Pix[y*p.Width+x] = (tr + 2*mr + br) - (tl + 2*ml + bl)
				gy.Pix[y*p.Width+x] = (bl + 2*bc + br) - (tl + 2*tc + tr)
			}
		}
	})
	return gx, gy
}

// EdgeMap is the result of Canny edge detection.
type EdgeMap struct {
	Width  int
	Height int
	Edge   []bool
	Mag    *Plane
	Gx     *Plane
	Gy     *Plane
}

// Canny detects edges in p: Sobel gradient, non-maximum suppression and
// hysteresis thresholding with the given low and high thresholds.
func Canny(p *Plane, low, high float64, norm Norm) *EdgeMap {
	if low > high {
		low, high = high, low
	}
	gx, gy := Sobel(p)
	w, h := p.Width, p.Height

	mag := NewPlane(w, h)
	for i := range mag.Pix {
		ax, ay := gx.Pix[i], gy.Pix[i]
		if norm == NormL2 {
			mag.Pix[i] = float32(math.Hypot(float64(ax), float64(ay)))
		} else {
			mag.Pix[i] = abs32(ax) + abs32(ay)
		}
	}

	em := &EdgeMap{Width: w, Height: h, Edge: make([]bool, w*h), Mag: mag, Gx: gx, Gy: gy}

	// 0 = suppressed, 1 = weak candidate, 2 = strong.
	class := make([]uint8, w*h)
	ParallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			if y == 0 || y == h-1 {
				continue
			}
			for x := 1; x < w-1; x++ {
				i := y*w + x
				m := mag.Pix[i]
				if float64(m) <= low {
					continue
				}
				dx, dy := em.Direction(x, y)
				a := mag.Pix[(y-dy)*w+x-dx]
				b := mag.Pix[(y+dy)*w+x+dx]
				if m > a && m >= b {
					if float64(m) > high {
						class[i] = 2
					} else {
						class[i] = 1
					}
				}
			}
		}
	})

	stack := make([]int, 0, 64)
	for i, c := range class {
		if c == 2 {
			em.Edge[i] = true
			stack = append(stack, i)
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for ny := y - 1; ny <= y+1; ny++ {
			for nx := x - 1; nx <= x+1; nx++ {
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				if class[j] == 1 && !em.Edge[j] {
					em.Edge[j] = true
					stack = append(stack, j)
				}
			}
		}
	}

	return em
}

// Direction returns the unit step along the quantized gradient at (x, y).
func (e *EdgeMap) Direction(x, y int) (dx, dy int) {
	i := y*e.Width + x
	gx, gy := float64(e.Gx.Pix[i]), float64(e.Gy.Pix[i])
	ax, ay := math.Abs(gx), math.Abs(gy)

	switch {
	case ay <= ax*tan22:
		return 1, 0
	case ay >= ax*tan67:
		return 0, 1
	case (gx < 0) == (gy < 0):
		return 1, 1
	default:
		return -1, 1
	}
}

// Count returns the number of edge pixels.
func (e *EdgeMap) Count() int {
	n := 0
	for _, v := range e.Edge {
		if v {
			n++
		}
	}
	return n
}

// Image renders edges as white on black.
func (e *EdgeMap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, e.Width, e.Height))
	for y := 0; y < e.Height; y++ {
		for x := 0; x < e.Width; x++ {
			if e.Edge[y*e.Width+x] {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
