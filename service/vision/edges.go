package vision

import (
	"math"

	"github.com/thirukguru/mylib-demo/shared/filter"
)

// Point is a sub-pixel position.
type Point struct {
	Row float64
	Col float64
}

// Contour is an ordered chain of edge points.
type Contour []Point

// sobelScale converts Sobel responses to gray values per pixel.
const sobelScale = 8

// EdgesSubPix extracts sub-pixel edge contours. Only the "canny" filter is
// supported: the image is smoothed with a Gaussian of sigma alpha, edges are
// found by non-maximum suppression of the L2 gradient amplitude and
// hysteresis between low and high, refined by a parabola fit across the
// edge and linked into 8-connected contours.
func (img *Image) EdgesSubPix(filterName string, alpha, low, high float64) ([]Contour, error) {
	const op = "edges_sub_pix"
	if filterName != "canny" {
		return nil, newError(CodeBadParameter, op, "unsupported filter %q", filterName)
	}
	if img.Channels != 1 {
		return nil, newError(CodeBadImage, op, "expected 1 channel, got %d", img.Channels)
	}
	if alpha <= 0 {
		return nil, newError(CodeBadParameter, op, "alpha %g must be positive", alpha)
	}
	if low < 0 || low > high {
		return nil, newError(CodeBadParameter, op, "invalid hysteresis thresholds %g/%g", low, high)
	}

	smoothed := filter.GaussianBlur(img.plane(), alpha)
	em := filter.Canny(smoothed, low*sobelScale, high*sobelScale, filter.NormL2)
	return link(em), nil
}

// refine returns the sub-pixel position of the edge pixel (x, y).
func refine(em *filter.EdgeMap, x, y int) Point {
	dx, dy := em.Direction(x, y)
	m := em.Mag
	a := float64(m.At(x-dx, y-dy))
	b := float64(m.At(x, y))
	c := float64(m.At(x+dx, y+dy))

	off := 0.0
	if den := a - 2*b + c; den < 0 {
		off = 0.5 * (a - c) / den
		off = math.Max(-0.5, math.Min(0.5, off))
	}
	return Point{Row: float64(y) + off*float64(dy), Col: float64(x) + off*float64(dx)}
}

// neighbours in the order they are tried while tracing; 4-neighbours first.
var neighbours = [8][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

// link traces edge pixels into contours. Chains start at end points so
// open edges come out as a single contour; remaining closed loops start
// at their first pixel in raster order.
func link(em *filter.EdgeMap) []Contour {
	w, h := em.Width, em.Height
	isEdge := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h && em.Edge[y*w+x]
	}
	degree := func(x, y int) int {
		n := 0
		for _, d := range neighbours {
			if isEdge(x+d[0], y+d[1]) {
				n++
			}
		}
		return n
	}

	visited := make([]bool, w*h)
	trace := func(x, y int) Contour {
		var c Contour
		for {
			visited[y*w+x] = true
			c = append(c, refine(em, x, y))
			next := false
			for _, d := range neighbours {
				nx, ny := x+d[0], y+d[1]
				if isEdge(nx, ny) && !visited[ny*w+nx] {
					x, y, next = nx, ny, true
					break
				}
			}
			if !next {
				return c
			}
		}
	}

	var contours []Contour
	for pass := 0; pass < 2; pass++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x
				if !em.Edge[i] || visited[i] {
					continue
				}
				if pass == 0 && degree(x, y) > 1 {
					continue
				}
				contours = append(contours, trace(x, y))
			}
		}
	}
	return contours
}
