package vision

import "math"

// Run is a horizontal chord of a region, columns inclusive.
type Run struct {
	Row      int
	ColBegin int
	ColEnd   int
}

// Region is a set of pixels stored as runs sorted by row and column.
type Region struct {
	Runs []Run
}

// GenRectangle1 creates the axis-parallel rectangle with corners
// (row1, col1) and (row2, col2), both inclusive.
func GenRectangle1(row1, col1, row2, col2 int) (*Region, error) {
	const op = "gen_rectangle1"
	if row2 < row1 || col2 < col1 {
		return nil, newError(CodeBadParameter, op, "corner (%d,%d) lies before (%d,%d)", row2, col2, row1, col1)
	}
	r := &Region{Runs: make([]Run, 0, row2-row1+1)}
	for row := row1; row <= row2; row++ {
		r.Runs = append(r.Runs, Run{Row: row, ColBegin: col1, ColEnd: col2})
	}
	return r, nil
}

// Threshold selects the pixels whose gray value lies in [minGray, maxGray].
func (img *Image) Threshold(minGray, maxGray float64) (*Region, error) {
	const op = "threshold"
	if img.Channels != 1 {
		return nil, newError(CodeBadImage, op, "expected 1 channel, got %d", img.Channels)
	}
	if minGray > maxGray {
		return nil, newError(CodeBadParameter, op, "min %g exceeds max %g", minGray, maxGray)
	}
	r := &Region{}
	for row := 0; row < img.Height; row++ {
		start := -1
		for col := 0; col <= img.Width; col++ {
			in := false
			if col < img.Width {
				v := float64(img.Pix[row*img.Width+col])
				in = v >= minGray && v <= maxGray
			}
			switch {
			case in && start < 0:
				start = col
			case !in && start >= 0:
				r.Runs = append(r.Runs, Run{Row: row, ColBegin: start, ColEnd: col - 1})
				start = -1
			}
		}
	}
	return r, nil
}

// Area returns the number of pixels in the region.
func (r *Region) Area() int {
	n := 0
	for _, run := range r.Runs {
		n += run.ColEnd - run.ColBegin + 1
	}
	return n
}

// Contains reports whether the pixel (row, col) belongs to the region.
func (r *Region) Contains(row, col int) bool {
	for _, run := range r.Runs {
		if run.Row == row && col >= run.ColBegin && col <= run.ColEnd {
			return true
		}
	}
	return false
}

// AreaCenter returns the area and centroid of the region. An empty region
// has area 0 and centroid (0, 0).
func (r *Region) AreaCenter() (area int, row, col float64) {
	var sumRow, sumCol float64
	for _, run := range r.Runs {
		n := float64(run.ColEnd - run.ColBegin + 1)
		sumRow += float64(run.Row) * n
		sumCol += float64(run.ColBegin+run.ColEnd) / 2 * n
		area += run.ColEnd - run.ColBegin + 1
	}
	if area == 0 {
		return 0, 0, 0
	}
	return area, sumRow / float64(area), sumCol / float64(area)
}

// AreaCenter evaluates AreaCenter for every region.
func AreaCenter(regions []*Region) (areas []int, rows, cols []float64) {
	for _, r := range regions {
		a, row, col := r.AreaCenter()
		areas = append(areas, a)
		rows = append(rows, row)
		cols = append(cols, col)
	}
	return areas, rows, cols
}

// Connection splits the region into its 8-connected components, ordered by
// their first pixel in row-major order.
func (r *Region) Connection() []*Region {
	m := r.mask(0)
	if m == nil {
		return nil
	}
	labels := make([]int32, len(m.bits))
	n := int32(0)
	stack := make([]int, 0, 64)
	for i, set := range m.bits {
		if !set || labels[i] != 0 {
			continue
		}
		n++
		labels[i] = n
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := j%m.w, j/m.w
			for ny := y - 1; ny <= y+1; ny++ {
				for nx := x - 1; nx <= x+1; nx++ {
					if nx < 0 || ny < 0 || nx >= m.w || ny >= m.h {
						continue
					}
					k := ny*m.w + nx
					if m.bits[k] && labels[k] == 0 {
						labels[k] = n
						stack = append(stack, k)
					}
				}
			}
		}
	}

	// One raster pass emits every component's runs already sorted.
	out := make([]*Region, n)
	for i := range out {
		out[i] = &Region{}
	}
	for y := 0; y < m.h; y++ {
		row := labels[y*m.w : (y+1)*m.w]
		for x := 0; x < m.w; {
			id := row[x]
			if id == 0 {
				x++
				continue
			}
			start := x
			for x < m.w && row[x] == id {
				x++
			}
			comp := out[id-1]
			comp.Runs = append(comp.Runs, Run{Row: m.row0 + y, ColBegin: m.col0 + start, ColEnd: m.col0 + x - 1})
		}
	}
	return out
}

// OpeningCircle erodes and then dilates with a circular structuring
// element of the given radius.
func (r *Region) OpeningCircle(radius float64) (*Region, error) {
	se, err := circleElement("opening_circle", radius)
	if err != nil {
		return nil, err
	}
	m := r.mask(se.reach)
	if m == nil {
		return &Region{}, nil
	}
	return m.erode(se).dilate(se).region(), nil
}

// ClosingCircle dilates and then erodes with a circular structuring
// element of the given radius.
func (r *Region) ClosingCircle(radius float64) (*Region, error) {
	se, err := circleElement("closing_circle", radius)
	if err != nil {
		return nil, err
	}
	m := r.mask(se.reach)
	if m == nil {
		return &Region{}, nil
	}
	return m.dilate(se).erode(se).region(), nil
}

// element is a structuring element given as offsets from its center.
type element struct {
	dx, dy []int
	reach  int
}

func circleElement(op string, radius float64) (element, error) {
	if radius < 0.5 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return element{}, newError(CodeBadParameter, op, "radius %g must be at least 0.5", radius)
	}
	reach := int(math.Floor(radius))
	var se element
	se.reach = reach
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				se.dx = append(se.dx, dx)
				se.dy = append(se.dy, dy)
			}
		}
	}
	return se, nil
}

// mask is a bitmap covering the bounding box of a region.
type mask struct {
	row0, col0 int
	w, h       int
	bits       []bool
}

// mask rasterizes the region with pad extra pixels on every side. It
// returns nil for an empty region.
func (r *Region) mask(pad int) *mask {
	if len(r.Runs) == 0 {
		return nil
	}
	minRow, maxRow := r.Runs[0].Row, r.Runs[0].Row
	minCol, maxCol := r.Runs[0].ColBegin, r.Runs[0].ColEnd
	for _, run := range r.Runs {
		minRow = min(minRow, run.Row)
		maxRow = max(maxRow, run.Row)
		minCol = min(minCol, run.ColBegin)
		maxCol = max(maxCol, run.ColEnd)
	}
	m := &mask{
		row0: minRow - pad,
		col0: minCol - pad,
		w:    maxCol - minCol + 1 + 2*pad,
		h:    maxRow - minRow + 1 + 2*pad,
	}
	m.bits = make([]bool, m.w*m.h)
	for _, run := range r.Runs {
		y := run.Row - m.row0
		for c := run.ColBegin; c <= run.ColEnd; c++ {
			m.bits[y*m.w+c-m.col0] = true
		}
	}
	return m
}

func (m *mask) get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

func (m *mask) erode(se element) *mask {
	out := &mask{row0: m.row0, col0: m.col0, w: m.w, h: m.h, bits: make([]bool, len(m.bits))}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.bits[y*m.w+x] {
				continue
			}
			keep := true
			for k := range se.dx {
				if !m.get(x+se.dx[k], y+se.dy[k]) {
					keep = false
					break
				}
			}
			out.bits[y*m.w+x] = keep
		}
	}
	return out
}

func (m *mask) dilate(se element) *mask {
	out := &mask{row0: m.row0, col0: m.col0, w: m.w, h: m.h, bits: make([]bool, len(m.bits))}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.bits[y*m.w+x] {
				continue
			}
			for k := range se.dx {
				nx, ny := x+se.dx[k], y+se.dy[k]
				if nx >= 0 && ny >= 0 && nx < m.w && ny < m.h {
					out.bits[ny*m.w+nx] = true
				}
			}
		}
	}
	return out
}

func (m *mask) region() *Region {
	r := &Region{}
	for y := 0; y < m.h; y++ {
		start := -1
		for x := 0; x <= m.w; x++ {
			in := x < m.w && m.bits[y*m.w+x]
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				r.Runs = append(r.Runs, Run{Row: y + m.row0, ColBegin: start + m.col0, ColEnd: x - 1 + m.col0})
				start = -1
			}
		}
	}
	return r
}
