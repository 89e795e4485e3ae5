package filter

import "math"

// SigmaForSize returns the sigma OpenCV derives for a Gaussian kernel of the
// given size when no sigma is specified.
func SigmaForSize(size int) float64 {
	return 0.3*(float64(size-1)*0.5-1) + 0.8
}

// GaussianKernel returns a normalized 1-D Gaussian kernel. A size <= 0 is
// derived from sigma; a sigma <= 0 is derived from size.
func GaussianKernel(sigma float64, size int) []float32 {
	if size <= 0 {
		size = int(math.Ceil(sigma*3))*2 + 1
	}
	if size < 1 {
		size = 1
	}
	if size%2 == 0 {
		size++
	}
	if sigma <= 0 {
		sigma = SigmaForSize(size)
	}

	kernel := make([]float32, size)
	half := size / 2
	var sum float64
	weights := make([]float64, size)
	for i := range weights {
		d := float64(i - half)
		weights[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += weights[i]
	}
	for i, w := range weights {
		kernel[i] = float32(w / sum)
	}
	return kernel
}

// Convolve applies the separable kernel horizontally and then vertically.
func Convolve(p *Plane, kernel []float32) *Plane {
	half := len(kernel) / 2
	tmp := NewPlane(p.Width, p.Height)
	out := NewPlane(p.Width, p.Height)

	ParallelRows(p.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := p.Pix[y*p.Width : (y+1)*p.Width]
			for x := 0; x < p.Width; x++ {
				var acc float32
				for k, w := range kernel {
					acc += w * row[Index(x+k-half, p.Width, BorderReflect101)]
				}
				tmp.Pix[y*p.Width+x] = acc
			}
		}
	})

	ParallelRows(p.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < p.Width; x++ {
				var acc float32
				for k, w := range kernel {
					acc += w * tmp.Pix[Index(y+k-half, p.Height, BorderReflect101)*p.Width+x]
				}
				out.Pix[y*p.Width+x] = acc
			}
		}
	})

	return out
}

// GaussianBlur smooths p with a Gaussian of the given sigma.
func GaussianBlur(p *Plane, sigma float64) *Plane {
	return Convolve(p, GaussianKernel(sigma, 0))
}
