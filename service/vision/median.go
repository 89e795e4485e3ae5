package vision

import (
	"strconv"

	"github.com/thirukguru/mylib-demo/shared/filter"
)

// margin describes how pixels outside the image are filled.
type margin struct {
	border   filter.Border
	constant bool
	value    uint8
}

func parseMargin(op, s string) (margin, error) {
	switch s {
	case "mirrored":
		return margin{border: filter.BorderReflect}, nil
	case "cyclic":
		return margin{border: filter.BorderWrap}, nil
	case "continued":
		return margin{border: filter.BorderReplicate}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 255 {
		return margin{}, newError(CodeBadParameter, op, "invalid margin %q", s)
	}
	return margin{constant: true, value: uint8(v + 0.5)}, nil
}

// MedianImage replaces every pixel by the median over a "circle" or
// "square" mask of the given radius. marginMode is "mirrored", "cyclic",
// "continued" or a gray value used for pixels outside the image.
func (img *Image) MedianImage(maskType string, radius int, marginMode string) (*Image, error) {
	const op = "median_image"
	if radius < 1 {
		return nil, newError(CodeBadParameter, op, "radius %d must be positive", radius)
	}
	mg, err := parseMargin(op, marginMode)
	if err != nil {
		return nil, err
	}

	// half[dy+radius] is the horizontal half-width of the mask in that row.
	half := make([]int, 2*radius+1)
	switch maskType {
	case "square":
		for i := range half {
			half[i] = radius
		}
	case "circle":
		for dy := -radius; dy <= radius; dy++ {
			w := 0
			for (w+1)*(w+1)+dy*dy <= radius*radius {
				w++
			}
			half[dy+radius] = w
		}
	default:
		return nil, newError(CodeBadParameter, op, "unsupported mask type %q", maskType)
	}
	count := 0
	for _, w := range half {
		count += 2*w + 1
	}

	out := &Image{Width: img.Width, Height: img.Height, Channels: img.Channels, Pix: make([]uint8, len(img.Pix))}
	at := func(x, y, c int) uint8 {
		if mg.constant && (x < 0 || y < 0 || x >= img.Width || y >= img.Height) {
			return mg.value
		}
		x = filter.Index(x, img.Width, mg.border)
		y = filter.Index(y, img.Height, mg.border)
		return img.Pix[(y*img.Width+x)*img.Channels+c]
	}

	for c := 0; c < img.Channels; c++ {
		filter.ParallelRows(img.Height, func(y0, y1 int) {
			var hist [256]int
			for y := y0; y < y1; y++ {
				hist = [256]int{}
				for dy := -radius; dy <= radius; dy++ {
					w := half[dy+radius]
					for dx := -w; dx <= w; dx++ {
						hist[at(dx, y+dy, c)]++
					}
				}
				for x := 0; x < img.Width; x++ {
					if x > 0 {
						for dy := -radius; dy <= radius; dy++ {
							w := half[dy+radius]
							hist[at(x-1-w, y+dy, c)]--
							hist[at(x+w, y+dy, c)]++
						}
					}
					out.Pix[(y*img.Width+x)*img.Channels+c] = median(&hist, count)
				}
			}
		})
	}
	return out, nil
}

func median(hist *[256]int, count int) uint8 {
	target := count / 2
	seen := 0
	for v, n := range hist {
		seen += n
		if seen > target {
			return uint8(v)
		}
	}
	return 255
}
