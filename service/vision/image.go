package vision

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/thirukguru/mylib-demo/shared/filter"
)

// Image is an 8-bit image with one or three interleaved channels.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// GenImageConst creates a zero-filled single-channel image. Only the "byte"
// pixel type is supported.
func GenImageConst(kind string, width, height int) (*Image, error) {
	const op = "gen_image_const"
	if kind != "byte" {
		return nil, newError(CodeBadParameter, op, "unsupported pixel type %q", kind)
	}
	if width <= 0 || height <= 0 {
		return nil, newError(CodeBadParameter, op, "invalid image size %dx%d", width, height)
	}
	return &Image{Width: width, Height: height, Channels: 1, Pix: make([]uint8, width*height)}, nil
}

// ReadImage decodes the image file at path.
func ReadImage(path string) (*Image, error) {
	const op = "read_image"
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, newError(CodeFileNotFound, op, "image file %s not found", path)
	}
	src, err := imaging.Open(path)
	if err != nil {
		return nil, newError(CodeFileIO, op, "cannot read %s: %v", path, err)
	}
	return FromImage(src), nil
}

// FromImage copies src into a toolkit image. Gray sources keep one channel,
// everything else becomes RGB.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if g, ok := src.(*image.Gray); ok {
		img := &Image{Width: w, Height: h, Channels: 1, Pix: make([]uint8, w*h)}
		for y := 0; y < h; y++ {
			copy(img.Pix[y*w:(y+1)*w], g.Pix[y*g.Stride:y*g.Stride+w])
		}
		return img
	}
	img := &Image{Width: w, Height: h, Channels: 3, Pix: make([]uint8, w*h*3)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := (y*w + x) * 3
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = c.R, c.G, c.B
		}
	}
	return img
}

// At returns channel c of the pixel at (row, col).
func (img *Image) At(row, col, c int) uint8 {
	return img.Pix[(row*img.Width+col)*img.Channels+c]
}

// Rgb1ToGray converts a three-channel image to gray using the
// 0.299/0.587/0.114 weights. Single-channel images are copied.
func (img *Image) Rgb1ToGray() (*Image, error) {
	const op = "rgb1_to_gray"
	switch img.Channels {
	case 1:
		out := *img
		out.Pix = append([]uint8(nil), img.Pix...)
		return &out, nil
	case 3:
	default:
		return nil, newError(CodeBadImage, op, "expected 1 or 3 channels, got %d", img.Channels)
	}
	out := &Image{Width: img.Width, Height: img.Height, Channels: 1, Pix: make([]uint8, img.Width*img.Height)}
	for i := range out.Pix {
		r, g, b := float64(img.Pix[i*3]), float64(img.Pix[i*3+1]), float64(img.Pix[i*3+2])
		out.Pix[i] = uint8(0.299*r + 0.587*g + 0.114*b + 0.5)
	}
	return out, nil
}

// WriteImage encodes the image as "png" or "jpeg". The extension is added
// to path when missing. Images always cover their full domain, so fill only
// has to be a valid gray value.
func (img *Image) WriteImage(format string, fill int, path string) (string, error) {
	const op = "write_image"
	var f imaging.Format
	switch strings.ToLower(format) {
	case "png":
		f = imaging.PNG
	case "jpeg", "jpg":
		f = imaging.JPEG
		format = "jpg"
	default:
		return "", newError(CodeBadParameter, op, "unsupported format %q", format)
	}
	if fill < 0 || fill > 255 {
		return "", newError(CodeBadParameter, op, "fill value %d out of range", fill)
	}
	if filepath.Ext(path) == "" {
		path += "." + strings.ToLower(format)
	}

	out, err := os.Create(path)
	if err != nil {
		return "", newError(CodeFileIO, op, "cannot create %s: %v", path, err)
	}
	if err := imaging.Encode(out, img.ToImage(), f); err != nil {
		out.Close()
		return "", newError(CodeFileIO, op, "cannot encode %s: %v", path, err)
	}
	if err := out.Close(); err != nil {
		return "", newError(CodeFileIO, op, "cannot write %s: %v", path, err)
	}
	return path, nil
}

// ToImage converts to *image.Gray or *image.NRGBA.
func (img *Image) ToImage() image.Image {
	r := image.Rect(0, 0, img.Width, img.Height)
	if img.Channels == 1 {
		g := image.NewGray(r)
		for y := 0; y < img.Height; y++ {
			copy(g.Pix[y*g.Stride:], img.Pix[y*img.Width:(y+1)*img.Width])
		}
		return g
	}
	out := image.NewNRGBA(r)
	for i := 0; i < img.Width*img.Height; i++ {
		out.Pix[i*4] = img.Pix[i*img.Channels]
		out.Pix[i*4+1] = img.Pix[i*img.Channels+1]
		out.Pix[i*4+2] = img.Pix[i*img.Channels+2]
		out.Pix[i*4+3] = 0xff
	}
	return out
}

func (img *Image) plane() *filter.Plane {
	p := filter.NewPlane(img.Width, img.Height)
	for i := range p.Pix {
		p.Pix[i] = float32(img.Pix[i*img.Channels])
	}
	return p
}
