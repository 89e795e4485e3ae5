package imaging

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/service/config"
)

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func newTestService(t *testing.T) (*service, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewService(config.Default().Imaging, dir).(*service)
	return svc, dir
}

func TestCanvasDrawsRectangleAndText(t *testing.T) {
	svc, _ := newTestService(t)
	img := svc.Canvas()

	require.Equal(t, image.Rect(0, 0, 640, 480), img.Bounds())

	assert.Equal(t, opaque(colorRed), img.NRGBAAt(200, 100))
	assert.Equal(t, opaque(colorRed), img.NRGBAAt(200, 99))
	assert.Equal(t, opaque(colorRed), img.NRGBAAt(100, 200))
	assert.Equal(t, opaque(colorRed), img.NRGBAAt(300, 250))
	assert.Equal(t, opaque(colorWhite), img.NRGBAAt(200, 150))
	assert.Equal(t, opaque(colorWhite), img.NRGBAAt(10, 10))

	dark := 0
	for y := 170; y < 210; y++ {
		for x := 140; x < 420; x++ {
			if c := img.NRGBAAt(x, y); c.R < 128 && c.G < 128 && c.B < 128 {
				dark++
			}
		}
	}
	assert.Positive(t, dark, "text pixels are drawn near the text origin")
}

func TestDrawRectangleThickness(t *testing.T) {
	img := imaging.New(20, 20, colorWhite)
	drawRectangle(img, image.Pt(5, 5), image.Pt(14, 14), 1, colorRed)

	assert.Equal(t, opaque(colorRed), img.NRGBAAt(5, 10))
	assert.Equal(t, opaque(colorRed), img.NRGBAAt(14, 10))
	assert.Equal(t, opaque(colorWhite), img.NRGBAAt(6, 10))
	assert.Equal(t, opaque(colorWhite), img.NRGBAAt(4, 10))

	img = imaging.New(20, 20, colorWhite)
	drawRectangle(img, image.Pt(5, 5), image.Pt(14, 14), 3, colorRed)
	assert.Equal(t, opaque(colorRed), img.NRGBAAt(4, 10))
	assert.Equal(t, opaque(colorRed), img.NRGBAAt(6, 10))
	assert.Equal(t, opaque(colorWhite), img.NRGBAAt(7, 10))
}

func TestDrawRectangleClipsToBounds(t *testing.T) {
	img := imaging.New(10, 10, colorWhite)
	assert.NotPanics(t, func() {
		drawRectangle(img, image.Pt(-5, -5), image.Pt(50, 50), 4, colorRed)
	})
}

func TestDetectEdges(t *testing.T) {
	svc, _ := newTestService(t)

	flat := imaging.New(64, 64, colorWhite)
	assert.Zero(t, svc.DetectEdges(flat).Count())

	edges := svc.DetectEdges(svc.Canvas())
	assert.Positive(t, edges.Count())
	assert.False(t, edges.Edge[150*640+200], "interior of the rectangle stays empty")
}

func TestRunWritesBothImages(t *testing.T) {
	svc, dir := newTestService(t)

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Enabled)
	assert.Equal(t, Name, result.Name)
	assert.False(t, result.Failed())
	require.Len(t, result.Steps, 8)

	for _, name := range []string{"imaging_example.jpg", "imaging_edges.jpg"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size())

		img, err := imaging.Open(path)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 640, 480), img.Bounds())
	}

	assert.Equal(t, filepath.Join(dir, "imaging_example.jpg"), result.Steps[3].Artifact)
	assert.Equal(t, filepath.Join(dir, "imaging_edges.jpg"), result.Steps[7].Artifact)
}

func TestRunSavesCanvasAndEdgeMap(t *testing.T) {
	svc, dir := newTestService(t)
	saved := map[string]image.Image{}
	svc.save = func(img image.Image, path string, _ ...imaging.EncodeOption) error {
		saved[filepath.Base(path)] = img
		return nil
	}

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.False(t, result.Failed())

	example, ok := saved["imaging_example.jpg"].(*image.NRGBA)
	require.True(t, ok, "example image is saved as NRGBA")
	canvas := svc.Canvas()
	assert.Equal(t, canvas.Pix, example.Pix)
	assert.Equal(t, opaque(colorRed), example.NRGBAAt(200, 100))
	assert.Equal(t, opaque(colorWhite), example.NRGBAAt(200, 150))

	edges, ok := saved["imaging_edges.jpg"].(*image.Gray)
	require.True(t, ok, "edge map is saved as gray")
	assert.Equal(t, svc.DetectEdges(canvas).Image().Pix, edges.Pix)
	assert.Equal(t, filepath.Join(dir, "imaging_edges.jpg"), result.Steps[7].Artifact)
}

func TestRunWritesRecognizableExample(t *testing.T) {
	svc, dir := newTestService(t)
	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	img, err := imaging.Open(filepath.Join(dir, "imaging_example.jpg"))
	require.NoError(t, err)
	nrgba := imaging.Clone(img)

	// JPEG is lossy, so compare against loose color bands.
	isRed := func(c color.NRGBA) bool { return c.R > 180 && c.G < 90 && c.B < 90 }
	assert.True(t, isRed(nrgba.NRGBAAt(200, 100)), "top edge of the rectangle")
	assert.True(t, isRed(nrgba.NRGBAAt(300, 250)), "right edge of the rectangle")
	assert.False(t, isRed(nrgba.NRGBAAt(200, 150)), "rectangle interior")

	dark := 0
	for y := 170; y < 210; y++ {
		for x := 140; x < 420; x++ {
			if c := nrgba.NRGBAAt(x, y); c.R < 100 && c.G < 100 && c.B < 100 {
				dark++
			}
		}
	}
	assert.Positive(t, dark, "caption survives encoding")
}

func TestDrawTextKeepsOffGridOrigin(t *testing.T) {
	onGrid := imaging.New(120, 40, colorWhite)
	offGrid := imaging.New(120, 40, colorWhite)
	drawText(onGrid, image.Pt(10, 20), 2, "Hi", colorBlack)
	drawText(offGrid, image.Pt(11, 21), 2, "Hi", colorBlack)

	drawn := 0
	for y := 0; y < 39; y++ {
		for x := 0; x < 119; x++ {
			want := onGrid.NRGBAAt(x, y)
			assert.Equal(t, want, offGrid.NRGBAAt(x+1, y+1), "pixel (%d,%d)", x, y)
			if want != opaque(colorWhite) {
				drawn++
			}
		}
	}
	assert.Positive(t, drawn)
}

func TestRunStopsOnSaveError(t *testing.T) {
	svc, _ := newTestService(t)
	svc.save = func(image.Image, string, ...imaging.EncodeOption) error {
		return errors.New("disk full")
	}

	result, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.Len(t, result.Steps, 4)
	assert.Equal(t, model.StepFailed, result.Steps[3].Status)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
