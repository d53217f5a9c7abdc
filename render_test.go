package koch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCanvasSize(t *testing.T) {
	r := NewRenderer()
	r.Size = 400

	p := DefaultParams()
	img, err := r.Render(Generate(2, p.Scale), p)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 400, bounds.Dy())
}

func TestRenderFillsOnlyCompleteShape(t *testing.T) {
	r := NewRenderer()
	r.Size = 400
	r.ShowTitle = false

	complete := DefaultParams()
	b := Generate(complete.Depth, complete.Scale)
	full, err := r.Render(b, complete)
	require.NoError(t, err)

	lower := complete
	lower.Half = HalfLower
	halfImg, err := r.Render(ExtractHalf(b, HalfLower), lower)
	require.NoError(t, err)

	// The filled interior colors far more pixels than the unfilled outline.
	assert.Greater(t, countColored(full), countColored(halfImg)*2)
}

func TestRenderRejectsDegenerateBoundary(t *testing.T) {
	r := NewRenderer()
	_, err := r.Render(Boundary{{0, 0}}, DefaultParams())
	assert.Error(t, err)
}

func TestRenderRejectsUnknownColor(t *testing.T) {
	p := DefaultParams()
	p.Color = "mauve"
	_, err := NewRenderer().Render(Generate(1, p.Scale), p)
	assert.True(t, IsInvalidParameter(err))
}

func TestEncodePNG(t *testing.T) {
	r := NewRenderer()
	r.Size = 240

	var buf bytes.Buffer
	p := DefaultParams()
	require.NoError(t, r.EncodePNG(&buf, Generate(2, p.Scale), p))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 240, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
}

func TestSaveTo(t *testing.T) {
	r := NewRenderer()
	r.Size = 200

	path := filepath.Join(t.TempDir(), "out.png")
	p := DefaultParams()
	require.NoError(t, r.SaveTo(path, Generate(1, p.Scale), p))

	f, err := imageFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 200, f.Bounds().Dx())
}

func countColored(img image.Image) int {
	white := color.RGBA{255, 255, 255, 255}
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) != white {
				n++
			}
		}
	}
	return n
}

func imageFromFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(data))
}
