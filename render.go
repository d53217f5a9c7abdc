package koch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Fill color used for the interior of the complete snowflake.
var fillColor = struct{ r, g, b, a float64 }{r: 173.0 / 255, g: 216.0 / 255, b: 230.0 / 255, a: 0.3}

// Renderer turns a boundary into a raster image. Each call builds its own
// drawing context, so a single Renderer is safe for concurrent use.
type Renderer struct {
	Size      int     // canvas width and height in pixels
	LineWidth float64 // stroke width of the boundary polyline
	ShowTitle bool    // draw a descriptive title above the shape
}

// NewRenderer returns a renderer with the stock canvas settings (square
// canvas, 1.5px stroke, titled).
func NewRenderer() *Renderer {
	return &Renderer{
		Size:      1200,
		LineWidth: 1.5,
		ShowTitle: true,
	}
}

// Render draws the boundary on a white square canvas. The viewport keeps the
// world aspect ratio and pads the shape with a scale-proportional margin that
// depends on the selected half. Only the complete snowflake gets its interior
// filled.
func (r *Renderer) Render(b Boundary, p Params) (image.Image, error) {
	if len(b) < 2 {
		return nil, fmt.Errorf("render: boundary needs at least 2 points, got %d", len(b))
	}

	size := r.Size
	if size <= 0 {
		size = 1200
	}

	vp := viewport(b, p)
	w, h := float64(size), float64(size)
	px := minOf(w/(vp.xMax-vp.xMin), h/(vp.yMax-vp.yMin))
	offX := (w - px*(vp.xMax-vp.xMin)) / 2
	offY := (h - px*(vp.yMax-vp.yMin)) / 2

	// World y grows up, image y grows down.
	toPixel := func(pt Point) (float64, float64) {
		return offX + (pt.X-vp.xMin)*px, h - offY - (pt.Y-vp.yMin)*px
	}

	ctx := gg.NewContext(size, size)
	ctx.DrawRectangle(0, 0, w, h)
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()

	stroke, err := ParseColor(p.Color)
	if err != nil {
		return nil, err
	}

	ctx.Push()
	x0, y0 := toPixel(b[0])
	ctx.MoveTo(x0, y0)
	for _, pt := range b[1:] {
		x, y := toPixel(pt)
		ctx.LineTo(x, y)
	}

	if p.Half == HalfComplete {
		ctx.SetRGBA(fillColor.r, fillColor.g, fillColor.b, fillColor.a)
		ctx.FillPreserve()
	}
	ctx.SetColor(stroke)
	ctx.SetLineWidth(r.LineWidth)
	ctx.Stroke()
	ctx.Pop()

	if r.ShowTitle {
		ctx.SetFontFace(basicfont.Face7x13)
		ctx.SetRGB(0, 0, 0)
		title := fmt.Sprintf("Koch Snowflake - %s - %d iterations", p.Half, p.Depth)
		ctx.DrawStringAnchored(title, w/2, 24, 0.5, 0.5)
	}

	return ctx.Image(), nil
}

// EncodePNG renders the boundary and writes it to w as PNG bytes.
func (r *Renderer) EncodePNG(w io.Writer, b Boundary, p Params) error {
	img, err := r.Render(b, p)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SaveTo renders the boundary into a PNG file at path.
func (r *Renderer) SaveTo(path string, b Boundary, p Params) error {
	img, err := r.Render(b, p)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

type view struct {
	xMin, xMax, yMin, yMax float64
}

// viewport computes the world-space window around the boundary: a wide
// 0.5*scale border for the complete shape, tightened to 0.1*scale on the cut
// axis for halves.
func viewport(b Boundary, p Params) view {
	xMin, xMax := b[0].X, b[0].X
	yMin, yMax := b[0].Y, b[0].Y
	for _, pt := range b[1:] {
		xMin = minOf(xMin, pt.X)
		xMax = maxOf(xMax, pt.X)
		yMin = minOf(yMin, pt.Y)
		yMax = maxOf(yMax, pt.Y)
	}

	wide, tight := 0.5*p.Scale, 0.1*p.Scale

	var v view
	switch p.Half {
	case HalfLower:
		v = view{xMin: -wide, xMax: xMax + wide, yMin: -tight, yMax: yMax + tight}
	case HalfUpper:
		v = view{xMin: -wide, xMax: xMax + wide, yMin: yMin - tight, yMax: yMax + tight}
	case HalfLeft:
		v = view{xMin: -tight, xMax: xMax + tight, yMin: -wide, yMax: yMax + wide}
	case HalfRight:
		v = view{xMin: xMin - tight, xMax: xMax + tight, yMin: -wide, yMax: yMax + wide}
	default:
		v = view{xMin: -wide, xMax: xMax + wide, yMin: -wide, yMax: yMax + wide}
	}

	// Guard against a zero-extent window from a degenerate boundary.
	if math.Abs(v.xMax-v.xMin) < 1e-9 {
		v.xMax = v.xMin + 1
	}
	if math.Abs(v.yMax-v.yMin) < 1e-9 {
		v.yMax = v.yMin + 1
	}
	return v
}
