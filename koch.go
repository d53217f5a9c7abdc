package koch

import (
	"math"
)

// Point represents a 2D point in the fractal boundary.
type Point struct {
	X, Y float64
}

// Boundary is an ordered sequence of points describing the fractal outline.
// A closed boundary repeats its first point as its last point.
type Boundary []Point

// Rotation applied to the middle third of each segment when raising the peak.
// The base triangle is wound counter-clockwise, so the interior lies to the
// left of the walk direction and the peak must be rotated clockwise (-60°)
// to point outward.
var (
	cosPeak = math.Cos(-math.Pi / 3)
	sinPeak = math.Sin(-math.Pi / 3)
)

// InitialPolygon returns the closed boundary of an equilateral triangle with
// one vertex at the origin and side length equal to scale, wound
// counter-clockwise. The last point equals the first one.
func InitialPolygon(scale float64) Boundary {
	side := scale
	height := math.Sqrt(3) / 2 * side

	p1 := Point{0, 0}
	p2 := Point{side, 0}
	p3 := Point{side / 2, height}

	return Boundary{p1, p2, p3, p1}
}

// Subdivide applies a single Koch step to a closed boundary: every segment is
// split into thirds and the middle third is replaced by the two sides of an
// outward-pointing equilateral triangle. The boundary grows from N to
// 4*(N-1)+1 points and stays closed.
func Subdivide(b Boundary) Boundary {
	if len(b) < 2 {
		return b
	}

	out := make(Boundary, 0, 4*(len(b)-1)+1)

	for i := 0; i < len(b)-1; i++ {
		p0, p1 := b[i], b[i+1]

		segX, segY := p1.X-p0.X, p1.Y-p0.Y
		oneThird := Point{p0.X + segX/3, p0.Y + segY/3}
		twoThird := Point{p0.X + 2*segX/3, p0.Y + 2*segY/3}

		// Rotate the middle third around oneThird to raise the peak.
		vx, vy := twoThird.X-oneThird.X, twoThird.Y-oneThird.Y
		peak := Point{
			X: oneThird.X + cosPeak*vx - sinPeak*vy,
			Y: oneThird.Y + sinPeak*vx + cosPeak*vy,
		}

		out = append(out, p0, oneThird, peak, twoThird)
	}

	// Close the polyline again.
	return append(out, b[len(b)-1])
}

// Generate builds the snowflake boundary at the requested subdivision depth.
// Depth 0 is the base triangle; each further level multiplies the segment
// count by four, so a boundary at depth d holds 3*4^d+1 points. Callers are
// expected to keep depth within [MinDepth, MaxDepth]; Generate itself does
// not clamp.
func Generate(depth int, scale float64) Boundary {
	b := InitialPolygon(scale)
	for i := 0; i < depth; i++ {
		b = Subdivide(b)
	}
	return b
}
