package koch

import "math"

// Metrics describes a generated boundary for the API layer.
type Metrics struct {
	PointCount       int     `json:"total_points"`
	SegmentCount     int     `json:"total_segments"`
	EstimatedLength  float64 `json:"estimated_length"`
	FractalDimension float64 `json:"fractal_dimension"`
}

// Measure derives the point and segment counts of a boundary together with
// the estimated curve length at the given depth and scale. Every segment at
// depth d has length scale/3^d. The Hausdorff dimension of the Koch curve is
// the constant log4/log3, independent of depth and scale.
func Measure(b Boundary, depth int, scale float64) Metrics {
	segments := len(b) - 1
	if segments < 0 {
		segments = 0
	}
	return Metrics{
		PointCount:       len(b),
		SegmentCount:     segments,
		EstimatedLength:  round4(float64(segments) * scale / math.Pow(3, float64(depth))),
		FractalDimension: round4(math.Log(4) / math.Log(3)),
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
