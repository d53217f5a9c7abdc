package koch

// Half selects which part of the snowflake boundary survives the midpoint
// split filter.
type Half string

const (
	HalfComplete Half = "complete"
	HalfLower    Half = "lower"
	HalfUpper    Half = "upper"
	HalfLeft     Half = "left"
	HalfRight    Half = "right"
)

// Inclusive tolerance applied on both sides of the split line so that
// floating point noise cannot drop points sitting exactly on it.
const halfEpsilon = 1e-12

// ParseHalf maps a request string onto a Half selector. The empty string
// defaults to the complete snowflake.
func ParseHalf(s string) (Half, error) {
	switch Half(s) {
	case "":
		return HalfComplete, nil
	case HalfComplete, HalfLower, HalfUpper, HalfLeft, HalfRight:
		return Half(s), nil
	}
	return "", &ParamError{Param: "half", Value: s, Reason: "must be one of: complete, lower, upper, left, right"}
}

// ExtractHalf filters a boundary down to one symmetric half by keeping the
// points on the requested side of the shape's spatial midpoint. Horizontal
// halves split on max(y)/2, vertical halves on max(x)/2. Surviving points
// keep their original order. A filter that would leave nothing returns the
// input untouched instead, so the result is never empty.
func ExtractHalf(b Boundary, half Half) Boundary {
	if half == HalfComplete || len(b) == 0 {
		return b
	}

	var keep func(Point) bool
	switch half {
	case HalfLower:
		mid := maxY(b) / 2
		keep = func(p Point) bool { return p.Y <= mid+halfEpsilon }
	case HalfUpper:
		mid := maxY(b) / 2
		keep = func(p Point) bool { return p.Y >= mid-halfEpsilon }
	case HalfLeft:
		mid := maxX(b) / 2
		keep = func(p Point) bool { return p.X <= mid+halfEpsilon }
	case HalfRight:
		mid := maxX(b) / 2
		keep = func(p Point) bool { return p.X >= mid-halfEpsilon }
	default:
		return b
	}

	out := make(Boundary, 0, len(b)/2)
	for _, p := range b {
		if keep(p) {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		// Degenerate filter result, fall back to the whole shape.
		return b
	}
	return out
}

func maxX(b Boundary) float64 {
	m := b[0].X
	for _, p := range b[1:] {
		m = maxOf(m, p.X)
	}
	return m
}

func maxY(b Boundary) float64 {
	m := b[0].Y
	for _, p := range b[1:] {
		m = maxOf(m, p.Y)
	}
	return m
}
