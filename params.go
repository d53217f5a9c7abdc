package koch

// Bounds accepted for a generation request. The depth cap keeps the point
// count (3*4^depth+1) at a few hundred thousand at most.
const (
	MinDepth = 0
	MaxDepth = 8
	MaxScale = 10.0
)

// Params holds a validated generation request.
type Params struct {
	Depth int
	Scale float64
	Half  Half
	Color string
}

// DefaultParams returns the stock generator settings.
func DefaultParams() Params {
	return Params{
		Depth: 4,
		Scale: 2.0,
		Half:  HalfComplete,
		Color: "blue",
	}
}

// Validate rejects out-of-range parameters before any geometry is computed.
// Every failure unwraps to ErrInvalidParameter.
func (p Params) Validate() error {
	if p.Depth < MinDepth || p.Depth > MaxDepth {
		return &ParamError{Param: "depth", Value: p.Depth, Reason: "must be between 0 and 8"}
	}
	if p.Scale <= 0 || p.Scale > MaxScale {
		return &ParamError{Param: "scale", Value: p.Scale, Reason: "must be greater than 0 and at most 10"}
	}
	if _, err := ParseHalf(string(p.Half)); err != nil {
		return err
	}
	if _, err := ParseColor(p.Color); err != nil {
		return err
	}
	return nil
}
