package koch

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter classifies every request validation failure. Callers
// should test for it with errors.Is rather than matching messages.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError reports a single rejected request parameter.
type ParamError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// IsInvalidParameter helps collaborators classify errors without inspecting
// the concrete type.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}
