package koch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())
}

func TestValidateBounds(t *testing.T) {
	valid := DefaultParams()

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"depth too high", func(p *Params) { p.Depth = 9 }},
		{"depth negative", func(p *Params) { p.Depth = -1 }},
		{"scale zero", func(p *Params) { p.Scale = 0 }},
		{"scale too high", func(p *Params) { p.Scale = 11 }},
		{"unknown half", func(p *Params) { p.Half = "diagonal" }},
		{"unknown color", func(p *Params) { p.Color = "mauve" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, IsInvalidParameter(err))
		})
	}
}

func TestValidateBoundaryValues(t *testing.T) {
	p := DefaultParams()
	p.Depth = 8
	p.Scale = 10
	assert.NoError(t, p.Validate())

	p.Depth = 0
	p.Scale = 0.1
	assert.NoError(t, p.Validate())
}

func TestParamErrorUnwrap(t *testing.T) {
	err := error(&ParamError{Param: "depth", Value: 42, Reason: "must be between 0 and 8"})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	var pe *ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "depth", pe.Param)
	assert.Contains(t, err.Error(), "depth=42")
}

func TestParseColor(t *testing.T) {
	for _, name := range ColorNames() {
		_, err := ParseColor(name)
		assert.NoError(t, err, name)
	}

	c, err := ParseColor("")
	require.NoError(t, err)
	def, _ := ParseColor("blue")
	assert.Equal(t, def, c)

	_, err = ParseColor("mauve")
	assert.True(t, IsInvalidParameter(err))
}
