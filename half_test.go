package koch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHalf(t *testing.T) {
	for _, s := range []string{"complete", "lower", "upper", "left", "right"} {
		h, err := ParseHalf(s)
		require.NoError(t, err)
		assert.Equal(t, Half(s), h)
	}

	h, err := ParseHalf("")
	require.NoError(t, err)
	assert.Equal(t, HalfComplete, h)

	_, err = ParseHalf("diagonal")
	assert.True(t, IsInvalidParameter(err))
}

func TestExtractHalfComplete(t *testing.T) {
	b := Generate(2, 1.0)
	assert.Equal(t, b, ExtractHalf(b, HalfComplete))
}

func TestExtractHalfNeverEmpty(t *testing.T) {
	b := Generate(3, 2.0)
	for _, h := range []Half{HalfComplete, HalfLower, HalfUpper, HalfLeft, HalfRight} {
		assert.NotEmpty(t, ExtractHalf(b, h), "selector %s", h)
	}
}

func TestExtractHalfPredicate(t *testing.T) {
	b := Generate(3, 2.0)

	midY := maxY(b) / 2
	for _, p := range ExtractHalf(b, HalfLower) {
		assert.LessOrEqual(t, p.Y, midY+halfEpsilon)
	}
	for _, p := range ExtractHalf(b, HalfUpper) {
		assert.GreaterOrEqual(t, p.Y, midY-halfEpsilon)
	}

	midX := maxX(b) / 2
	for _, p := range ExtractHalf(b, HalfLeft) {
		assert.LessOrEqual(t, p.X, midX+halfEpsilon)
	}
	for _, p := range ExtractHalf(b, HalfRight) {
		assert.GreaterOrEqual(t, p.X, midX-halfEpsilon)
	}
}

func TestExtractHalfPreservesOrder(t *testing.T) {
	b := Generate(2, 1.0)
	mid := maxY(b) / 2

	var expected Boundary
	for _, p := range b {
		if p.Y <= mid+halfEpsilon {
			expected = append(expected, p)
		}
	}
	assert.Equal(t, expected, ExtractHalf(b, HalfLower))
}

// Selectors anchored at the surviving extreme keep their midpoint stable, so
// re-filtering is a no-op. Lower and left recompute a smaller midpoint once
// their anchor extreme is cut away, so their idempotence only holds when the
// remaining maximum sits on the anchor, as in the flat base of the triangle.
func TestExtractHalfIdempotent(t *testing.T) {
	b := Generate(3, 2.0)
	for _, h := range []Half{HalfUpper, HalfRight} {
		once := ExtractHalf(b, h)
		assert.Equal(t, once, ExtractHalf(once, h), "selector %s", h)
	}

	base := ExtractHalf(Generate(0, 1.0), HalfLower)
	assert.Equal(t, base, ExtractHalf(base, HalfLower))
}

func TestExtractHalfFallbackOnEmptyResult(t *testing.T) {
	// Every point sits above max(y)/2, so a lower cut would leave nothing.
	b := Boundary{{0, 10}, {1, 10}, {0.5, 9}, {0, 10}}
	assert.Equal(t, b, ExtractHalf(b, HalfLower))
}

func TestExtractHalfEmptyBoundary(t *testing.T) {
	assert.Empty(t, ExtractHalf(Boundary{}, HalfLower))
}
