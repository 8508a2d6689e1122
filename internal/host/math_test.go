package host

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdMathEuclid(t *testing.T) {
	m := StdMath{}
	cases := []struct {
		x, y     float64
		div, rem float64
	}{
		{7, 4, 1, 3},
		{-7, 4, -2, 1},
		{7, -4, -1, 3},
		{-7, -4, 2, 1},
		{8, 4, 2, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.div, m.DivEuclid(tc.x, tc.y), "div_euclid(%v, %v)", tc.x, tc.y)
		assert.Equal(t, tc.rem, m.RemEuclid(tc.x, tc.y), "rem_euclid(%v, %v)", tc.x, tc.y)
		assert.InDelta(t, tc.x, tc.div*tc.y+tc.rem, 1e-12)
	}
}

func TestStdMathAtan2AtOrigin(t *testing.T) {
	m := StdMath{}
	got := m.Atan2(0, 0)
	assert.False(t, math.IsNaN(got))
	assert.Equal(t, 0.0, got)
	assert.InDelta(t, -3*math.Pi/4, m.Atan2(-50, -50), 1e-12)
}

func TestStdMathMinMaxNaN(t *testing.T) {
	m := StdMath{}
	assert.Equal(t, 2.0, m.Max(math.NaN(), 2))
	assert.Equal(t, 2.0, m.Min(2, math.NaN()))
	assert.Equal(t, 3.0, m.Max(2, 3))
	assert.InDelta(t, 3.0, m.Log(8, 2), 1e-12)
	assert.Equal(t, 5.0, m.Hypot(3, 4))
	assert.Equal(t, -1.5, m.Copysign(1.5, math.Copysign(0, -1)))
	assert.Equal(t, -1.5, m.Copysign(1.5, math.Inf(-1)))
}
