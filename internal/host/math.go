package host

import "math"

// Math is the binary part of the host math library. Agents use Atan2 and Hypot;
// the rest is exposed because the host declares it.
type Math interface {
	Atan2(y, x float64) float64
	Hypot(x, y float64) float64
	Copysign(x, sign float64) float64
	DivEuclid(x, y float64) float64
	RemEuclid(x, y float64) float64
	Log(x, base float64) float64
	Max(x, y float64) float64
	Min(x, y float64) float64
	Pow(x, y float64) float64
}

// StdMath implements Math on top of the standard library.
type StdMath struct{}

var _ Math = StdMath{}

func (StdMath) Atan2(y, x float64) float64       { return math.Atan2(y, x) }
func (StdMath) Hypot(x, y float64) float64       { return math.Hypot(x, y) }
func (StdMath) Copysign(x, sign float64) float64 { return math.Copysign(x, sign) }
func (StdMath) Log(x, base float64) float64      { return math.Log(x) / math.Log(base) }
func (StdMath) Pow(x, y float64) float64         { return math.Pow(x, y) }

// Max and Min ignore a NaN operand when the other one is a number.
func (StdMath) Max(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	}
	return math.Max(x, y)
}

func (StdMath) Min(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	}
	return math.Min(x, y)
}

// DivEuclid rounds the quotient so that RemEuclid is never negative.
func (StdMath) DivEuclid(x, y float64) float64 {
	q := math.Trunc(x / y)
	if math.Mod(x, y) < 0 {
		if y > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// RemEuclid is the least non-negative remainder of x / y.
func (StdMath) RemEuclid(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += math.Abs(y)
	}
	return r
}
