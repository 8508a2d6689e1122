package nav

import "math"

type Vec2 struct{ X, Y float64 }

// Polar is the unit vector at angle theta.
func Polar(theta float64) Vec2 { return Vec2{math.Cos(theta), math.Sin(theta)} }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Angle() float64       { return math.Atan2(a.Y, a.X) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Manhattan is |dx| + |dy|, the blast measure of the arena.
func (a Vec2) Manhattan(b Vec2) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}
