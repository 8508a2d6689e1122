// Package nav turns the live tank position into bearings and distances.
package nav

import "ranks/internal/host"

// Navigator reads the position on every call; nothing is cached.
type Navigator struct {
	Sensors host.Sensors
	Math    host.Math
}

func New(s host.Sensors, m host.Math) Navigator {
	if m == nil {
		m = host.StdMath{}
	}
	return Navigator{Sensors: s, Math: m}
}

// CourseTo is the bearing, in radians, from the current position to (x, y).
func (n Navigator) CourseTo(x, y float64) float64 {
	px, py := n.Sensors.Position()
	return n.Math.Atan2(y-py, x-px)
}

// DistanceTo is the straight-line distance from the current position to (x, y).
func (n Navigator) DistanceTo(x, y float64) float64 {
	px, py := n.Sensors.Position()
	return n.Math.Hypot(x-px, y-py)
}
