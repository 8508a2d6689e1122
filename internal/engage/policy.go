// Package engage decides, once per movement step, whether the tank shoots.
package engage

import (
	"ranks/internal/host"
	"ranks/internal/nav"
)

// Weapon is the slice of the host the policy needs.
type Weapon interface {
	host.Sensors
	Aim(bearing float64)
	Fire()
}

type Decision struct {
	Heat    float64
	Fired   bool
	Bearing float64
}

// Policy fires at a fixed point whenever one more shot cannot push heat to the
// death threshold. No cooldown is kept between calls.
type Policy struct {
	MaxFireHeat float64
	AimAt       nav.Vec2
	Math        host.Math
}

func NewPolicy(c host.Constants, m host.Math) *Policy {
	if m == nil {
		m = host.StdMath{}
	}
	return &Policy{MaxFireHeat: c.DeathHeat() - c.ShootHeat(), Math: m}
}

func (p *Policy) CanFire(heat float64) bool { return heat < p.MaxFireHeat }

func (p *Policy) Engage(w Weapon) Decision {
	d := Decision{Heat: w.Heat()}
	if !p.CanFire(d.Heat) {
		return d
	}
	x, y := w.Position()
	// negated offsets keep atan2(-y, -x) bit-exact for the origin, signed zeros included
	d.Bearing = p.Math.Atan2(-(y - p.AimAt.Y), -(x - p.AimAt.X))
	w.Aim(d.Bearing)
	w.Fire()
	d.Fired = true
	return d
}
