// Package route holds a tank's patrol: an ordered table of waypoints walked
// cyclically, one leg at a time.
package route

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var ErrEmptyRoute = errors.New("route: no waypoints")

type Route struct {
	points []orb.Point
	index  int
}

func New(points ...orb.Point) (*Route, error) {
	if len(points) == 0 {
		return nil, ErrEmptyRoute
	}
	cp := make([]orb.Point, len(points))
	copy(cp, points)
	return &Route{points: cp}, nil
}

// Square is the closed patrol (side,0) -> (side,side) -> (0,side) -> (0,0).
func Square(side float64) *Route {
	r, _ := New(
		orb.Point{side, 0},
		orb.Point{side, side},
		orb.Point{0, side},
		orb.Point{0, 0},
	)
	return r
}

func DefaultSquare() *Route { return Square(100) }

func (r *Route) Current() orb.Point { return r.points[r.index] }
func (r *Route) Index() int         { return r.index }
func (r *Route) Len() int           { return len(r.points) }

// Advance moves to the next waypoint, wrapping at the end of the table, and
// returns the new index.
func (r *Route) Advance() int {
	r.index = (r.index + 1) % len(r.points)
	return r.index
}

func (r *Route) Points() []orb.Point {
	cp := make([]orb.Point, len(r.points))
	copy(cp, r.points)
	return cp
}

func (r *Route) Bound() orb.Bound {
	return orb.MultiPoint(r.points).Bound()
}
