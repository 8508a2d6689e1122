// Package agent is the patrol-and-fire control loop of a single tank.
package agent

import (
	"fmt"

	"github.com/paulmach/orb"

	"ranks/internal/engage"
	"ranks/internal/host"
	"ranks/internal/nav"
	"ranks/internal/route"
)

type State int

const (
	SelectWaypoint State = iota
	Turn
	Approach
)

func (s State) String() string {
	switch s {
	case SelectWaypoint:
		return "select_waypoint"
	case Turn:
		return "turn"
	case Approach:
		return "approach"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const greeting = "greetings from a tank!"

type StepResult struct {
	State   State
	Target  orb.Point
	Moved   bool
	Fired   bool
	Yielded bool
	// Legs is the number of completed legs after this step.
	Legs int
}

// Controller walks the route forever. Each Step is one host tick: a waypoint
// selection ends on its yield, and every approach iteration ends after the
// move and the engagement check.
type Controller struct {
	route  *route.Route
	policy *engage.Policy
	math   host.Math
	emit   func(Event)

	state  State
	target orb.Point
	course float64
	legs   int
	steps  int
}

func NewController(r *route.Route, p *engage.Policy, m host.Math, emit func(Event)) *Controller {
	if m == nil {
		m = host.StdMath{}
	}
	if emit == nil {
		emit = func(Event) {}
	}
	return &Controller{route: r, policy: p, math: m, emit: emit}
}

func (c *Controller) State() State        { return c.state }
func (c *Controller) Legs() int           { return c.legs }
func (c *Controller) Route() *route.Route { return c.route }

func (c *Controller) Step(h host.Host) StepResult {
	c.steps++
	if c.steps == 1 {
		h.Post(greeting)
	}
	var res StepResult
	nv := nav.New(h, c.math)
	switch c.state {
	case SelectWaypoint:
		c.selectWaypoint(h, &res)
	case Turn:
		c.turn(h, nv)
		c.approach(h, nv, &res)
	case Approach:
		c.approach(h, nv, &res)
	}
	res.State = c.state
	res.Target = c.target
	res.Legs = c.legs
	return res
}

func (c *Controller) selectWaypoint(h host.Host, res *StepResult) {
	c.target = c.route.Current()
	h.Post("navigating to (x, y):")
	h.PostFloat(c.target.X())
	h.PostFloat(c.target.Y())
	c.emit(Event{T: float64(c.steps), Type: EventWaypointSelected, Payload: map[string]any{
		"index": c.route.Index(), "x": c.target.X(), "y": c.target.Y(),
	}})
	h.Yield()
	res.Yielded = true
	c.state = Turn
}

// turn fixes the heading for the whole leg; drift is not corrected.
func (c *Controller) turn(h host.Host, nv nav.Navigator) {
	c.course = nv.CourseTo(c.target.X(), c.target.Y())
	h.Turn(c.course)
	c.emit(Event{T: float64(c.steps), Type: EventTurn, Payload: map[string]any{
		"bearing": c.course,
	}})
	c.state = Approach
}

func (c *Controller) approach(h host.Host, nv nav.Navigator, res *StepResult) {
	if nv.DistanceTo(c.target.X(), c.target.Y()) > h.Velocity() {
		h.Forward()
		res.Moved = true
		res.Fired = c.policy.Engage(h).Fired
		return
	}
	reached := c.route.Index()
	next := c.route.Advance()
	c.legs++
	c.emit(Event{T: float64(c.steps), Type: EventWaypointReached, Payload: map[string]any{
		"index": reached, "next": next, "legs": c.legs,
	}})
	c.emitLog("reached waypoint %d (%.1f, %.1f), next %d", reached, c.target.X(), c.target.Y(), next)
	c.selectWaypoint(h, res)
}

func (c *Controller) emitLog(format string, args ...any) {
	c.emit(Event{T: float64(c.steps), Type: EventLogLine, Payload: map[string]any{
		"text": fmt.Sprintf(format, args...),
	}})
}
