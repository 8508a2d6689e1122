package arena

import (
	"github.com/paulmach/orb"

	"ranks/internal/agent"
	"ranks/internal/host"
	"ranks/internal/nav"
)

// Controller is whatever drives a tank once per tick.
type Controller interface {
	Step(h host.Host) agent.StepResult
}

// Tank is the host-owned state of one agent. Its methods are the host calls
// the agent is allowed to make.
type Tank struct {
	ID      string
	Name    string
	Team    int
	Pos     nav.Vec2
	Heading float64
	Turret  float64
	Temp    float64
	Dead    bool

	Shots  int
	Moves  int
	Yields int
	Peak   float64
	Last   agent.StepResult
	Route  []orb.Point

	ctl   Controller
	world *World
}

var _ host.Host = (*Tank)(nil)

func (t *Tank) Position() (float64, float64) { return t.Pos.X, t.Pos.Y }
func (t *Tank) Heat() float64                { return t.Temp }
func (t *Tank) DeathHeat() float64           { return t.world.Cfg.DeathHeat }
func (t *Tank) ShootHeat() float64           { return t.world.Cfg.ShootHeat }
func (t *Tank) Velocity() float64            { return t.world.Cfg.TankV }

func (t *Tank) Turn(bearing float64) { t.Heading = bearing }
func (t *Tank) Aim(bearing float64)  { t.Turret = bearing }

func (t *Tank) Forward() {
	t.Pos = t.Pos.Add(nav.Polar(t.Heading).Scale(t.world.Cfg.TankV))
	t.Moves++
}

func (t *Tank) Fire() {
	t.applyHeat(t.world.Cfg.ShootHeat)
	t.Shots++
	t.world.spawnBullet(t)
}

func (t *Tank) Yield() { t.Yields++ }

func (t *Tank) Post(msg string) {
	t.world.log.Debug(msg, "tank", t.Name, "tick", t.world.Tick)
	t.world.emit(agent.Event{T: float64(t.world.Tick), Type: "Diagnostic", Payload: map[string]any{
		"tank": t.Name, "text": msg,
	}})
}

func (t *Tank) PostFloat(v float64) {
	t.world.log.Debug("value", "tank", t.Name, "tick", t.world.Tick, "v", v)
	t.world.emit(agent.Event{T: float64(t.world.Tick), Type: "Diagnostic", Payload: map[string]any{
		"tank": t.Name, "value": v,
	}})
}

// applyHeat never lets heat go below zero.
func (t *Tank) applyHeat(h float64) {
	t.Temp += h
	if t.Temp < 0 {
		t.Temp = 0
	}
	if t.Temp > t.Peak {
		t.Peak = t.Temp
	}
}
