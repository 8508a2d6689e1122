// Package arena is a reference host for tank agents: kinematics, heat,
// bullets and destruction, advanced one tick at a time.
package arena

import (
	"github.com/charmbracelet/log"
	uuid "github.com/satori/go.uuid"

	"ranks/internal/agent"
	"ranks/internal/config"
	"ranks/internal/nav"
	"ranks/internal/telemetry"
)

type Bullet struct {
	Owner string
	Pos   nav.Vec2
	Vel   nav.Vec2
	Dead  bool
}

type World struct {
	ID      string
	Cfg     config.WorldConfig
	Tick    int
	Tanks   []*Tank
	Bullets []*Bullet

	emit func(agent.Event)
	log  *log.Logger
}

func NewWorld(cfg config.WorldConfig, logger *log.Logger, emit func(agent.Event)) *World {
	if emit == nil {
		emit = func(agent.Event) {}
	}
	if logger == nil {
		logger = telemetry.Discard()
	}
	return &World{ID: uuid.NewV4().String(), Cfg: cfg, emit: emit, log: logger}
}

func (w *World) AddTank(name string, pos nav.Vec2, ctl Controller) *Tank {
	t := &Tank{
		ID:    uuid.NewV4().String(),
		Name:  name,
		Team:  len(w.Tanks),
		Pos:   pos,
		ctl:   ctl,
		world: w,
	}
	w.Tanks = append(w.Tanks, t)
	w.emit(agent.Event{T: float64(w.Tick), Type: "Spawn", Payload: map[string]any{
		"tank": name, "id": t.ID, "x": pos.X, "y": pos.Y,
	}})
	w.log.Info("tank spawned", "tank", name, "x", pos.X, "y", pos.Y)
	return t
}

// Step advances the world by one tick: every live tank cools down and runs
// its controller once, then bullets fly and collide.
func (w *World) Step() {
	w.Tick++
	for _, t := range w.Tanks {
		if t.Dead {
			continue
		}
		t.applyHeat(w.Cfg.IdleHeat)
		if t.ctl != nil {
			t.Last = t.ctl.Step(t)
		}
		if t.Temp >= w.Cfg.DeathHeat {
			w.log.Warn("tank overheated", "tank", t.Name, "heat", t.Temp)
			w.explode(t.Pos, w.Cfg.ExplodeRad, t.Name)
		}
	}
	for _, b := range w.Bullets {
		b.Pos = b.Pos.Add(b.Vel)
	}
	w.collide()
	w.sweep()
}

func (w *World) Finished() bool {
	for _, t := range w.Tanks {
		if !t.Dead {
			return false
		}
	}
	return true
}

func (w *World) Alive() []*Tank {
	var out []*Tank
	for _, t := range w.Tanks {
		if !t.Dead {
			out = append(out, t)
		}
	}
	return out
}

func (w *World) spawnBullet(t *Tank) {
	dir := nav.Polar(t.Turret)
	w.Bullets = append(w.Bullets, &Bullet{
		Owner: t.Name,
		Pos:   t.Pos.Add(dir.Scale(w.Cfg.BulletS)),
		Vel:   dir.Scale(w.Cfg.BulletV),
	})
}

// explode destroys every tank within rad of pos, measured as |dx|+|dy|.
func (w *World) explode(pos nav.Vec2, rad float64, cause string) {
	w.emit(agent.Event{T: float64(w.Tick), Type: "Explode", Payload: map[string]any{
		"x": pos.X, "y": pos.Y, "rad": rad, "cause": cause,
	}})
	for _, t := range w.Tanks {
		if !t.Dead && t.Pos.Manhattan(pos) <= rad {
			w.kill(t, cause)
		}
	}
}

func (w *World) kill(t *Tank, cause string) {
	t.Dead = true
	w.emit(agent.Event{T: float64(w.Tick), Type: "Death", Payload: map[string]any{
		"tank": t.Name, "cause": cause, "heat": t.Temp,
	}})
	w.log.Info("tank destroyed", "tank", t.Name, "cause", cause, "tick", w.Tick)
}

// sweep drops spent bullets and the ones that left the arena for good.
func (w *World) sweep() {
	limit := 4 * w.Cfg.Size
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Dead || b.Pos.Len() > limit {
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(w.Bullets); i++ {
		w.Bullets[i] = nil
	}
	w.Bullets = kept
}
