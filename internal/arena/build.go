package arena

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"ranks/internal/agent"
	"ranks/internal/config"
	"ranks/internal/engage"
	"ranks/internal/host"
	"ranks/internal/nav"
)

// Build creates a world with one patrol controller per configured tank.
// Tanks without a spawn point are placed on a circle of radius 0.75*size.
func Build(cfg *config.Config, logger *log.Logger, emit func(agent.Event)) (*World, error) {
	w := NewWorld(cfg.World, logger, emit)
	n := len(cfg.Tanks)
	for i, td := range cfg.Tanks {
		r, err := td.BuildRoute(cfg.Dir)
		if err != nil {
			return nil, errors.Wrapf(err, "arena: tank %q", td.Name)
		}
		pos := circleSpawn(i, n, cfg.World.Size)
		if td.Spawn != nil {
			pos = nav.Vec2{X: td.Spawn.X, Y: td.Spawn.Y}
		}

		t := w.AddTank(td.Name, pos, nil)
		p := engage.NewPolicy(t, host.StdMath{})
		p.AimAt = nav.Vec2{X: td.AimAt.X, Y: td.AimAt.Y}
		t.ctl = agent.NewController(r, p, host.StdMath{}, w.tankEmitter(td.Name))
		t.Route = r.Points()
	}
	return w, nil
}

func circleSpawn(i, n int, size float64) nav.Vec2 {
	theta := float64(i) / float64(n) * 2 * math.Pi
	return nav.Polar(theta).Scale(0.75 * size)
}

// tankEmitter stamps controller events with the world tick and the tank name.
func (w *World) tankEmitter(name string) func(agent.Event) {
	return func(ev agent.Event) {
		ev.T = float64(w.Tick)
		if ev.Payload == nil {
			ev.Payload = map[string]any{}
		}
		ev.Payload["tank"] = name
		w.emit(ev)
	}
}
