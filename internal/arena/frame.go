package arena

import "encoding/json"

type TankFrame struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Team    int          `json:"team"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Heading float64      `json:"heading"`
	Turret  float64      `json:"turret"`
	Heat    float64      `json:"heat"`
	Dead    bool         `json:"dead"`
	Shots   int          `json:"shots"`
	Legs    int          `json:"legs"`
	State   string       `json:"state"`
	Target  [2]float64   `json:"target"`
	Route   [][2]float64 `json:"route,omitempty"`
}

type BulletFrame struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is a copy of the world after a step; it shares nothing with it.
type Frame struct {
	World   string        `json:"world"`
	Tick    int           `json:"tick"`
	Size    float64       `json:"size"`
	Tanks   []TankFrame   `json:"tanks"`
	Bullets []BulletFrame `json:"bullets"`
}

func (w *World) Snapshot() Frame {
	f := Frame{
		World:   w.ID,
		Tick:    w.Tick,
		Size:    w.Cfg.Size,
		Tanks:   make([]TankFrame, 0, len(w.Tanks)),
		Bullets: make([]BulletFrame, 0, len(w.Bullets)),
	}
	for _, t := range w.Tanks {
		tf := TankFrame{
			ID: t.ID, Name: t.Name, Team: t.Team,
			X: t.Pos.X, Y: t.Pos.Y,
			Heading: t.Heading, Turret: t.Turret, Heat: t.Temp,
			Dead: t.Dead, Shots: t.Shots,
			Legs:   t.Last.Legs,
			State:  t.Last.State.String(),
			Target: [2]float64{t.Last.Target.X(), t.Last.Target.Y()},
		}
		for _, p := range t.Route {
			tf.Route = append(tf.Route, [2]float64{p.X(), p.Y()})
		}
		f.Tanks = append(f.Tanks, tf)
	}
	for _, b := range w.Bullets {
		f.Bullets = append(f.Bullets, BulletFrame{X: b.Pos.X, Y: b.Pos.Y})
	}
	return f
}

func (f Frame) JSON() []byte {
	b, _ := json.Marshal(f)
	return b
}
