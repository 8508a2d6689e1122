package arena

import (
	"github.com/dhconnelly/rtreego"

	"ranks/internal/agent"
)

type tankBox struct {
	t    *Tank
	rect rtreego.Rect
}

func (b tankBox) Bounds() rtreego.Rect { return b.rect }

// collide destroys every live tank a live bullet passes within hit_rad of,
// together with the bullet.
func (w *World) collide() {
	if len(w.Bullets) == 0 {
		return
	}
	rad := w.Cfg.HitRad
	var boxes []rtreego.Spatial
	for _, t := range w.Tanks {
		if t.Dead {
			continue
		}
		boxes = append(boxes, tankBox{t: t, rect: rtreego.Point{t.Pos.X, t.Pos.Y}.ToRect(rad)})
	}
	if len(boxes) == 0 {
		return
	}
	tree := rtreego.NewTree(2, 25, 50, boxes...)
	for _, b := range w.Bullets {
		if b.Dead {
			continue
		}
		near := tree.SearchIntersect(rtreego.Point{b.Pos.X, b.Pos.Y}.ToRect(0.01))
		for _, s := range near {
			t := s.(tankBox).t
			if t.Dead || t.Pos.Sub(b.Pos).Len() > rad {
				continue
			}
			b.Dead = true
			w.emit(agent.Event{T: float64(w.Tick), Type: "Hit", Payload: map[string]any{
				"tank": t.Name, "owner": b.Owner, "x": b.Pos.X, "y": b.Pos.Y,
			}})
			w.kill(t, "hit by "+b.Owner)
		}
	}
}
