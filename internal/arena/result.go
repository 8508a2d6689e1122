package arena

import (
	"encoding/json"

	"ranks/internal/agent"
)

type TankSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Team     int     `json:"team"`
	Alive    bool    `json:"alive"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Shots    int     `json:"shots"`
	Moves    int     `json:"moves"`
	Legs     int     `json:"legs"`
	Heat     float64 `json:"heat"`
	PeakHeat float64 `json:"peak_heat"`
}

type Result struct {
	World     string        `json:"world"`
	Ticks     int           `json:"ticks"`
	Survivors []string      `json:"survivors"`
	Tanks     []TankSummary `json:"tanks"`
	Events    []agent.Event `json:"events,omitempty"`
}

func (w *World) Result(events []agent.Event) Result {
	res := Result{World: w.ID, Ticks: w.Tick, Survivors: []string{}, Events: events}
	for _, t := range w.Tanks {
		if !t.Dead {
			res.Survivors = append(res.Survivors, t.Name)
		}
		res.Tanks = append(res.Tanks, TankSummary{
			ID: t.ID, Name: t.Name, Team: t.Team, Alive: !t.Dead,
			X: t.Pos.X, Y: t.Pos.Y,
			Shots: t.Shots, Moves: t.Moves, Legs: t.Last.Legs,
			Heat: t.Temp, PeakHeat: t.Peak,
		})
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
