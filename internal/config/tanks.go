package config

import (
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"ranks/internal/route"
)

type TankDef struct {
	Name      string      `yaml:"name"`
	Spawn     *Vec2Def    `yaml:"spawn"`
	Route     [][]float64 `yaml:"route"`
	RouteFile string      `yaml:"route_file"`
	AimAt     Vec2Def     `yaml:"aim_at"`
	Note      string      `yaml:"note"`
}

type Vec2Def struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BuildRoute resolves the tank's patrol. route_file wins over inline points,
// and a tank with neither walks the default square. Relative files are
// looked up from baseDir.
func (td TankDef) BuildRoute(baseDir string) (*route.Route, error) {
	if td.RouteFile != "" {
		path := td.RouteFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return route.LoadFile(path)
	}
	if len(td.Route) == 0 {
		return route.DefaultSquare(), nil
	}
	pts := make([]orb.Point, 0, len(td.Route))
	for i, p := range td.Route {
		if len(p) != 2 {
			return nil, errors.Errorf("tank %q: waypoint %d has %d coordinates", td.Name, i, len(p))
		}
		pts = append(pts, orb.Point{p[0], p[1]})
	}
	return route.New(pts...)
}
