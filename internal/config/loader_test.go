package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300.0, cfg.World.DeathHeat)
	assert.Equal(t, 26.0, cfg.World.ShootHeat)
	assert.Equal(t, ":7446", cfg.Server.Addr)
	r, err := cfg.Tanks[0].BuildRoute(cfg.Dir)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{100, 0}, r.Current())
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "arena.yaml", `
log_level: debug
world:
  death_heat: 10
  shoot_heat: 2
  tank_v: 5
run:
  ticks: 50
tanks:
  - name: alpha
    route: [[10, 0], [10, 10]]
    aim_at: {x: 3, y: 4}
  - name: bravo
    spawn: {x: 20, y: 20}
    route_file: routes/tri.geojson
`)
	writeFile(t, dir, "routes/tri.geojson", `{"type":"LineString","coordinates":[[0,0],[5,0],[0,5]]}`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10.0, cfg.World.DeathHeat)
	assert.Equal(t, 5.0, cfg.World.TankV)
	assert.Equal(t, -2.0, cfg.World.IdleHeat, "unset keys keep defaults")
	assert.Equal(t, 50, cfg.Run.Ticks)
	require.Len(t, cfg.Tanks, 2)
	assert.Nil(t, cfg.Tanks[0].Spawn)
	assert.Equal(t, Vec2Def{X: 3, Y: 4}, cfg.Tanks[0].AimAt)

	r, err := cfg.Tanks[0].BuildRoute(cfg.Dir)
	require.NoError(t, err)
	assert.Equal(t, []orb.Point{{10, 0}, {10, 10}}, r.Points())

	r, err = cfg.Tanks[1].BuildRoute(cfg.Dir)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"zero velocity":   "world:\n  tank_v: 0\n",
		"no tanks":        "tanks: []\n",
		"unnamed tank":    "tanks:\n  - route: [[1,1]]\n",
		"duplicate names": "tanks:\n  - name: a\n  - name: a\n",
		"bad waypoint":    "tanks:\n  - name: a\n    route: [[1,2,3]]\n",
		"negative ticks":  "run:\n  ticks: -1\n",
		"negative blast":  "world:\n  explode_rad: -1\n",
		"negative hit":    "world:\n  hit_rad: -0.5\n",
		"not yaml":        "world: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "arena.yaml", body)
			_, err := Load(p)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestShippedArena(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "assets", "arena.yaml"))
	require.NoError(t, err)
	require.Len(t, cfg.Tanks, 3)

	r, err := cfg.Tanks[1].BuildRoute(cfg.Dir)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Len(), "closing point of the polygon is dropped")
	assert.Equal(t, orb.Point{250, 150}, r.Current())

	r, err = cfg.Tanks[2].BuildRoute(cfg.Dir)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, Vec2Def{X: -200, Y: -400}, cfg.Tanks[2].AimAt)
}
