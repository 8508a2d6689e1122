package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel string       `yaml:"log_level"`
	World    WorldConfig  `yaml:"world"`
	Run      RunConfig    `yaml:"run"`
	Server   ServerConfig `yaml:"server"`
	Tanks    []TankDef    `yaml:"tanks"`

	// Dir is where relative route files are resolved from.
	Dir string `yaml:"-"`
}

// Default is the stock arena: one square-patrol tank starting at the origin.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		World: WorldConfig{
			Size:       500,
			ShootHeat:  26,
			IdleHeat:   -2,
			DeathHeat:  300,
			BulletV:    5,
			BulletS:    30,
			HitRad:     10,
			TankV:      1,
			ExplodeRad: 50,
		},
		Run:    RunConfig{Ticks: 2000, TickMS: 100},
		Server: ServerConfig{Addr: ":7446"},
		Tanks: []TankDef{
			{Name: "square", Spawn: &Vec2Def{}},
		},
		Dir: ".",
	}
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value; a tanks list replaces the default one.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := loadYAML(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: load %s", path)
	}
	cfg.Dir = filepath.Dir(path)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	w := c.World
	switch {
	case w.TankV <= 0:
		return errors.Errorf("world.tank_v must be positive, got %v", w.TankV)
	case w.DeathHeat <= 0:
		return errors.Errorf("world.death_heat must be positive, got %v", w.DeathHeat)
	case w.ShootHeat < 0:
		return errors.Errorf("world.shoot_heat must not be negative, got %v", w.ShootHeat)
	case w.Size <= 0:
		return errors.Errorf("world.size must be positive, got %v", w.Size)
	case w.ExplodeRad < 0:
		return errors.Errorf("world.explode_rad must not be negative, got %v", w.ExplodeRad)
	case w.HitRad < 0:
		return errors.Errorf("world.hit_rad must not be negative, got %v", w.HitRad)
	case c.Run.Ticks < 0:
		return errors.Errorf("run.ticks must not be negative, got %d", c.Run.Ticks)
	case len(c.Tanks) == 0:
		return errors.New("no tanks configured")
	}
	seen := map[string]bool{}
	for i, td := range c.Tanks {
		if td.Name == "" {
			return errors.Errorf("tanks[%d]: name is required", i)
		}
		if seen[td.Name] {
			return errors.Errorf("tanks[%d]: duplicate name %q", i, td.Name)
		}
		seen[td.Name] = true
		if td.RouteFile == "" {
			if _, err := td.BuildRoute(c.Dir); err != nil {
				return errors.Wrapf(err, "tanks[%d]", i)
			}
		}
	}
	return nil
}
