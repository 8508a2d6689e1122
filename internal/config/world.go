package config

type WorldConfig struct {
	Size       float64 `yaml:"size"`
	ShootHeat  float64 `yaml:"shoot_heat"`
	IdleHeat   float64 `yaml:"idle_heat"`
	DeathHeat  float64 `yaml:"death_heat"`
	BulletV    float64 `yaml:"bullet_v"`
	BulletS    float64 `yaml:"bullet_s"`
	HitRad     float64 `yaml:"hit_rad"`
	TankV      float64 `yaml:"tank_v"`
	ExplodeRad float64 `yaml:"explode_rad"`
}

type RunConfig struct {
	// Ticks is the run length; 0 runs until every tank is destroyed.
	Ticks  int `yaml:"ticks"`
	TickMS int `yaml:"tick_ms"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}
