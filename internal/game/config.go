package game

import (
	"errors"
	"fmt"
	"time"
)

// ShipConfig holds the ship's handling constants.
type ShipConfig struct {
	MaxSpeed      float64 `mapstructure:"max_speed"`
	Acceleration  float64 `mapstructure:"acceleration"`
	Drag          float64 `mapstructure:"drag"`
	RotationSpeed float64 `mapstructure:"rotation_speed"`
	RadiusX       float64 `mapstructure:"radius_x"` // Lateral semi-axis
	RadiusY       float64 `mapstructure:"radius_y"`
	RadiusZ       float64 `mapstructure:"radius_z"` // Along the nose
}

// Config holds every tunable of a session. Distances are world units,
// speeds are world units per tick.
type Config struct {
	PlayArea     float64 `mapstructure:"play_area"`     // Half-width of the square the ship wraps in
	SpawnMargin  float64 `mapstructure:"spawn_margin"`  // How far outside the play area rocks appear
	CullMargin   float64 `mapstructure:"cull_margin"`   // How far outside the play area rocks are dropped
	TargetSpread float64 `mapstructure:"target_spread"` // Rocks aim at a point within this of the centre

	FireCooldown  time.Duration `mapstructure:"fire_cooldown"`
	SpawnInterval time.Duration `mapstructure:"spawn_interval"`

	ProjectileTTL    time.Duration `mapstructure:"projectile_ttl"`
	ProjectileSpeed  float64       `mapstructure:"projectile_speed"`
	ProjectileRadius float64       `mapstructure:"projectile_radius"`
	MuzzleDistance   float64       `mapstructure:"muzzle_distance"`

	ObstacleMinSize  float64 `mapstructure:"obstacle_min_size"`
	ObstacleMaxSize  float64 `mapstructure:"obstacle_max_size"`
	ObstacleMinSpeed float64 `mapstructure:"obstacle_min_speed"`
	ObstacleMaxSpeed float64 `mapstructure:"obstacle_max_speed"`

	GridCellSize float64 `mapstructure:"grid_cell_size"`

	Ship ShipConfig `mapstructure:"ship"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		PlayArea:     30,
		SpawnMargin:  5,
		CullMargin:   10,
		TargetSpread: 5,

		FireCooldown:  250 * time.Millisecond,
		SpawnInterval: 1000 * time.Millisecond,

		ProjectileTTL:    2 * time.Second,
		ProjectileSpeed:  0.8,
		ProjectileRadius: 0.4,
		MuzzleDistance:   0.8,

		ObstacleMinSize:  0.8,
		ObstacleMaxSize:  2.3,
		ObstacleMinSpeed: 0.02,
		ObstacleMaxSpeed: 0.05,

		GridCellSize: 4,

		Ship: ShipConfig{
			MaxSpeed:      0.25,
			Acceleration:  0.01,
			Drag:          0.97,
			RotationSpeed: 0.05,
			RadiusX:       0.5,
			RadiusY:       0.5,
			RadiusZ:       0.8,
		},
	}
}

// Validate reports every setting that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	if c.PlayArea <= 0 {
		errs = append(errs, fmt.Errorf("play_area must be positive, got %v", c.PlayArea))
	}
	if c.SpawnMargin < 0 || c.CullMargin <= c.SpawnMargin {
		errs = append(errs, fmt.Errorf("cull_margin (%v) must exceed spawn_margin (%v)", c.CullMargin, c.SpawnMargin))
	}
	if c.FireCooldown < 0 || c.SpawnInterval < 0 || c.ProjectileTTL <= 0 {
		errs = append(errs, errors.New("cooldowns must be non-negative and projectile_ttl positive"))
	}
	if c.ObstacleMinSize <= 0 || c.ObstacleMaxSize < c.ObstacleMinSize {
		errs = append(errs, fmt.Errorf("obstacle size range [%v, %v] is invalid", c.ObstacleMinSize, c.ObstacleMaxSize))
	}
	if c.ObstacleMinSpeed < 0 || c.ObstacleMaxSpeed < c.ObstacleMinSpeed {
		errs = append(errs, fmt.Errorf("obstacle speed range [%v, %v] is invalid", c.ObstacleMinSpeed, c.ObstacleMaxSpeed))
	}
	if c.Ship.Drag < 0 || c.Ship.Drag > 1 {
		errs = append(errs, fmt.Errorf("ship.drag must be within [0, 1], got %v", c.Ship.Drag))
	}
	if c.Ship.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("ship.max_speed must be non-negative, got %v", c.Ship.MaxSpeed))
	}
	return errors.Join(errs...)
}
