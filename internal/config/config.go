// Package config loads runtime settings from defaults, an optional file and the environment.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/tomz197/rockfield/internal/game"
)

// EnvPrefix prefixes every environment override, e.g. ROCKFIELD_SSH_PORT.
const EnvPrefix = "ROCKFIELD"

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

// SSHSettings configures the SSH host.
type SSHSettings struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	HostKeyPath string `mapstructure:"host_key"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // Empty: stderr for the SSH host, discarded for the local host
}

// Settings is everything a host needs to start.
type Settings struct {
	Game game.Config `mapstructure:"game"`
	SSH  SSHSettings `mapstructure:"ssh"`
	Log  LogSettings `mapstructure:"log"`
}

// Load builds settings from defaults, the file at path (if not empty) and
// ROCKFIELD_* environment variables, in increasing priority. The legacy
// SSH_HOST, SSH_PORT and SSH_HOST_KEY variables are honoured as fallbacks.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range map[string]string{
		"ssh.host":     "SSH_HOST",
		"ssh.port":     "SSH_PORT",
		"ssh.host_key": "SSH_HOST_KEY",
	} {
		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, legacy); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Game.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return &s, nil
}

// setDefaults registers every key so that environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	g := game.DefaultConfig()
	defaults := map[string]any{
		"game.play_area":          g.PlayArea,
		"game.spawn_margin":       g.SpawnMargin,
		"game.cull_margin":        g.CullMargin,
		"game.target_spread":      g.TargetSpread,
		"game.fire_cooldown":      g.FireCooldown,
		"game.spawn_interval":     g.SpawnInterval,
		"game.projectile_ttl":     g.ProjectileTTL,
		"game.projectile_speed":   g.ProjectileSpeed,
		"game.projectile_radius":  g.ProjectileRadius,
		"game.muzzle_distance":    g.MuzzleDistance,
		"game.obstacle_min_size":  g.ObstacleMinSize,
		"game.obstacle_max_size":  g.ObstacleMaxSize,
		"game.obstacle_min_speed": g.ObstacleMinSpeed,
		"game.obstacle_max_speed": g.ObstacleMaxSpeed,
		"game.grid_cell_size":     g.GridCellSize,

		"game.ship.max_speed":      g.Ship.MaxSpeed,
		"game.ship.acceleration":   g.Ship.Acceleration,
		"game.ship.drag":           g.Ship.Drag,
		"game.ship.rotation_speed": g.Ship.RotationSpeed,
		"game.ship.radius_x":       g.Ship.RadiusX,
		"game.ship.radius_y":       g.Ship.RadiusY,
		"game.ship.radius_z":       g.Ship.RadiusZ,

		"ssh.host":     defaultHost,
		"ssh.port":     defaultPort,
		"ssh.host_key": defaultHostKeyPath,

		"log.level": "info",
		"log.file":  "",
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// NewLogger builds a logger for the settings. Output goes to the configured
// file, or to fallback when no file is set. The returned closer releases the file.
func NewLogger(s LogSettings, prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(s.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	out, closer := fallback, io.Closer(nopCloser{})
	if s.File != "" {
		f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
