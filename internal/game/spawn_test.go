package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
)

func TestTryFireProjectileCooldown(t *testing.T) {
	h := newHarness(DefaultConfig(), nil)

	_, ok := h.s.TryFireProjectile(100 * time.Millisecond)
	require.True(t, ok)
	_, ok = h.s.TryFireProjectile(349 * time.Millisecond)
	assert.False(t, ok, "second shot inside the cooldown is refused")
	_, ok = h.s.TryFireProjectile(350 * time.Millisecond)
	assert.True(t, ok)

	assert.Len(t, h.s.Projectiles(), 2)
	assert.Equal(t, 350*time.Millisecond, h.s.State().LastFire)
}

func TestFireHeldForOneSecondProducesFourBolts(t *testing.T) {
	h := newHarness(DefaultConfig(), nil)
	fire := Keys{ActionFire: true}

	for now := time.Duration(0); now < time.Second; now += 10 * time.Millisecond {
		h.s.Tick(now, fire)
	}

	require.Len(t, h.s.Projectiles(), 4)
	for i, p := range h.s.Projectiles() {
		assert.Equal(t, time.Duration(i)*250*time.Millisecond, p.CreatedAt)
	}
	assert.Equal(t, 4, h.display.created(object.KindProjectile))
}

func TestProjectileLeavesFromNoseWithFrozenDirection(t *testing.T) {
	h := newHarness(DefaultConfig(), nil)
	h.s.Ship().Heading = math.Pi / 2

	p, ok := h.s.TryFireProjectile(0)
	require.True(t, ok)
	assert.InDelta(t, 0.8, p.Position.X, 1e-9)
	assert.InDelta(t, 0.0, p.Position.Z, 1e-9)
	assert.InDelta(t, 1.0, p.Direction.X, 1e-9)

	h.s.Ship().Heading = 0
	h.s.Tick(16*time.Millisecond, nil)
	assert.InDelta(t, 1.0, p.Direction.X, 1e-9, "direction does not follow the ship")
	assert.InDelta(t, 1.6, p.Position.X, 1e-9)
}

func TestTrySpawnObstacleInterval(t *testing.T) {
	h := newHarness(DefaultConfig(), nil)

	spawned := 0
	for now := time.Duration(0); now <= 3500*time.Millisecond; now += time.Millisecond {
		if _, ok := h.s.TrySpawnObstacle(now); ok {
			spawned++
		}
	}
	assert.Equal(t, 3, spawned, "one rock at 1s, 2s and 3s")
	assert.Equal(t, 3000*time.Millisecond, h.s.State().LastSpawn)
}

func TestTickSpawnsAtMostOneRockPerInterval(t *testing.T) {
	h := newHarness(DefaultConfig(), nil)

	for now := time.Duration(0); now < 3*time.Second; now += 10 * time.Millisecond {
		h.s.Tick(now, nil)
	}
	assert.Equal(t, 2, h.display.created(object.KindObstacle))
	assert.False(t, h.s.IsGameOver())
}

func TestTrySpawnObstaclePlacement(t *testing.T) {
	// size, along, target x, target z, speed; edge from ints.
	rng := &seqRand{floats: []float64{0.5, 0.5, 0.5, 0.5, 0.5}, ints: []int{3}}
	h := newHarness(DefaultConfig(), rng)

	o, ok := h.s.TrySpawnObstacle(time.Second)
	require.True(t, ok)

	assert.Equal(t, physics.Vec3{X: 35}, o.Position)
	assert.InDelta(t, -1.0, o.Direction.X, 1e-12)
	assert.InDelta(t, 0.0, o.Direction.Z, 1e-12)
	assert.InDelta(t, 1.55, o.Size, 1e-12)
	assert.InDelta(t, 0.775, o.Radius, 1e-12)
	assert.Equal(t, 2, o.Health)
	assert.InDelta(t, 0.035, o.Speed, 1e-12)
	assert.Equal(t, physics.Vec3{X: 35}, h.display.positions[o.Visual])
}

func TestTrySpawnObstacleEdges(t *testing.T) {
	tests := []struct {
		edge int
		want physics.Vec3
	}{
		{0, physics.Vec3{X: 0, Z: 35}},
		{1, physics.Vec3{X: 0, Z: -35}},
		{2, physics.Vec3{X: -35, Z: 0}},
		{3, physics.Vec3{X: 35, Z: 0}},
	}
	for _, tt := range tests {
		rng := &seqRand{floats: []float64{0.5}, ints: []int{tt.edge}}
		h := newHarness(DefaultConfig(), rng)
		o, ok := h.s.TrySpawnObstacle(time.Second)
		require.True(t, ok)
		assert.Equal(t, tt.want, o.Position, "edge %d", tt.edge)
		assert.InDelta(t, 1.0, o.Direction.Length(), 1e-12)
	}
}

func TestTrySpawnObstacleDegenerateDirection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetSpread = 40
	// size, along -> x=0, target x=0, target z=35 (the spawn point itself), speed.
	rng := &seqRand{floats: []float64{0, 0.5, 0.5, 0.9375, 0}, ints: []int{0}}
	h := newHarness(cfg, rng)

	o, ok := h.s.TrySpawnObstacle(time.Second)
	require.True(t, ok)
	assert.Equal(t, physics.Vec3{Z: 35}, o.Position)
	assert.Equal(t, physics.Vec3{Z: -1}, o.Direction, "falls back to heading for the origin")
	assert.False(t, math.IsNaN(o.Direction.X))
}

func TestSpawnRefusedAfterGameOver(t *testing.T) {
	h := newHarness(DefaultConfig(), nil)
	h.s.TriggerGameOver()

	_, fired := h.s.TryFireProjectile(0)
	_, spawned := h.s.TrySpawnObstacle(5 * time.Second)
	assert.False(t, fired)
	assert.False(t, spawned)
	assert.Empty(t, h.s.Projectiles())
	assert.Empty(t, h.s.Obstacles())
}
