package game

import (
	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
)

// Action is a logical input the simulation reacts to.
type Action string

const (
	ActionRotateLeft  Action = "rotate-left"
	ActionRotateRight Action = "rotate-right"
	ActionThrust      Action = "thrust"
	ActionFire        Action = "fire"
)

// Input reports which actions are held for the current tick.
type Input interface {
	Held(a Action) bool
}

// Keys is a map-backed Input.
type Keys map[Action]bool

// Held implements Input.
func (k Keys) Held(a Action) bool {
	return k[a]
}

// Display owns the visual side of every entity.
// DestroyVisual must tolerate handles that were already destroyed.
type Display interface {
	CreateVisual(spec object.VisualSpec) object.VisualHandle
	DestroyVisual(h object.VisualHandle)
	SetPosition(h object.VisualHandle, pos physics.Vec3)
	SetRotation(h object.VisualHandle, heading float64)
}

// Listener is told about score and game-over transitions.
type Listener interface {
	OnScoreChanged(score int)
	OnGameOver(finalScore int)
}

// Rand is the randomness a session draws from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type nopDisplay struct{}

func (nopDisplay) CreateVisual(object.VisualSpec) object.VisualHandle { return 0 }
func (nopDisplay) DestroyVisual(object.VisualHandle)                  {}
func (nopDisplay) SetPosition(object.VisualHandle, physics.Vec3)      {}
func (nopDisplay) SetRotation(object.VisualHandle, float64)           {}

type nopListener struct{}

func (nopListener) OnScoreChanged(int) {}
func (nopListener) OnGameOver(int)     {}
