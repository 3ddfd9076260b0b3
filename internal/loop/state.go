package loop

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rockfield/internal/draw"
	"github.com/tomz197/rockfield/internal/game"
	"github.com/tomz197/rockfield/internal/input"
)

// screen is the host's current phase.
type screen int

const (
	screenTitle    screen = iota // Title screen
	screenPlaying                // Active session
	screenGameOver               // Session ended, show restart prompt
)

// hud mirrors the session's score for drawing. It implements game.Listener.
type hud struct {
	score  int
	final  int
	best   int
	over   bool
	logger *log.Logger
}

func (h *hud) OnScoreChanged(score int) {
	h.score = score
}

func (h *hud) OnGameOver(finalScore int) {
	h.over = true
	h.final = finalScore
	if finalScore > h.best {
		h.best = finalScore
	}
	h.logger.Info("round over", "score", finalScore, "best", h.best)
}

var _ game.Listener = (*hud)(nil)

// app is the per-terminal state machine around one session at a time.
type app struct {
	opts    Options
	screen  screen
	session *game.Session
	scene   *draw.Scene
	canvas  *draw.Canvas
	hud     hud
	started time.Time // Wall time the current round started
	overAt  time.Time // Wall time the current round ended
	rounds  int
	stream  *input.Stream // Nil in tests that drive step directly
}

func newApp(opts Options) *app {
	return &app{
		opts:   opts,
		screen: screenTitle,
		hud:    hud{logger: opts.Logger},
	}
}

// step applies one frame of input and advances the session.
// It reports whether the host should exit.
func (a *app) step(in input.Input, now time.Time) bool {
	if in.Quit {
		return true
	}

	switch a.screen {
	case screenTitle:
		if in.Enter || in.Space {
			a.newRound(now)
		}
	case screenPlaying:
		a.session.Tick(now.Sub(a.started), in)
		if a.session.IsGameOver() {
			a.screen = screenGameOver
			a.overAt = now
		}
	case screenGameOver:
		if (in.Enter || in.Space) && now.Sub(a.overAt) >= restartGrace {
			a.newRound(now)
		}
	}
	return false
}

// newRound replaces the session with a fresh one. The best score survives.
// Keys still held from the previous screen are forgotten.
func (a *app) newRound(now time.Time) {
	a.rounds++
	input.ResetKeyInput(a.stream)
	a.scene = draw.NewScene(a.opts.Config.PlayArea)
	a.hud.score, a.hud.final, a.hud.over = 0, 0, false
	a.session = game.New(a.opts.Config, game.Options{
		Display:  a.scene,
		Listener: &a.hud,
		Rand:     a.opts.Rand,
		Logger:   a.opts.Logger.With("round", a.rounds),
	})
	a.started = now
	a.screen = screenPlaying
	a.opts.Logger.Debug("round started", "round", a.rounds)
}
