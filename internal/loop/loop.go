// Package loop hosts a game session on a terminal: it reads keys, ticks the
// session at a fixed frame rate and draws the title, playing and game-over screens.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rockfield/internal/draw"
	"github.com/tomz197/rockfield/internal/game"
	"github.com/tomz197/rockfield/internal/input"
)

const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS

	// restartGrace stops a held fire key from skipping the game-over screen.
	restartGrace = 500 * time.Millisecond
)

// Options configures a terminal run. Zero values fall back to defaults.
type Options struct {
	Config    game.Config
	TermSize  draw.TermSizeFunc
	Logger    *log.Logger
	FrameTime time.Duration
	Rand      game.Rand // Shared by every round; nil seeds each session randomly
}

func (o Options) withDefaults() Options {
	if o.Config == (game.Config{}) {
		o.Config = game.DefaultConfig()
	}
	if o.TermSize == nil {
		o.TermSize = draw.DefaultTermSizeFunc
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.FrameTime <= 0 {
		o.FrameTime = targetFrameTime
	}
	return o
}

// Run drives the Input → Update → Draw cycle until the player quits, the input
// reaches EOF or ctx is cancelled. Only terminal write and size errors are returned.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	a := newApp(opts)
	stream := input.StartStream(r)
	defer stream.Stop()
	a.stream = stream
	cw := draw.NewChunkWriter(w)

	cw.HideCursor()
	cw.ClearScreen()
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	defer func() {
		cw.ClearScreen()
		cw.ShowCursor()
		_ = cw.Flush()
	}()

	opts.Logger.Info("terminal session started")
	ticker := time.NewTicker(opts.FrameTime)
	defer ticker.Stop()

	for {
		// ===== INPUT + UPDATE =====
		in := input.ReadInput(stream)
		if a.step(in, time.Now()) {
			opts.Logger.Info("terminal session ended", "rounds", a.rounds, "best", a.hud.best, "eof", in.Closed)
			return nil
		}

		// ===== DRAW =====
		if err := a.drawFrame(cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		select {
		case <-ctx.Done():
			opts.Logger.Info("terminal session cancelled", "rounds", a.rounds, "best", a.hud.best)
			return nil
		case <-ticker.C:
		}
	}
}
