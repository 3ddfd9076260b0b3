package loop

import (
	"fmt"

	"github.com/tomz197/rockfield/internal/draw"
)

// minFieldCols is the narrowest play field worth drawing.
const minFieldCols = 8

var titleArt = []string{
	` ___  ___   ___ _  _____ ___ ___ _    ___  `,
	`| _ \/ _ \ / __| |/ / __|_ _| __| |  |   \ `,
	`|   / (_) | (__| ' <| _| | || _|| |__| |) |`,
	`|_|_\\___/ \___|_|\_\_| |___|___|____|___/ `,
}

const controlsHelp = "A/D or arrows rotate  W or Up thrust  SPACE fire  Q quit"

// drawFrame clears the terminal and draws the current screen.
func (a *app) drawFrame(cw *draw.ChunkWriter) error {
	cols, rows, err := a.opts.TermSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	cw.ClearScreen()
	centerX, centerY := cols/2, rows/2

	switch a.screen {
	case screenTitle:
		drawTitleScreen(cw, centerX, centerY)
	case screenPlaying:
		a.drawField(cw, cols, rows)
		a.drawHUD(cw, cols)
	case screenGameOver:
		a.drawField(cw, cols, rows)
		a.drawGameOverScreen(cw, centerX, centerY)
	}

	if err := cw.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// drawField renders the scene into the largest square area below the HUD row.
// A half-block cell is one pixel wide and two tall, so a square area spans
// twice as many columns as rows.
func (a *app) drawField(cw *draw.ChunkWriter, cols, rows int) {
	fieldRows := rows - 1
	side := min(cols, fieldRows*2)
	if side < minFieldCols {
		cw.WriteAt(1, 1, "Terminal too small")
		return
	}

	span := a.scene.Span()
	if a.canvas == nil {
		a.canvas = draw.NewScaledCanvas(side, side/2, span, span)
	}
	a.canvas.Resize(side, side/2)
	a.canvas.SetOffset((cols-side)/2, 1+(fieldRows-side/2)/2)
	a.canvas.Clear()

	a.scene.Render(a.canvas)
	_ = a.canvas.Render(cw) // ChunkWriter buffers in memory; errors surface on Flush.
}

// drawTitleScreen draws the title art, start prompt and controls.
func drawTitleScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	top := centerY - len(titleArt) - 1
	for i, line := range titleArt {
		cw.WriteCentered(centerX, top+i, line)
	}
	cw.WriteCentered(centerX, centerY+1, "Press ENTER or SPACE to start")
	cw.WriteCentered(centerX, centerY+3, controlsHelp)
}

// drawHUD draws the score line.
func (a *app) drawHUD(cw *draw.ChunkWriter, cols int) {
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", a.hud.score))
	best := fmt.Sprintf("Best: %d", a.hud.best)
	cw.WriteAt(cols-len(best), 1, best)
}

// drawGameOverScreen overlays the final score and restart prompt.
func (a *app) drawGameOverScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	cw.WriteCentered(centerX, centerY-2, "G A M E   O V E R")
	cw.WriteCentered(centerX, centerY, fmt.Sprintf("Score: %d   Best: %d", a.hud.final, a.hud.best))
	cw.WriteCentered(centerX, centerY+2, "Press ENTER to play again, Q to quit")
}
