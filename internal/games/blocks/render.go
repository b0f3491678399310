package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/piece"
)

// Layout sizes in terminal cells. Each board cell is two characters wide.
const (
	cellW       = 2
	boardBoxW   = engine.BoardWidth*cellW + 2
	boardBoxH   = engine.BoardHeight + 2
	panelW      = 17
	previewBoxH = piece.MaxBlocks + 2

	// MinWidth and MinHeight are the smallest terminal that fits the board
	// and the side panel.
	MinWidth  = boardBoxW + 1 + panelW
	MinHeight = engine.BoardHeight + 4
)

var clearNames = [engine.MaxClear + 1]string{"", "Single", "Double", "Triple", "Quad"}

// boardRect holds the visible board cells, y counted up from the bottom.
var boardRect = core.NewRect(0, 0, engine.BoardWidth, engine.BoardHeight)

// Render draws the board, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", MinWidth, MinHeight, g.screenW, g.screenH))
		return
	}

	ox := (dst.Width() - MinWidth) / 2
	oy := 1

	dst.DrawTextColored(ox, 0, "BLOCKS", core.ColorBrightWhite)

	g.renderBoard(dst, ox, oy)
	g.renderPanel(dst, ox+boardBoxW+1, oy)

	switch {
	case g.eng.GameOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	dst.DrawBox(core.NewRect(ox, oy, boardBoxW, boardBoxH), core.ColorGray)

	for y, row := range g.eng.Rows() {
		if y >= engine.BoardHeight {
			break
		}
		for x, v := range row {
			if v != 0 {
				g.drawCell(dst, ox, oy, x, y, '█', core.Color(v))
			}
		}
	}

	cur := g.eng.Current()
	if g.cfg.Play.Ghost && !g.eng.GameOver() {
		ghost := g.eng.Ghost()
		if ghost.Y != cur.Y {
			for _, b := range g.eng.Shape(ghost).Blocks {
				g.drawCell(dst, ox, oy, ghost.X+b.DX, ghost.Y+b.DY, '░', b.Color)
			}
		}
	}

	for _, b := range g.eng.Shape(cur).Blocks {
		g.drawCell(dst, ox, oy, cur.X+b.DX, cur.Y+b.DY, '█', b.Color)
	}
}

// drawCell paints board cell (x, y), y counted up from the bottom row.
func (g *Game) drawCell(dst *core.Screen, ox, oy, x, y int, r rune, c core.Color) {
	if !boardRect.Contains(x, y) {
		return
	}
	sx := ox + 1 + x*cellW
	sy := oy + boardBoxH - 2 - y
	for i := range cellW {
		dst.SetColored(sx+i, sy, r, c)
	}
}

func (g *Game) renderPanel(dst *core.Screen, px, py int) {
	y := py
	stat := func(label string, value int) {
		dst.DrawTextColored(px, y, label, core.ColorGray)
		dst.DrawText(px, y+1, fmt.Sprintf("%d", value))
		y += 2
	}
	stat("Score", g.eng.Score())
	stat("Level", g.eng.Level())
	stat("Lines", g.eng.Lines())

	g.renderPreview(dst, px, y, "Next", g.eng.NextType(), true)
	y += previewBoxH

	if g.cfg.Play.Hold {
		held, ok := g.eng.HeldType()
		g.renderPreview(dst, px, y, "Hold", held, ok)
		y += previewBoxH
	}

	for n := 1; n <= engine.MaxClear; n++ {
		dst.DrawText(px, y, fmt.Sprintf("%-7s %d", clearNames[n], g.eng.Clears(n)))
		y++
	}
}

// renderPreview draws an unrotated piece inside a small titled box.
func (g *Game) renderPreview(dst *core.Screen, px, py int, title string, t piece.Type, show bool) {
	box := core.NewRect(px, py, panelW-1, previewBoxH)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(px+2, py, title)
	if !show {
		return
	}

	s := g.eng.Catalog().Piece(t).Shape(piece.Unrotated)
	left := px + 1 + (box.W-2-s.Width*cellW)/2
	bottom := py + previewBoxH - 2 - (piece.MaxBlocks-s.Height)/2
	for _, b := range s.Blocks {
		for i := range cellW {
			dst.SetColored(left+b.DX*cellW+i, bottom-b.DY, '█', b.Color)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		for x := r.X + 1; x < r.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}
