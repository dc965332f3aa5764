package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	gridPosAlive = "0 "
	gridPosDead  = "- "
)

// Rows returns one string per grid row, two characters per cell
func (g *Grid) Rows() []string {
	var (
		rows = make([]string, g.height)
		sb   strings.Builder
	)
	for y := range g.height {
		sb.Reset()
		sb.Grow(g.width * len(gridPosAlive))
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			if c == Alive {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosDead)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the grid with a newline after each row
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}

// Render writes the grid as text to w
func Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Rows() {
		bw.WriteString(row)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Render] failed to write grid")
	}
	return nil
}

// ScreenRenderer draws grids and text lines onto a terminal screen
type ScreenRenderer struct {
	Screen tcell.Screen
	Style  tcell.Style
}

// NewScreenRenderer returns a renderer using the screen's default style
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{Screen: screen, Style: tcell.StyleDefault}
}

// Display draws the grid at the top left followed by the extra lines, then shows the frame
func (r *ScreenRenderer) Display(g *Grid, lines ...string) {
	y := 0
	for _, row := range g.Rows() {
		r.drawLine(y, row)
		y++
	}
	for _, line := range lines {
		r.drawLine(y, line)
		y++
	}
	r.Screen.Show()
}

// Clear clears the terminal screen
func (r *ScreenRenderer) Clear() {
	r.Screen.Clear()
}

func (r *ScreenRenderer) drawLine(y int, line string) {
	x := 0
	for _, ch := range line {
		r.Screen.SetContent(x, y, ch, nil, r.Style)
		x++
	}
}
