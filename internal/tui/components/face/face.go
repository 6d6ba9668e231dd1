// Package face draws an analog.Face on a character grid.
package face

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/clockface/internal/analog"
)

type cell int

const (
	cellEmpty cell = iota
	cellRim
	cellMarker
	cellLabel
	cellSecond
	cellMinute
	cellHour
	cellCenter
)

type Styles struct {
	Rim    lipgloss.Style
	Marker lipgloss.Style
	Label  lipgloss.Style
	Hour   lipgloss.Style
	Minute lipgloss.Style
	Second lipgloss.Style
	Center lipgloss.Style
}

// MinRadius is the smallest radius, in rows, that still reads as a clock.
const MinRadius = 5

type grid struct {
	radius int
	runes  [][]rune
	kinds  [][]cell
}

// Terminal cells are about twice as tall as wide, so the grid is 4r+1 columns
// by 2r+1 rows.
func newGrid(radius int) *grid {
	g := &grid{radius: radius}
	rows, cols := 2*radius+1, 4*radius+1
	g.runes = make([][]rune, rows)
	g.kinds = make([][]cell, rows)
	for r := range g.runes {
		g.runes[r] = []rune(strings.Repeat(" ", cols))
		g.kinds[r] = make([]cell, cols)
	}
	return g
}

// at maps a polar position (fraction of the face radius) to a grid cell.
func (g *grid) at(angle, radius float64) (row, col int) {
	x, y := analog.Point(angle, radius)
	col = 2*g.radius + int(math.Round(x*float64(2*g.radius)))
	row = g.radius + int(math.Round(y*float64(g.radius)))
	return row, col
}

func (g *grid) set(row, col int, r rune, kind cell) {
	if row < 0 || row >= len(g.runes) || col < 0 || col >= len(g.runes[row]) {
		return
	}
	g.runes[row][col] = r
	g.kinds[row][col] = kind
}

func (g *grid) line(angle, from, to float64, r rune, kind cell) {
	step := 0.5 / float64(2*g.radius)
	for d := from; d <= to; d += step {
		row, col := g.at(angle, d)
		g.set(row, col, r, kind)
	}
}

func (g *grid) text(row, col int, s string, kind cell) {
	runes := []rune(s)
	start := col - len(runes)/2
	for i, r := range runes {
		g.set(row, start+i, r, kind)
	}
}

// Render draws f with the given radius in rows. Hands are drawn last so they
// stay visible over markers.
func Render(f analog.Face, radius int, styles Styles) string {
	if radius < MinRadius {
		radius = MinRadius
	}
	g := newGrid(radius)

	for a := 0.0; a < 360; a += 3 {
		row, col := g.at(a, 1)
		g.set(row, col, '.', cellRim)
	}

	for _, m := range f.Markers {
		if m.Label != "" {
			row, col := g.at(m.Angle, m.Radius+0.2)
			g.text(row, col, m.Label, cellLabel)
			continue
		}
		r := '+'
		if m.StrokeWidth >= 4 {
			r = '#'
		}
		// Markers sit further out than in the reference layout so the hands
		// do not cover them on a coarse grid.
		g.line(m.Angle, 1-m.Length-0.1, 0.9, r, cellMarker)
	}

	g.line(f.Second.Angle, 0, f.Second.Length, '.', cellSecond)
	g.line(f.Minute.Angle, 0, f.Minute.Length, '*', cellMinute)
	if f.Hour != nil {
		g.line(f.Hour.Angle, 0, f.Hour.Length, '@', cellHour)
	}
	g.set(radius, 2*radius, 'o', cellCenter)

	return g.render(styles)
}

func (g *grid) render(styles Styles) string {
	styleFor := map[cell]lipgloss.Style{
		cellRim:    styles.Rim,
		cellMarker: styles.Marker,
		cellLabel:  styles.Label,
		cellHour:   styles.Hour,
		cellMinute: styles.Minute,
		cellSecond: styles.Second,
		cellCenter: styles.Center,
	}

	lines := make([]string, len(g.runes))
	for r := range g.runes {
		var b strings.Builder
		// Group runs of the same kind to keep the escape sequences short
		start := 0
		for c := 1; c <= len(g.runes[r]); c++ {
			if c < len(g.runes[r]) && g.kinds[r][c] == g.kinds[r][start] {
				continue
			}
			run := string(g.runes[r][start:c])
			if style, ok := styleFor[g.kinds[r][start]]; ok {
				run = style.Render(run)
			}
			b.WriteString(run)
			start = c
		}
		lines[r] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}
