// Package terminal hosts the render loop and the steering input on a tcell screen.
//
// A terminal cell is roughly twice as tall as it is wide, so one logical pixel is
// two columns by one row. CellSurface stores one cell per logical pixel and Flush
// widens it back to two columns.
package terminal

import (
	"github.com/automoto/snakeframe/render"
	"github.com/gdamore/tcell/v2"
)

// Cell is one logical pixel of a CellSurface.
type Cell struct {
	Rune  rune
	Right rune // Rune for the second column; zero repeats block runes
	Style tcell.Style
}

var blank = Cell{Rune: ' ', Style: tcell.StyleDefault}

// CellSurface is a render.Surface backed by a grid of cells.
type CellSurface struct {
	cells         []Cell
	width, height int
	size          render.Size
}

func NewCellSurface() *CellSurface {
	return &CellSurface{}
}

// SetSize reallocates the grid to the backing size. Content is lost.
func (s *CellSurface) SetSize(size render.Size) {
	s.size = size
	w, h := max(size.BackingWidth, 0), max(size.BackingHeight, 0)
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.cells = make([]Cell, w*h)
	s.Clear()
}

func (s *CellSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Blit copies the overlapping part of src onto s.
func (s *CellSurface) Blit(src render.Surface) {
	from, ok := src.(*CellSurface)
	if !ok {
		return
	}
	w, h := min(s.width, from.width), min(s.height, from.height)
	for y := 0; y < h; y++ {
		copy(s.cells[y*s.width:y*s.width+w], from.cells[y*from.width:y*from.width+w])
	}
}

// Size returns the last size set.
func (s *CellSurface) Size() render.Size {
	return s.size
}

// Bounds returns the grid dimensions.
func (s *CellSurface) Bounds() (width, height int) {
	return s.width, s.height
}

// At returns the cell at x, y, or a blank cell outside the grid.
func (s *CellSurface) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return blank
	}
	return s.cells[y*s.width+x]
}

// Set writes one cell. Writes outside the grid are dropped.
func (s *CellSurface) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Style: style}
}

// Fill paints a rectangle with r.
func (s *CellSurface) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.Set(xx, yy, r, style)
		}
	}
}

// Text writes str starting at x, y, two runes per cell.
func (s *CellSurface) Text(x, y int, str string, style tcell.Style) {
	runes := []rune(str)
	for i := 0; i < len(runes); i += 2 {
		if x < 0 || y < 0 || x >= s.width || y >= s.height {
			x++
			continue
		}
		c := Cell{Rune: runes[i], Right: ' ', Style: style}
		if i+1 < len(runes) {
			c.Right = runes[i+1]
		}
		s.cells[y*s.width+x] = c
		x++
	}
}

// Target returns the cell surface a DrawContext draws into, or nil if the
// context's surface is not cell backed.
func Target(dc *render.DrawContext) *CellSurface {
	if s, ok := dc.Target.(*CellSurface); ok {
		return s
	}
	return nil
}

// Flush draws the surface onto screen with its top-left corner at column ox,
// row oy. Every cell becomes two columns.
func (s *CellSurface) Flush(screen tcell.Screen, ox, oy int) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.cells[y*s.width+x]
			second := c.Right
			if second == 0 {
				second = ' '
				if isBlock(c.Rune) {
					second = c.Rune
				}
			}
			screen.SetContent(ox+2*x, oy+y, c.Rune, nil, c.Style)
			screen.SetContent(ox+2*x+1, oy+y, second, nil, c.Style)
		}
	}
}

func isBlock(r rune) bool {
	return r >= 0x2580 && r <= 0x259f
}
