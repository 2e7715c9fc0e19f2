package systems

import (
	"image/color"
	"math"

	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/shared/leveldata"
	"github.com/automoto/snakeframe/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	textOp = &ebiten.DrawImageOptions{}
)

// Board maps grid cells onto logical pixels of the square render surface.
type Board struct {
	Cell       float64 // Side of one cell in logical pixels
	OffsetX    float64
	OffsetY    float64
	Scale      float64 // Logical to backing pixels
	Side       float64 // Side of the surface in logical pixels
	Cols, Rows int
}

// BoardFor fits a cols x rows grid, centered, into a square of side logical pixels.
func BoardFor(cols, rows int, side, scale float64) Board {
	if scale <= 0 {
		scale = 1
	}
	b := Board{Scale: scale, Side: side, Cols: cols, Rows: rows}
	if cols <= 0 || rows <= 0 || side <= 0 {
		return b
	}
	b.Cell = math.Floor(side/float64(max(cols, rows))*4) / 4
	b.OffsetX = (side - b.Cell*float64(cols)) / 2
	b.OffsetY = (side - b.Cell*float64(rows)) / 2
	return b
}

// CellRect returns the logical rectangle of cell c.
func (b Board) CellRect(c leveldata.Cell) (x, y, w, h float64) {
	return b.OffsetX + float64(c.X)*b.Cell, b.OffsetY + float64(c.Y)*b.Cell, b.Cell, b.Cell
}

// GetBoard returns the board geometry for the current arena and viewport.
func GetBoard(ecs *ecs.ECS) (Board, bool) {
	level := getLevel(ecs)
	if level == nil {
		return Board{}, false
	}
	vp := GetOrCreateViewport(ecs)
	b := BoardFor(level.Arena.Cols, level.Arena.Rows, vp.Size, vp.Scale)
	return b, b.Cell > 0
}

// DrawArena renders the floor, walls, food and snake.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	board, ok := GetBoard(ecs)
	if !ok {
		return
	}
	level := getLevel(ecs)

	fillRect(screen, board, board.OffsetX, board.OffsetY,
		board.Cell*float64(board.Cols), board.Cell*float64(board.Rows), cfg.Arena.FloorColor)
	drawGrid(screen, board)

	for _, c := range level.Arena.Walls {
		fillCell(screen, board, c, 0, cfg.Arena.WallColor)
	}

	if foodEntry, ok := tags.Food.First(ecs.World); ok {
		fillCell(screen, board, components.Food.Get(foodEntry).Cell, board.Cell/4, cfg.Snake.FoodColor)
	}

	body := SnakeBody(ecs)
	for i := len(body) - 1; i >= 0; i-- {
		clr := cfg.Snake.BodyColor
		if i == 0 {
			clr = cfg.Snake.HeadColor
		}
		fillCell(screen, board, body[i], 1, clr)
	}
}

func drawGrid(screen *ebiten.Image, board Board) {
	s := float32(board.Scale)
	w := float32(board.Cell*float64(board.Cols)) * s
	h := float32(board.Cell*float64(board.Rows)) * s
	ox, oy := float32(board.OffsetX)*s, float32(board.OffsetY)*s
	for x := 1; x < board.Cols; x++ {
		px := ox + float32(float64(x)*board.Cell)*s
		vector.StrokeLine(screen, px, oy, px, oy+h, 1, cfg.Arena.GridColor, false)
	}
	for y := 1; y < board.Rows; y++ {
		py := oy + float32(float64(y)*board.Cell)*s
		vector.StrokeLine(screen, ox, py, ox+w, py, 1, cfg.Arena.GridColor, false)
	}
}

// fillCell fills cell c inset by inset logical pixels on each side.
func fillCell(screen *ebiten.Image, board Board, c leveldata.Cell, inset float64, clr color.Color) {
	x, y, w, h := board.CellRect(c)
	fillRect(screen, board, x+inset, y+inset, w-2*inset, h-2*inset, clr)
}

// fillRect fills a rectangle given in logical pixels.
func fillRect(screen *ebiten.Image, board Board, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s := board.Scale
	vector.FillRect(screen, float32(x*s), float32(y*s), float32(w*s), float32(h*s), clr, false)
}

// drawText draws str with its baseline at x, y logical pixels, scaled to the
// backing resolution.
func drawText(screen *ebiten.Image, str string, face font.Face, x, y, scale float64, clr color.Color) {
	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Translate(x, y)
	textOp.GeoM.Scale(scale, scale)
	textOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, str, face, textOp)
}

// textSize measures str in face pixels.
func textSize(face font.Face, str string) (w, h, ascent float64) {
	bounds, _ := font.BoundString(face, str)
	return float64((bounds.Max.X - bounds.Min.X).Ceil()),
		float64((bounds.Max.Y - bounds.Min.Y).Ceil()),
		float64(-bounds.Min.Y.Floor())
}

// GetOrCreateViewport returns the singleton Viewport component, creating if needed.
func GetOrCreateViewport(ecs *ecs.ECS) *components.ViewportData {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Viewport))
		components.Viewport.SetValue(entry, components.ViewportData{Scale: 1})
	}
	return components.Viewport.Get(entry)
}
