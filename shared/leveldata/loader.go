package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/snakeframe/shared/direction"
	"github.com/lafriks/go-tiled"
)

// Object group names read from arena maps.
const (
	WallsGroup = "Walls"
	SpawnGroup = "Spawn"
)

// LoadArena parses a TMX file into arena data: wall rectangles from the Walls
// object group and the snake spawn from the Spawn object group. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	arena := &Arena{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Cols:     levelMap.Width,
		Rows:     levelMap.Height,
		TileSize: float64(levelMap.TileWidth),
		Spawn: Spawn{
			Cell:    Cell{X: levelMap.Width / 2, Y: levelMap.Height / 2},
			Heading: direction.Right,
		},
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	seen := make(map[Cell]bool)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallsGroup:
			// Each rectangle covers every cell it overlaps
			for _, o := range og.Objects {
				x0 := int(math.Floor(o.X / tileW))
				y0 := int(math.Floor(o.Y / tileH))
				x1 := int(math.Ceil((o.X+o.Width)/tileW)) - 1
				y1 := int(math.Ceil((o.Y+o.Height)/tileH)) - 1
				for y := y0; y <= y1; y++ {
					for x := x0; x <= x1; x++ {
						c := Cell{X: x, Y: y}
						if !arena.InBounds(c) || seen[c] {
							continue
						}
						seen[c] = true
						arena.Walls = append(arena.Walls, c)
					}
				}
			}
		case SpawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			arena.Spawn.Cell = Cell{X: int(o.X / tileW), Y: int(o.Y / tileH)}
			if d, ok := direction.Parse(o.Properties.GetString("heading")); ok {
				arena.Spawn.Heading = d
			}
			if n := o.Properties.GetInt("length"); n > 0 {
				arena.Spawn.Length = n
			}
		}
	}

	sortCells(arena.Walls)
	return arena, nil
}

// BorderedArena builds a cols x rows arena walled on all four edges, used when
// no map file is available.
func BorderedArena(cols, rows int) *Arena {
	arena := &Arena{
		Name:     "bordered",
		Cols:     cols,
		Rows:     rows,
		TileSize: 16,
		Spawn: Spawn{
			Cell:    Cell{X: cols / 2, Y: rows / 2},
			Heading: direction.Right,
		},
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x == 0 || y == 0 || x == cols-1 || y == rows-1 {
				arena.Walls = append(arena.Walls, Cell{X: x, Y: y})
			}
		}
	}
	return arena
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}
