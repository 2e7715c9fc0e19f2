package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ArenaNames lists the embedded arena maps by stem name.
func ArenaNames() []string {
	matches, err := fs.Glob(assetFS, "levels/*.tmx")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[len("levels/"):len(m)-len(".tmx")])
	}
	sort.Strings(names)
	return names
}

// LoadArena loads an embedded arena map by path.
func LoadArena(path string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(assetFS, path)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return arena, nil
}

// MustLoadArena loads the configured arena, falling back to a plain bordered
// grid when the map cannot be read.
func MustLoadArena() *leveldata.Arena {
	arena, err := LoadArena(config.Arena.MapPath)
	if err != nil {
		log.Printf("Warning: %v, using a bordered %dx%d arena", err, config.Arena.Cols, config.Arena.Rows)
		return leveldata.BorderedArena(config.Arena.Cols, config.Arena.Rows)
	}
	return arena
}
