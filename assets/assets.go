package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/domain-expansion/leveldata"
)

//go:embed all:arenas
var arenaFS embed.FS

const arenaDir = "arenas"

// DefaultArena is loaded when no arena is named on the command line.
const DefaultArena = "plains"

// ArenaFS exposes the embedded arenas.
func ArenaFS() fs.FS {
	return arenaFS
}

// LoadArena loads an embedded arena by stem name.
func LoadArena(name string) (*leveldata.Arena, error) {
	a, err := leveldata.LoadArena(arenaFS, path.Join(arenaDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", name, err)
	}
	return a, nil
}

// ArenaNames lists the embedded arenas in sorted order.
func ArenaNames() ([]string, error) {
	_, names, err := leveldata.LoadAllArenas(arenaFS, arenaDir)
	return names, err
}
