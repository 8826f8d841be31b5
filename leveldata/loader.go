package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object groups and properties read from the TMX file.
const (
	groupGround = "Ground"
	groupSpawn  = "Spawn"
	groupFloor  = "Floor"

	propTop       = "top"
	propThickness = "thickness"
	propHeight    = "height"

	defaultThickness = 1.0
)

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass the
// embedded arenas or os.DirFS for files on disk. One map tile is one world
// unit.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, m.TileWidth, m.TileHeight)
	}

	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(m.Width),
		Depth: float64(m.Height),
	}
	tw := float64(m.TileWidth)
	th := float64(m.TileHeight)
	// toWorld converts a pixel position to centred world X/Z.
	toWorld := func(px, py float64) (float64, float64) {
		return px/tw - arena.Width/2, py/th - arena.Depth/2
	}

	spawned := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case groupGround:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("load TMX %s: ground %q has no area", tmxPath, o.Name)
				}
				thickness := o.Properties.GetFloat(propThickness)
				if thickness <= 0 {
					thickness = defaultThickness
				}
				top := o.Properties.GetFloat(propTop)
				x, z := toWorld(o.X+o.Width/2, o.Y+o.Height/2)
				id := o.Name
				if id == "" {
					id = fmt.Sprintf("ground-%d", o.ID)
				}
				arena.Grounds = append(arena.Grounds, GroundPatch{
					ID:     id,
					Center: mgl64.Vec3{x, top - thickness/2, z},
					Half:   mgl64.Vec3{o.Width / tw / 2, thickness / 2, o.Height / th / 2},
				})
			}
		case groupSpawn:
			if len(og.Objects) == 0 || spawned {
				continue
			}
			o := og.Objects[0]
			x, z := toWorld(o.X, o.Y)
			arena.Spawn = mgl64.Vec3{x, o.Properties.GetFloat(propHeight), z}
			spawned = true
		case groupFloor:
			if len(og.Objects) == 0 {
				continue
			}
			arena.Floor = true
			arena.FloorHeight = og.Objects[0].Properties.GetFloat(propHeight)
		}
	}

	if !spawned {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}
	if len(arena.Grounds) == 0 && !arena.Floor {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoGround)
	}

	sort.Slice(arena.Grounds, func(i, j int) bool {
		return arena.Grounds[i].ID < arena.Grounds[j].ID
	})
	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return arenas, names, nil
}
