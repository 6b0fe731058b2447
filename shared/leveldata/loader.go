package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/samurai/fixed"
	"github.com/lafriks/go-tiled"
)

const (
	groundGroup = "Ground"
	spawnGroup  = "Spawns"
)

// LoadArena parses a TMX file. The first object in the "Ground" group marks
// the ground line by its y; without one the bottom of the map is the ground.
// Objects in the "Spawns" group become spawns, with optional "radius"
// (float) and "player" (bool) properties. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}
	data.GroundY = float64(data.Height)

	for _, og := range arenaMap.ObjectGroups {
		if og.Name == groundGroup && len(og.Objects) > 0 {
			data.GroundY = og.Objects[0].Y
		}
	}

	for _, og := range arenaMap.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			y := o.Y - data.GroundY
			if y > 0 {
				return nil, fmt.Errorf("%s: spawn %q at y=%.1f is below the ground line %.1f", tmxPath, o.Name, o.Y, data.GroundY)
			}
			data.Spawns = append(data.Spawns, Spawn{
				Position: fixed.Vec{X: fixed.FromFloat(o.X), Y: fixed.FromFloat(y)},
				Radius:   fixed.FromFloat(o.Properties.GetFloat("radius")),
				Player:   o.Properties.GetBool("player"),
			})
		}
	}

	// Left-to-right so entity order does not depend on editing history
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Position.X < data.Spawns[j].Position.X
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		data, err := LoadArena(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
