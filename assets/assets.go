package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/samurai/shared/leveldata"
)

var (
	//go:embed all:arenas
	assetFS embed.FS
)

const arenaDir = "arenas"

// DefaultArena is loaded when no arena is named.
const DefaultArena = "dojo"

// FS exposes the embedded arena files.
func FS() fs.FS { return assetFS }

type ArenaLoader struct {
	arenas map[string]*leveldata.ArenaData
	names  []string
}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{}
}

// MustLoadArenas parses every embedded arena once.
func (l *ArenaLoader) MustLoadArenas() []string {
	if l.arenas != nil {
		return l.names
	}
	arenas, names, err := leveldata.LoadAllArenas(assetFS, arenaDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load arenas: %v", err))
	}
	l.arenas, l.names = arenas, names
	return names
}

// Arena returns an embedded arena by name.
func (l *ArenaLoader) Arena(name string) (*leveldata.ArenaData, error) {
	l.MustLoadArenas()
	a, ok := l.arenas[name]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q (have %v)", name, l.names)
	}
	return a, nil
}
