package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/samurai/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0">
`

func tmx(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(header + body + "</map>\n")}
}

const ringBody = ` <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="300" width="640" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="2" name="rock" x="400" y="300">
   <properties><property name="radius" type="float" value="24.5"/></properties>
   <point/>
  </object>
  <object id="3" name="hero" x="100" y="300">
   <properties><property name="player" type="bool" value="true"/></properties>
   <point/>
  </object>
  <object id="4" name="kite" x="250" y="180">
   <point/>
  </object>
 </objectgroup>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"arenas/ring.tmx": tmx(ringBody)}

	a, err := LoadArena(fsys, "arenas/ring.tmx")
	require.NoError(t, err)

	assert.Equal(t, "ring", a.Name)
	assert.Equal(t, 640, a.Width)
	assert.Equal(t, 320, a.Height)
	assert.Equal(t, 300.0, a.GroundY)

	require.Len(t, a.Spawns, 3)
	assert.Equal(t, Spawn{Position: fixed.V(100, 0), Player: true}, a.Spawns[0])
	assert.Equal(t, Spawn{Position: fixed.V(250, -120)}, a.Spawns[1])
	assert.Equal(t, Spawn{Position: fixed.V(400, 0), Radius: fixed.FromFloat(24.5)}, a.Spawns[2])
}

func TestLoadArenaWithoutGroundUsesMapBottom(t *testing.T) {
	fsys := fstest.MapFS{"flat.tmx": tmx(` <objectgroup id="1" name="Spawns">
  <object id="1" x="10" y="300"><point/></object>
 </objectgroup>
`)}

	a, err := LoadArena(fsys, "flat.tmx")
	require.NoError(t, err)
	assert.Equal(t, 320.0, a.GroundY)
	assert.Equal(t, fixed.V(10, -20), a.Spawns[0].Position)
}

func TestLoadArenaRejectsSpawnBelowGround(t *testing.T) {
	fsys := fstest.MapFS{"pit.tmx": tmx(` <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="200" width="640" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="2" name="mole" x="10" y="250"><point/></object>
 </objectgroup>
`)}

	_, err := LoadArena(fsys, "pit.tmx")
	assert.ErrorContains(t, err, "below the ground line")
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "nope.tmx")
	assert.ErrorContains(t, err, "load TMX nope.tmx")
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/ring.tmx":  tmx(ringBody),
		"arenas/empty.tmx": tmx(""),
		"arenas/notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	arenas, names, err := LoadAllArenas(fsys, "arenas")
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "ring"}, names)
	assert.Len(t, arenas["ring"].Spawns, 3)
	assert.Empty(t, arenas["empty"].Spawns)

	_, _, err = LoadAllArenas(fsys, "levels")
	assert.ErrorContains(t, err, "no .tmx files")
}
