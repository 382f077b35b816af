package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world/building"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_BuildingIDSource(t *testing.T) {
	w := New(nil, nil, Options{PlayerRace: 465})

	assert.NotNil(t, w.Grid, "пустая сетка создаётся автоматически")
	assert.False(t, w.CanBuild())
	_, ok := w.NextBuildingID()
	assert.False(t, ok, "без источника ID строить нельзя")

	w.EnableBuilding(100)
	require.True(t, w.CanBuild())

	peek, _ := w.PeekBuildingID()
	assert.Equal(t, int32(100), peek)

	first, _ := w.NextBuildingID()
	second, _ := w.NextBuildingID()
	assert.Equal(t, int32(100), first)
	assert.Equal(t, int32(101), second)
}

func TestTileTypeTraits(t *testing.T) {
	assert.True(t, HighPassable(Floor))
	assert.True(t, HighPassable(Grass))
	assert.False(t, HighPassable(Wall))
	assert.False(t, HighPassable(OpenSpace))
	assert.False(t, HighPassable(TileType(200)))

	assert.True(t, IsOpenTerrain(OpenSpace))
	assert.True(t, IsOpenTerrain(RampTop))
	assert.False(t, IsOpenTerrain(Floor))
	assert.Equal(t, "Unknown", TileType(200).String())
}

func TestGrid_TileAccess(t *testing.T) {
	g := NewGrid()
	g.FillRect(2, 14, 14, 17, 17, Floor)

	assert.Equal(t, 4, g.BlockCount(), "прямоугольник пересекает четыре блока")

	tt, ok := g.TileType(vec.Vec3{X: 16, Y: 15, Z: 2})
	require.True(t, ok)
	assert.Equal(t, Floor, tt)

	tt, ok = g.TileType(vec.Vec3{X: 0, Y: 0, Z: 2})
	require.True(t, ok)
	assert.Equal(t, OpenSpace, tt, "остальная часть блока - открытое пространство")

	_, ok = g.TileType(vec.Vec3{X: 16, Y: 15, Z: 3})
	assert.False(t, ok, "на другом уровне данных нет")
	assert.Nil(t, g.Occupancy(vec.Vec3{X: 100, Y: 100, Z: 2}))
	assert.Nil(t, g.Designation(vec.Vec3{X: 100, Y: 100, Z: 2}))

	pos := vec.Vec3{X: 15, Y: 16, Z: 2}
	g.Designation(pos).Pile = true
	g.UpdateOccupancy(pos, building.Well)
	assert.True(t, g.Designation(pos).Pile)
	assert.Equal(t, building.OccWell, g.Occupancy(pos).Building)

	blocks := g.Blocks()
	require.Len(t, blocks, 4)
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 2}, blocks[0].Pos)
	assert.Equal(t, vec.Vec3{X: 16, Y: 16, Z: 2}, blocks[3].Origin())
}

func TestRaws_ParseAndLookup(t *testing.T) {
	data := []byte(`
buildings:
  - id: 7
    code: SOAP_MAKER
    kind: workshop
    dim_x: 3
    dim_y: 2
    workloc_x: 1
    workloc_y: 1
inorganics:
  - id: IRON
  - id: COPPER
  - id: SILVER
`)
	r, err := ParseRaws(data)
	require.NoError(t, err)

	def, ok := r.FindBuildingDef(7)
	require.True(t, ok)
	assert.Equal(t, "SOAP_MAKER", def.Code)
	assert.Equal(t, 3, def.DimX)
	assert.Equal(t, 2, def.DimY)

	_, ok = r.FindBuildingDef(8)
	assert.False(t, ok)
	_, ok = r.FindBuildingDef(-1)
	assert.False(t, ok)
	assert.Equal(t, 3, r.InorganicCount())

	var nilRaws *Raws
	_, ok = nilRaws.FindBuildingDef(7)
	assert.False(t, ok)
	assert.Equal(t, 0, nilRaws.InorganicCount())
}

func TestRaws_Validation(t *testing.T) {
	_, err := ParseRaws([]byte("buildings:\n  - {id: 1, code: A, dim_x: 0, dim_y: 2}\n"))
	assert.Error(t, err, "нулевой размер недопустим")

	_, err = ParseRaws([]byte("buildings:\n  - {id: 1, code: A, dim_x: 1, dim_y: 1}\n  - {id: 1, code: B, dim_x: 1, dim_y: 1}\n"))
	assert.Error(t, err, "повторный id недопустим")

	_, err = NewRaws([]*BuildingDef{nil}, nil)
	assert.Error(t, err)
}

func TestLoadRaws_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raws.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buildings:\n  - {id: 2, code: KILN2, kind: furnace, dim_x: 2, dim_y: 2}\n"), 0644))

	r, err := LoadRaws(path)
	require.NoError(t, err)
	_, ok := r.FindBuildingDef(2)
	assert.True(t, ok)

	_, err = LoadRaws(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRegistry_Categorize(t *testing.T) {
	r := NewRegistry()

	bed := building.New(building.Bed, nil, vec.Vec3{})
	bed.ID = 1
	r.Append(bed)
	r.Categorize(bed, true)

	pile := building.New(building.Stockpile, nil, vec.Vec3{})
	pile.ID = 2
	r.Append(pile)
	r.Categorize(pile, true)

	chair := building.New(building.Chair, nil, vec.Vec3{})
	chair.ID = 3
	r.Append(chair)
	r.Categorize(chair, false)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []*building.Building{bed}, r.Other(building.OtherAnyFree))
	assert.Equal(t, []*building.Building{pile}, r.Other(building.OtherStockpile))
	assert.ElementsMatch(t, []*building.Building{bed, chair}, r.Other(building.OtherFurniture))
	assert.Same(t, pile, r.Find(2))
	assert.True(t, r.Contains(chair))

	at, ok := r.At(0)
	assert.True(t, ok)
	assert.Same(t, bed, at)
	_, ok = r.At(3)
	assert.False(t, ok)
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(7, 2, 1, 6).Generate()
	b := NewGenerator(7, 2, 1, 6).Generate()

	assert.Equal(t, 2*1*6, a.BlockCount())

	gen := NewGenerator(7, 2, 1, 6)
	for x := 0; x < 32; x += 5 {
		for y := 0; y < 16; y += 3 {
			surface := gen.SurfaceZ(x, y)
			assert.GreaterOrEqual(t, surface, 1)
			assert.LessOrEqual(t, surface, 4)

			below, _ := a.TileType(vec.Vec3{X: x, Y: y, Z: surface - 1})
			above, _ := a.TileType(vec.Vec3{X: x, Y: y, Z: surface + 1})
			top, _ := a.TileType(vec.Vec3{X: x, Y: y, Z: surface})
			other, _ := b.TileType(vec.Vec3{X: x, Y: y, Z: surface})

			assert.Equal(t, Wall, below)
			assert.Equal(t, OpenSpace, above)
			assert.Contains(t, []TileType{Grass, Tree, Boulder}, top)
			assert.Equal(t, top, other)
		}
	}
}
