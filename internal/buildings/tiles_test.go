package buildings

import (
	"testing"

	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFreeTiles_OffMapFails(t *testing.T) {
	w := newTestWorld(t)
	pos := at(testMapWidth-2, 5)
	size := vec.Vec2{X: 4, Y: 1}

	before := testutil.ToFloat64(tileChecks.WithLabelValues(checkOffMap))

	assert.False(t, CheckFreeTiles(w, pos, size, nil, false, false))
	assert.False(t, CheckFreeTiles(w, pos, size, &building.Extents{}, true, false))
	assert.False(t, CheckFreeTiles(w, pos, size, &building.Extents{}, true, true))

	assert.Equal(t, before+3, testutil.ToFloat64(tileChecks.WithLabelValues(checkOffMap)))
}

func TestCheckFreeTiles_OccupiedWithoutCarving(t *testing.T) {
	w := newTestWorld(t)
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			w.Grid.Occupancy(at(x, y)).Building = building.OccPlanned
		}
	}

	ext := &building.Extents{}
	assert.False(t, CheckFreeTiles(w, at(2, 2), vec.Vec2{X: 3, Y: 3}, nil, false, false))
	assert.False(t, CheckFreeTiles(w, at(2, 2), vec.Vec2{X: 3, Y: 3}, ext, false, false))
	assert.False(t, ext.Present(), "без разрешения маска не создаётся")

	// Совместная занятость разрешена
	assert.True(t, CheckFreeTiles(w, at(2, 2), vec.Vec2{X: 3, Y: 3}, nil, false, true))
}

func TestCheckFreeTiles_CarvesSingleUsableTile(t *testing.T) {
	w := newTestWorld(t)
	w.Grid.FillRect(testZ, 2, 2, 4, 4, world.Wall)
	w.Grid.SetTileType(at(3, 3), world.Floor)

	ext := &building.Extents{}
	require.True(t, CheckFreeTiles(w, at(2, 2), vec.Vec2{X: 3, Y: 3}, ext, true, false))

	require.True(t, ext.Present())
	assert.Equal(t, 2, ext.X)
	assert.Equal(t, 2, ext.Y)
	assert.Equal(t, 3, ext.Width)
	assert.Equal(t, 3, ext.Height)
	assert.Equal(t, 1, ext.Count())
	assert.True(t, ext.Includes(3, 3))
}

func TestCheckFreeTiles_AllExcludedFails(t *testing.T) {
	w := newTestWorld(t)
	w.Grid.FillRect(testZ, 2, 2, 4, 4, world.Wall)

	ext := &building.Extents{}
	assert.False(t, CheckFreeTiles(w, at(2, 2), vec.Vec2{X: 3, Y: 3}, ext, true, false))
	require.True(t, ext.Present())
	assert.Equal(t, 0, ext.Count())
}

func TestCheckFreeTiles_PartialCarveIsKept(t *testing.T) {
	w := newTestWorld(t)
	w.Grid.SetTileType(at(testMapWidth-3, 0), world.Wall)

	ext := &building.Extents{}
	assert.False(t, CheckFreeTiles(w, at(testMapWidth-3, 0), vec.Vec2{X: 4, Y: 1}, ext, true, false))

	// Тайл, вырезанный до выхода за карту, остаётся вырезанным
	require.True(t, ext.Present())
	assert.False(t, ext.Includes(testMapWidth-3, 0))
	assert.True(t, ext.Includes(testMapWidth-2, 0))
}

func TestCheckFreeTiles_ExistingMaskSkipsTiles(t *testing.T) {
	w := newTestWorld(t)
	w.Grid.SetTileType(at(6, 6), world.Wall)

	ext := &building.Extents{}
	ext.Allocate(5, 5, 3, 3)
	ext.Exclude(6, 6)

	assert.True(t, CheckFreeTiles(w, at(5, 5), vec.Vec2{X: 3, Y: 3}, ext, false, false))
	assert.Equal(t, 8, ext.Count())
}

func TestCountExtentTiles(t *testing.T) {
	assert.Equal(t, 25, CountExtentTiles(&building.Extents{}, 25))
	assert.Equal(t, 4, CountExtentTiles(nil, 4))

	ext := &building.Extents{}
	ext.Allocate(0, 0, 2, 2)
	ext.Exclude(1, 1)
	assert.Equal(t, 3, CountExtentTiles(ext, 25))
}

func TestHasSupport(t *testing.T) {
	w := newTestWorld(t)
	const z = 3
	// Одиночная площадка в открытом пространстве
	w.Grid.FillRect(z, 10, 10, 10, 10, world.Floor)
	pos := vec.Vec3{X: 10, Y: 10, Z: z}
	one := vec.Vec2{X: 1, Y: 1}

	assert.False(t, HasSupport(w, pos, one))

	// Диагональ не в счёт
	w.Grid.SetTileType(vec.Vec3{X: 11, Y: 11, Z: z}, world.Wall)
	assert.False(t, HasSupport(w, pos, one))

	w.Grid.SetTileType(vec.Vec3{X: 11, Y: 10, Z: z}, world.Wall)
	assert.True(t, HasSupport(w, pos, one))
}

func TestHasSupport_SkipsOffMapTiles(t *testing.T) {
	w := newTestWorld(t)
	const z = 4
	w.Grid.FillRect(z, 0, 0, 1, 0, world.OpenSpace)

	assert.False(t, HasSupport(w, vec.Vec3{X: 0, Y: 0, Z: z}, vec.Vec2{X: 2, Y: 1}))

	// Опора на уровне с полом
	assert.True(t, HasSupport(w, at(0, 0), vec.Vec2{X: 2, Y: 1}))
}
