package buildings

import (
	"testing"

	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSize_Preconditions(t *testing.T) {
	w := newTestWorld(t)

	_, err := SetSize(w, nil, vec.Vec2{X: 1, Y: 1}, 0)
	assert.ErrorIs(t, err, ErrNilBuilding)

	b := newPlaced(t, w, at(2, 2), building.Stockpile, -1, vec.Vec2{X: 2, Y: 2})
	require.NoError(t, RegisterBuilding(w, b))

	ok, err := SetSize(w, b, vec.Vec2{X: 6, Y: 6}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, ok)
	assert.Equal(t, vec.Vec2{X: 2, Y: 2}, b.Size(), "геометрия зарегистрированного здания не меняется")
	assert.Equal(t, at(2, 2), b.Origin())
}

func TestSetSize_FixedWorkshop(t *testing.T) {
	w := newTestWorld(t)
	b, err := AllocInstance(w, at(5, 5), building.Workshop, building.WorkshopMasons, -1)
	require.NoError(t, err)

	ok, err := SetSize(w, b, vec.Vec2{X: 1, Y: 1}, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 7, b.X2)
	assert.Equal(t, 7, b.Y2)
	assert.Equal(t, at(6, 6), b.Center())
	assert.Equal(t, 9/4+1, b.MaterialAmount)
	assert.False(t, b.Room.Present())
}

func TestSetSize_MaterialAmount(t *testing.T) {
	w := newTestWorld(t)

	full := newPlaced(t, w, at(1, 1), building.Stockpile, -1, vec.Vec2{X: 5, Y: 5})
	assert.Equal(t, 7, full.MaterialAmount)
	assert.False(t, full.Room.Present())

	// Маска оставляет 3x3 из 5x5
	w.Grid.FillRect(testZ, 10, 10, 14, 14, world.Wall)
	w.Grid.FillRect(testZ, 11, 11, 13, 13, world.Floor)
	masked := newPlaced(t, w, at(10, 10), building.Stockpile, -1, vec.Vec2{X: 5, Y: 5})
	require.True(t, masked.Room.Present())
	assert.Equal(t, 9, masked.Room.Count())
	assert.Equal(t, 3, masked.MaterialAmount)
}

func TestSetSize_ConstructionKeepsMaterialAmount(t *testing.T) {
	w := newTestWorld(t)
	b, err := AllocInstance(w, at(3, 3), building.Construction, -1, -1)
	require.NoError(t, err)
	b.MaterialAmount = 42

	ok, err := SetSize(w, b, vec.Vec2{X: 3, Y: 3}, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, b.MaterialAmount)
}

func TestSetSize_Orientation(t *testing.T) {
	w := newTestWorld(t)

	wheel, err := AllocInstance(w, at(2, 2), building.WaterWheel, -1, -1)
	require.NoError(t, err)
	_, err = SetSize(w, wheel, vec.Vec2{X: 1, Y: 1}, 1)
	require.NoError(t, err)
	assert.True(t, wheel.Detail.(*building.WaterWheelDetail).IsVertical)
	assert.Equal(t, vec.Vec2{X: 1, Y: 3}, wheel.Size())

	axle, err := AllocInstance(w, at(2, 2), building.AxleHorizontal, -1, -1)
	require.NoError(t, err)
	_, err = SetSize(w, axle, vec.Vec2{X: 6, Y: 6}, 0)
	require.NoError(t, err)
	assert.False(t, axle.Detail.(*building.AxleHorizontalDetail).IsVertical)
	assert.Equal(t, vec.Vec2{X: 6, Y: 1}, axle.Size())
	assert.Equal(t, at(5, 2), axle.Center())

	pump, err := AllocInstance(w, at(2, 2), building.ScrewPump, -1, -1)
	require.NoError(t, err)
	_, err = SetSize(w, pump, vec.Vec2{X: 1, Y: 1}, int(building.FromSouth))
	require.NoError(t, err)
	assert.Equal(t, building.FromSouth, pump.Detail.(*building.ScrewPumpDetail).Direction)
	assert.Equal(t, at(2, 3), pump.Center())
}

func TestSetSize_BridgeSupport(t *testing.T) {
	w := newTestWorld(t)

	grounded, err := AllocInstance(w, at(4, 4), building.Bridge, -1, -1)
	require.NoError(t, err)
	ok, err := SetSize(w, grounded, vec.Vec2{X: 3, Y: 1}, int(building.BridgeRetracting))
	require.NoError(t, err)
	assert.True(t, ok)
	d := grounded.Detail.(*building.BridgeDetail)
	assert.True(t, d.GateFlags.HasSupport)
	assert.Equal(t, building.BridgeRetracting, d.Direction)

	// Мост над пустотой: опоры нет, а тайлы непригодны
	const z = 5
	w.Grid.EnsureBlock(vec.Vec3{X: 0, Y: 0, Z: z})
	hanging, err := AllocInstance(w, vec.Vec3{X: 4, Y: 4, Z: z}, building.Bridge, -1, -1)
	require.NoError(t, err)
	ok, err = SetSize(w, hanging, vec.Vec2{X: 3, Y: 1}, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	d = hanging.Detail.(*building.BridgeDetail)
	assert.False(t, d.GateFlags.HasSupport)
	assert.Equal(t, building.BridgeDirection(2), d.Direction)
}

func TestSetSize_BlockedStillAppliesGeometry(t *testing.T) {
	w := newTestWorld(t)
	w.Grid.FillRect(testZ, 20, 20, 22, 22, world.Wall)

	b, err := AllocInstance(w, at(20, 20), building.Workshop, building.WorkshopCarpenters, -1)
	require.NoError(t, err)
	ok, err := SetSize(w, b, vec.Vec2{}, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, vec.Vec2{X: 3, Y: 3}, b.Size())

	// Повторная настройка отбрасывает прежнюю маску
	w.Grid.FillRect(testZ, 20, 20, 22, 22, world.Floor)
	ok, err = SetSize(w, b, vec.Vec2{}, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetSize(t *testing.T) {
	w := newTestWorld(t)
	b := newPlaced(t, w, at(3, 4), building.FarmPlot, -1, vec.Vec2{X: 4, Y: 2})

	pos, size, err := GetSize(b)
	require.NoError(t, err)
	assert.Equal(t, at(3, 4), pos)
	assert.Equal(t, vec.Vec2{X: 4, Y: 2}, size)

	_, _, err = GetSize(nil)
	assert.ErrorIs(t, err, ErrNilBuilding)
}
