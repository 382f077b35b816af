package building

import (
	"testing"

	"github.com/annel0/buildcore/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTypes_HaveTraitsAndConstructors(t *testing.T) {
	for _, bt := range AllTypes() {
		traits, ok := TraitsOf(bt)
		require.True(t, ok, "нет свойств для %d", bt)
		assert.NotEmpty(t, traits.Name, "пустое имя класса для %d", bt)
		assert.NotEmpty(t, traits.Categories, "нет категорий для %s", traits.Name)

		_, ok = Constructor(bt)
		assert.True(t, ok, "нет конструктора для %s", traits.Name)

		if traits.Actual {
			assert.Equal(t, 1, traits.MaxBuildStage, "%s", traits.Name)
		}
	}

	_, ok := Constructor(TypeNone)
	assert.False(t, ok)
	_, ok = Constructor(typeCount)
	assert.False(t, ok)
	assert.Equal(t, "NONE", Type(500).String())
}

func TestNew_SingleTileUnregistered(t *testing.T) {
	b := New(Well, &WellDetail{}, vec.Vec3{X: 5, Y: 6, Z: 7})

	assert.False(t, b.IsRegistered())
	assert.Equal(t, vec.Vec3{X: 5, Y: 6, Z: 7}, b.Origin())
	assert.Equal(t, vec.Vec2{X: 1, Y: 1}, b.Size())
	assert.Equal(t, b.Origin(), b.Center())
	assert.Equal(t, 1, b.MaterialAmount)
	assert.Equal(t, int16(-1), b.MatType)
	assert.Nil(t, b.CurrentJob())
}

func TestExtents(t *testing.T) {
	var e Extents
	assert.False(t, e.Present())
	assert.False(t, e.Includes(0, 0))
	assert.False(t, e.Exclude(0, 0))

	e.Allocate(10, 20, 3, 2)
	assert.Equal(t, 6, e.Count())
	assert.True(t, e.Includes(12, 21))
	assert.False(t, e.Covers(13, 21))

	assert.True(t, e.Exclude(11, 20))
	assert.False(t, e.Includes(11, 20))
	assert.True(t, e.Covers(11, 20))
	assert.Equal(t, 5, e.Count())

	e.Release()
	assert.False(t, e.Present())
}

func TestContainsTile_RespectsExtentsOnlyForExtentShaped(t *testing.T) {
	pile := New(Stockpile, nil, vec.Vec3{X: 0, Y: 0, Z: 1})
	pile.X2, pile.Y2 = 2, 2
	pile.Room.Allocate(0, 0, 3, 3)
	pile.Room.Exclude(1, 1)

	assert.True(t, pile.ContainsTile(0, 0, 1))
	assert.False(t, pile.ContainsTile(1, 1, 1))
	assert.False(t, pile.ContainsTile(0, 0, 2))

	bed := New(Bed, nil, vec.Vec3{X: 1, Y: 1, Z: 1})
	bed.Room.Allocate(0, 0, 3, 3)
	bed.Room.Exclude(1, 1)
	assert.True(t, bed.ContainsTile(1, 1, 1), "маска комнаты не урезает саму кровать")
}
