package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_ChunkMath(t *testing.T) {
	v := Vec2{X: 35, Y: 17}
	assert.Equal(t, Vec2{X: 2, Y: 1}, v.ToChunkCoords())
	assert.Equal(t, Vec2{X: 3, Y: 1}, v.LocalInChunk())

	neg := Vec2{X: -1, Y: -16}
	assert.Equal(t, Vec2{X: -1, Y: -1}, neg.ToChunkCoords(), "отрицательные координаты уходят в соседний блок")
	assert.Equal(t, Vec2{X: 15, Y: 0}, neg.LocalInChunk())
}

func TestVec2_Div(t *testing.T) {
	assert.Equal(t, Vec2{X: 2, Y: 0}, Vec2{X: 5, Y: 1}.Div(2))
	assert.Equal(t, 15, Vec2{X: 5, Y: 3}.Area())
}

func TestVec3_Offset(t *testing.T) {
	p := Vec3{X: 10, Y: 10, Z: 3}
	assert.Equal(t, Vec3{X: 9, Y: 12, Z: 3}, p.Offset(-1, 2))
	assert.Equal(t, Vec3{X: 0, Y: 0, Z: 3}, p.ToChunkCoords())
	assert.True(t, FromVec2(Vec2{X: 10, Y: 10}, 3).Equals(p))
}
