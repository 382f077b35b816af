package world

import (
	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world/building"
)

// DigDesignation пометка для копания
type DigDesignation uint8

const (
	DigNo DigDesignation = iota
	DigDefault
	DigUpDownStair
	DigChannel
	DigRamp
	DigDownStair
	DigUpStair
)

// Designation пометки игрока на тайле
type Designation struct {
	Pile   bool // Тайл принадлежит складу
	Dig    DigDesignation
	Hidden bool
}

// Occupancy занятость тайла
type Occupancy struct {
	Building building.TileOcc
	Unit     bool
	Item     bool
}

// MapBlock участок карты 16x16 тайлов на одном Z-уровне
type MapBlock struct {
	Pos         vec.Vec3 // Координаты блока: (x>>4, y>>4, z)
	TileType    [vec.ChunkSize][vec.ChunkSize]TileType
	Occupancy   [vec.ChunkSize][vec.ChunkSize]Occupancy
	Designation [vec.ChunkSize][vec.ChunkSize]Designation
}

// NewMapBlock создаёт блок, заполненный открытым пространством
func NewMapBlock(pos vec.Vec3) *MapBlock {
	b := &MapBlock{Pos: pos}
	b.Fill(OpenSpace)
	return b
}

// Fill заполняет весь блок одним классом рельефа
func (b *MapBlock) Fill(tt TileType) {
	for x := 0; x < vec.ChunkSize; x++ {
		for y := 0; y < vec.ChunkSize; y++ {
			b.TileType[x][y] = tt
		}
	}
}

// Origin глобальные координаты левого верхнего тайла блока
func (b *MapBlock) Origin() vec.Vec3 {
	return vec.Vec3{X: b.Pos.X << 4, Y: b.Pos.Y << 4, Z: b.Pos.Z}
}
