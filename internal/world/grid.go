package world

import (
	"sort"

	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world/building"
)

// Grid сетка мира, разбитая на блоки 16x16
type Grid struct {
	blocks map[vec.Vec3]*MapBlock
}

// NewGrid создаёт пустую сетку
func NewGrid() *Grid {
	return &Grid{blocks: make(map[vec.Vec3]*MapBlock)}
}

// AddBlock добавляет или заменяет блок карты
func (g *Grid) AddBlock(b *MapBlock) {
	g.blocks[b.Pos] = b
}

// EnsureBlock возвращает блок по его координатам, создавая при необходимости
func (g *Grid) EnsureBlock(chunk vec.Vec3) *MapBlock {
	if b, ok := g.blocks[chunk]; ok {
		return b
	}
	b := NewMapBlock(chunk)
	g.blocks[chunk] = b
	return b
}

// TileBlock возвращает блок, содержащий тайл, или nil, если данных нет
func (g *Grid) TileBlock(pos vec.Vec3) *MapBlock {
	return g.blocks[pos.ToChunkCoords()]
}

// Blocks возвращает все блоки в детерминированном порядке
func (g *Grid) Blocks() []*MapBlock {
	out := make([]*MapBlock, 0, len(g.blocks))
	for _, b := range g.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Pos, out[j].Pos
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// BlockCount количество загруженных блоков
func (g *Grid) BlockCount() int {
	return len(g.blocks)
}

// TileType возвращает класс рельефа; false, если тайл вне карты
func (g *Grid) TileType(pos vec.Vec3) (TileType, bool) {
	b := g.TileBlock(pos)
	if b == nil {
		return TileVoid, false
	}
	l := pos.ToVec2().LocalInChunk()
	return b.TileType[l.X][l.Y], true
}

// SetTileType меняет класс рельефа; false, если тайл вне карты
func (g *Grid) SetTileType(pos vec.Vec3, tt TileType) bool {
	b := g.TileBlock(pos)
	if b == nil {
		return false
	}
	l := pos.ToVec2().LocalInChunk()
	b.TileType[l.X][l.Y] = tt
	return true
}

// Occupancy возвращает занятость тайла для изменения или nil вне карты
func (g *Grid) Occupancy(pos vec.Vec3) *Occupancy {
	b := g.TileBlock(pos)
	if b == nil {
		return nil
	}
	l := pos.ToVec2().LocalInChunk()
	return &b.Occupancy[l.X][l.Y]
}

// Designation возвращает пометки тайла для изменения или nil вне карты
func (g *Grid) Designation(pos vec.Vec3) *Designation {
	b := g.TileBlock(pos)
	if b == nil {
		return nil
	}
	l := pos.ToVec2().LocalInChunk()
	return &b.Designation[l.X][l.Y]
}

// UpdateOccupancy выставляет занятость тайла, которую даёт завершённое здание данного вида
func (g *Grid) UpdateOccupancy(pos vec.Vec3, t building.Type) {
	occ := g.Occupancy(pos)
	if occ == nil {
		return
	}
	traits, ok := building.TraitsOf(t)
	if !ok {
		return
	}
	occ.Building = traits.CompleteOcc
}

// FillRect заполняет прямоугольник на уровне z, создавая недостающие блоки
func (g *Grid) FillRect(z, x1, y1, x2, y2 int, tt TileType) {
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			pos := vec.Vec3{X: x, Y: y, Z: z}
			g.EnsureBlock(pos.ToChunkCoords())
			g.SetTileType(pos, tt)
		}
	}
}
