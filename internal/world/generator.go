package world

import (
	"math/rand"

	"github.com/annel0/buildcore/internal/logging"
	"github.com/annel0/buildcore/internal/util"
	"github.com/annel0/buildcore/internal/vec"
)

// Generator строит сетку мира по шуму Перлина: камень ниже поверхности,
// поверхность из травы с редкими деревьями и валунами, выше - открытое пространство.
type Generator struct {
	Seed        int64
	BlocksX     int
	BlocksY     int
	ZLevels     int
	NoiseScale  float64 // Сглаженность рельефа
	Relief      int     // Перепад высот поверхности в уровнях
	TreeDensity float64 // Доля деревьев на поверхности
	RockDensity float64 // Доля валунов на поверхности

	noise *util.Noise
}

// NewGenerator создаёт генератор сетки заданного размера в блоках
func NewGenerator(seed int64, blocksX, blocksY, zLevels int) *Generator {
	return &Generator{
		Seed:        seed,
		BlocksX:     blocksX,
		BlocksY:     blocksY,
		ZLevels:     zLevels,
		NoiseScale:  0.05,
		Relief:      2,
		TreeDensity: 0.03,
		RockDensity: 0.01,
		noise:       util.NewNoise(seed),
	}
}

// SurfaceZ уровень поверхности в колонке (x, y)
func (g *Generator) SurfaceZ(x, y int) int {
	base := g.ZLevels / 2
	h := g.noise.At(float64(x)*g.NoiseScale, float64(y)*g.NoiseScale)
	z := base + int(h*float64(g.Relief+1)) - g.Relief/2
	if z < 1 {
		z = 1
	}
	if z > g.ZLevels-2 {
		z = g.ZLevels - 2
	}
	return z
}

// Generate создаёт все блоки сетки
func (g *Generator) Generate() *Grid {
	grid := NewGrid()
	for bx := 0; bx < g.BlocksX; bx++ {
		for by := 0; by < g.BlocksY; by++ {
			for z := 0; z < g.ZLevels; z++ {
				grid.AddBlock(NewMapBlock(vec.Vec3{X: bx, Y: by, Z: z}))
			}
			g.generateColumn(grid, bx, by)
		}
	}
	logging.GetWorldLogger().Debug("сгенерировано %d блоков (seed=%d)", grid.BlockCount(), g.Seed)
	return grid
}

func (g *Generator) generateColumn(grid *Grid, bx, by int) {
	// Локальный генератор случайных чисел для детерминированности колонки
	colSeed := g.Seed + int64(bx*31) + int64(by*17)
	rng := rand.New(rand.NewSource(colSeed))

	for lx := 0; lx < vec.ChunkSize; lx++ {
		for ly := 0; ly < vec.ChunkSize; ly++ {
			x := bx<<4 + lx
			y := by<<4 + ly
			surface := g.SurfaceZ(x, y)

			for z := 0; z < g.ZLevels; z++ {
				tt := OpenSpace
				switch {
				case z < surface:
					tt = Wall
				case z == surface:
					tt = g.surfaceTile(rng)
				}
				grid.SetTileType(vec.Vec3{X: x, Y: y, Z: z}, tt)
			}
		}
	}
}

func (g *Generator) surfaceTile(rng *rand.Rand) TileType {
	r := rng.Float64()
	switch {
	case r < g.TreeDensity:
		return Tree
	case r < g.TreeDensity+g.RockDensity:
		return Boulder
	default:
		return Grass
	}
}
