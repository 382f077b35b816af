package vec

// ChunkSize сторона квадратного блока карты в тайлах
const ChunkSize = 16

// Vec2 представляет 2D координаты или размер прямоугольника
type Vec2 struct {
	X, Y int
}

// ToChunkCoords преобразует глобальные координаты в координаты блока карты
func (v Vec2) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> 4, Y: v.Y >> 4} // Деление на 16
}

// LocalInChunk возвращает локальные координаты внутри блока карты
func (v Vec2) LocalInChunk() Vec2 {
	return Vec2{X: v.X & 0xF, Y: v.Y & 0xF} // Модуль 16
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Div делит обе компоненты нацело
func (v Vec2) Div(n int) Vec2 {
	return Vec2{X: v.X / n, Y: v.Y / n}
}

// Area возвращает площадь прямоугольника размера v
func (v Vec2) Area() int {
	return v.X * v.Y
}
