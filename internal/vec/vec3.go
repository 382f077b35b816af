package vec

// Vec3 представляет позицию тайла: X, Y на уровне и Z-уровень
type Vec3 struct {
	X int
	Y int
	Z int
}

// ToVec2 преобразует Vec3 в Vec2, игнорируя координату Z
func (v Vec3) ToVec2() Vec2 {
	return Vec2{
		X: v.X,
		Y: v.Y,
	}
}

// FromVec2 создает Vec3 из Vec2 на заданном уровне
func FromVec2(v Vec2, z int) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Offset сдвигает позицию в пределах того же уровня
func (v Vec3) Offset(dx, dy int) Vec3 {
	return Vec3{X: v.X + dx, Y: v.Y + dy, Z: v.Z}
}

// ToChunkCoords возвращает координаты блока карты, содержащего тайл
func (v Vec3) ToChunkCoords() Vec3 {
	return Vec3{X: v.X >> 4, Y: v.Y >> 4, Z: v.Z}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}
