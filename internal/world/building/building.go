package building

import (
	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world/job"
)

// Unregistered ID здания, ещё не связанного с миром
const Unregistered int32 = -1

// Design подзапись качества постройки
type Design struct {
	Rough bool // Построено из необработанного камня
}

// Building здание на сетке мира
type Building struct {
	ID int32

	X1, Y1  int
	X2, Y2  int
	Z       int
	CenterX int
	CenterY int
	Room    Extents // Маска протяжённости (для комнат - границы комнаты)
	IsRoom  bool

	Type       Type
	Subtype    int
	CustomType int

	MatType        int16
	MatIndex       int32
	MaterialAmount int
	Race           int32
	BuildStage     int

	Parents  []int32 // ID комнат, внутри которых стоит здание
	Children []int32 // ID зданий внутри этой комнаты

	Jobs   []*job.Job
	Design *Design
	Detail Detail
}

// New создаёт незарегистрированное здание в одном тайле
func New(t Type, detail Detail, pos vec.Vec3) *Building {
	return &Building{
		ID:             Unregistered,
		X1:             pos.X,
		X2:             pos.X,
		CenterX:        pos.X,
		Y1:             pos.Y,
		Y2:             pos.Y,
		CenterY:        pos.Y,
		Z:              pos.Z,
		Type:           t,
		Subtype:        -1,
		CustomType:     -1,
		MatType:        -1,
		MatIndex:       -1,
		MaterialAmount: 1,
		Race:           -1,
		Detail:         detail,
	}
}

// Traits свойства вида здания
func (b *Building) Traits() Traits {
	t, _ := TraitsOf(b.Type)
	return t
}

// IsRegistered сообщает, что здание уже связано с миром
func (b *Building) IsRegistered() bool {
	return b.ID != Unregistered
}

func (b *Building) IsActual() bool           { return b.Traits().Actual }
func (b *Building) IsExtentShaped() bool     { return b.Traits().ExtentShaped }
func (b *Building) IsSettingOccupancy() bool { return b.Traits().SettingOccupancy }
func (b *Building) NeedsDesign() bool        { return b.Traits().NeedsDesign }

// IsComplete сообщает, что постройка дошла до последней стадии
func (b *Building) IsComplete() bool {
	return b.BuildStage >= b.Traits().MaxBuildStage
}

// Origin угол прямоугольника здания
func (b *Building) Origin() vec.Vec3 {
	return vec.Vec3{X: b.X1, Y: b.Y1, Z: b.Z}
}

// Size размер прямоугольника здания
func (b *Building) Size() vec.Vec2 {
	return vec.Vec2{X: b.X2 + 1 - b.X1, Y: b.Y2 + 1 - b.Y1}
}

// Center центральный тайл здания
func (b *Building) Center() vec.Vec3 {
	return vec.Vec3{X: b.CenterX, Y: b.CenterY, Z: b.Z}
}

// UsesExtents истина, если маска есть и вид здания её учитывает
func (b *Building) UsesExtents() bool {
	return b.Room.Present() && b.IsExtentShaped()
}

// ContainsTile проверяет, входит ли тайл в площадь здания с учётом маски
func (b *Building) ContainsTile(x, y, z int) bool {
	if z != b.Z || x < b.X1 || x > b.X2 || y < b.Y1 || y > b.Y2 {
		return false
	}
	if b.UsesExtents() {
		return b.Room.Includes(x, y)
	}
	return true
}

// CurrentJob работа постройки, если есть
func (b *Building) CurrentJob() *job.Job {
	if len(b.Jobs) == 0 {
		return nil
	}
	return b.Jobs[0]
}
