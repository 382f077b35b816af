package buildings

import (
	"fmt"

	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
)

// GetSize возвращает угол и размер прямоугольника здания
func GetSize(b *building.Building) (vec.Vec3, vec.Vec2, error) {
	if b == nil {
		return vec.Vec3{}, vec.Vec2{}, ErrNilBuilding
	}
	return b.Origin(), b.Size(), nil
}

// SetSize задаёт размер и ориентацию ещё не зарегистрированного здания.
// Угол (X1, Y1) сохраняется. Возвращает результат проверки тайлов; здание
// изменяется и при неудачной проверке, его можно перенастроить ещё раз.
func SetSize(w *world.World, b *building.Building, size vec.Vec2, direction int) (bool, error) {
	if b == nil {
		return false, ErrNilBuilding
	}
	if b.IsRegistered() {
		return false, fmt.Errorf("%w: building %d is already registered", ErrInvalidArgument, b.ID)
	}
	if w == nil {
		return false, ErrWorldNotReady
	}

	b.Room.Release()

	fp, _ := ResolveFootprint(w.Raws, Key{
		Type:      b.Type,
		Subtype:   b.Subtype,
		Custom:    b.CustomType,
		Direction: direction,
	}, size)

	b.X2 = b.X1 + fp.Size.X - 1
	b.Y2 = b.Y1 + fp.Size.Y - 1
	b.CenterX = b.X1 + fp.Center.X
	b.CenterY = b.Y1 + fp.Center.Y

	switch d := b.Detail.(type) {
	case *building.WaterWheelDetail:
		d.IsVertical = direction != 0
	case *building.AxleHorizontalDetail:
		d.IsVertical = direction != 0
	case *building.ScrewPumpDetail:
		d.Direction = building.ScrewPumpDirection(direction)
	case *building.BridgeDetail:
		d.GateFlags.HasSupport = HasSupport(w, b.Origin(), fp.Size)
		d.Direction = building.BridgeDirection(direction)
	}

	ok := checkBuildingTiles(w, b, true)

	// Количество считается после проверки, чтобы учесть вырезанную маску
	if b.Type != building.Construction {
		b.MaterialAmount = computeMaterialAmount(b)
	}

	return ok, nil
}

// computeMaterialAmount число единиц материала: тайлы площади с учётом маски / 4 + 1
func computeMaterialAmount(b *building.Building) int {
	cnt := b.Size().Area()
	if b.UsesExtents() {
		cnt = CountExtentTiles(&b.Room, cnt)
	}
	return cnt/4 + 1
}
