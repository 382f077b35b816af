package buildings

import (
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
)

// BuildingInfo снимок основных полей зарегистрированного здания
type BuildingInfo struct {
	X1, Y1     int
	X2, Y2     int
	Z          int
	MatType    int16
	MatIndex   int32
	Type       building.Type
	Subtype    int
	CustomType int
	Origin     *building.Building
}

// NumBuildings количество зарегистрированных зданий
func NumBuildings(w *world.World) int {
	return w.Buildings.Len()
}

// Read снимок здания по индексу в реестре
func Read(w *world.World, index int) (BuildingInfo, bool) {
	b, ok := w.Buildings.At(index)
	if !ok {
		return BuildingInfo{}, false
	}
	return BuildingInfo{
		X1:         b.X1,
		Y1:         b.Y1,
		X2:         b.X2,
		Y2:         b.Y2,
		Z:          b.Z,
		MatType:    b.MatType,
		MatIndex:   b.MatIndex,
		Type:       b.Type,
		Subtype:    b.Subtype,
		CustomType: b.CustomType,
		Origin:     b,
	}, true
}

// CustomWorkshopTypes коды пользовательских мастерских и печей по их ID
func CustomWorkshopTypes(w *world.World) map[int32]string {
	out := make(map[int32]string)
	if w.Raws == nil {
		return out
	}
	for _, def := range w.Raws.Buildings {
		out[def.ID] = def.Code
	}
	return out
}
