package buildings

import (
	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
)

// DefFinder источник описаний пользовательских мастерских и печей
type DefFinder interface {
	FindBuildingDef(id int) (*world.BuildingDef, bool)
}

// Key вариант здания, для которого ищется форма
type Key struct {
	Type      building.Type
	Subtype   int
	Custom    int
	Direction int
}

// Footprint размер и центр здания относительно угла
type Footprint struct {
	Size   vec.Vec2
	Center vec.Vec2
}

// footprintRule вычисляет форму варианта. Второе значение - размер задаётся вызывающим.
type footprintRule func(k Key, size vec.Vec2, defs DefFinder) (Footprint, bool)

func fixed(w, h, cx, cy int) footprintRule {
	return func(Key, vec.Vec2, DefFinder) (Footprint, bool) {
		return Footprint{Size: vec.Vec2{X: w, Y: h}, Center: vec.Vec2{X: cx, Y: cy}}, false
	}
}

func freeForm(_ Key, size vec.Vec2, _ DefFinder) (Footprint, bool) {
	return Footprint{Size: size, Center: size.Div(2)}, true
}

// oneDim сплющивает размер до линии: вертикаль - ширина 1, иначе высота 1
func oneDim(size vec.Vec2, vertical bool) Footprint {
	if vertical {
		size.X = 1
	} else {
		size.Y = 1
	}
	return Footprint{Size: size, Center: size.Div(2)}
}

// custom форма из raw-описания; без описания - 3x3 с центром (1,1)
func custom(k Key, defs DefFinder) Footprint {
	if defs != nil {
		if def, ok := defs.FindBuildingDef(k.Custom); ok {
			return Footprint{
				Size:   vec.Vec2{X: def.DimX, Y: def.DimY},
				Center: vec.Vec2{X: def.WorkLocX, Y: def.WorkLocY},
			}
		}
	}
	return Footprint{Size: vec.Vec2{X: 3, Y: 3}, Center: vec.Vec2{X: 1, Y: 1}}
}

var footprintRules = map[building.Type]footprintRule{
	building.FarmPlot:  freeForm,
	building.Bridge:    freeForm,
	building.RoadDirt:  freeForm,
	building.RoadPaved: freeForm,
	building.Stockpile: freeForm,
	building.Civzone:   freeForm,

	building.TradeDepot:  fixed(5, 5, 2, 2),
	building.Shop:        fixed(5, 5, 2, 2),
	building.SiegeEngine: fixed(3, 3, 1, 1),
	building.Windmill:    fixed(3, 3, 1, 1),
	building.Wagon:       fixed(3, 3, 1, 1),

	building.AxleHorizontal: func(k Key, size vec.Vec2, _ DefFinder) (Footprint, bool) {
		return oneDim(size, k.Direction != 0), true
	},
	building.WaterWheel: func(k Key, _ vec.Vec2, _ DefFinder) (Footprint, bool) {
		return oneDim(vec.Vec2{X: 3, Y: 3}, k.Direction != 0), false
	},

	building.Workshop: func(k Key, _ vec.Vec2, defs DefFinder) (Footprint, bool) {
		switch k.Subtype {
		case building.WorkshopQuern, building.WorkshopMillstone, building.WorkshopTool:
			return Footprint{Size: vec.Vec2{X: 1, Y: 1}}, false
		case building.WorkshopSiege, building.WorkshopKennels:
			return Footprint{Size: vec.Vec2{X: 5, Y: 5}, Center: vec.Vec2{X: 2, Y: 2}}, false
		case building.WorkshopCustom:
			return custom(k, defs), false
		}
		return Footprint{Size: vec.Vec2{X: 3, Y: 3}, Center: vec.Vec2{X: 1, Y: 1}}, false
	},
	building.Furnace: func(k Key, _ vec.Vec2, defs DefFinder) (Footprint, bool) {
		if k.Subtype == building.FurnaceCustom {
			return custom(k, defs), false
		}
		return Footprint{Size: vec.Vec2{X: 3, Y: 3}, Center: vec.Vec2{X: 1, Y: 1}}, false
	},

	building.ScrewPump: func(k Key, _ vec.Vec2, _ DefFinder) (Footprint, bool) {
		switch building.ScrewPumpDirection(k.Direction) {
		case building.FromEast:
			return Footprint{Size: vec.Vec2{X: 2, Y: 1}, Center: vec.Vec2{X: 1, Y: 0}}, false
		case building.FromSouth:
			return Footprint{Size: vec.Vec2{X: 1, Y: 2}, Center: vec.Vec2{X: 0, Y: 1}}, false
		case building.FromWest:
			return Footprint{Size: vec.Vec2{X: 2, Y: 1}}, false
		}
		return Footprint{Size: vec.Vec2{X: 1, Y: 2}}, false
	},
}

// ResolveFootprint возвращает корректный размер и центр здания.
// Запрошенный размер сначала приводится к минимуму 1x1. Второе значение
// сообщает, что размер свободный и запрошенный размер сохранён.
func ResolveFootprint(defs DefFinder, k Key, size vec.Vec2) (Footprint, bool) {
	if size.X <= 0 {
		size.X = 1
	}
	if size.Y <= 0 {
		size.Y = 1
	}

	if rule, ok := footprintRules[k.Type]; ok {
		return rule(k, size, defs)
	}
	return Footprint{Size: vec.Vec2{X: 1, Y: 1}}, false
}
