package building

// Traits статические свойства вида здания
type Traits struct {
	Name             string  // Имя класса записи
	Actual           bool    // Настоящее здание: строится работой из материалов
	ExtentShaped     bool    // Может иметь маску протяжённости
	SettingOccupancy bool    // Помечает занятость тайлов сетки
	NeedsDesign      bool    // Хранит подзапись Design
	CanBeRoom        bool    // Может быть назначено комнатой (индекс ANY_FREE)
	MaxBuildStage    int     // Стадия, на которой постройка завершена
	CompleteOcc      TileOcc // Занятость тайла после завершения
	Categories       []OtherID
}

func furniture(name string, occ TileOcc) Traits {
	return Traits{
		Name:             name,
		Actual:           true,
		SettingOccupancy: true,
		CanBeRoom:        true,
		MaxBuildStage:    1,
		CompleteOcc:      occ,
		Categories:       []OtherID{OtherAnyFree, OtherAnyActual, OtherFurniture},
	}
}

func actual(name string, occ TileOcc, categories ...OtherID) Traits {
	return Traits{
		Name:             name,
		Actual:           true,
		SettingOccupancy: true,
		MaxBuildStage:    1,
		CompleteOcc:      occ,
		Categories:       append([]OtherID{OtherAnyActual}, categories...),
	}
}

func designed(t Traits) Traits {
	t.NeedsDesign = true
	return t
}

func extentShaped(t Traits) Traits {
	t.ExtentShaped = true
	return t
}

var traitTable = [typeCount]Traits{
	Chair:      furniture("building_chairst", OccObstacle),
	Bed:        furniture("building_bedst", OccObstacle),
	Table:      furniture("building_tablest", OccObstacle),
	Coffin:     furniture("building_coffinst", OccObstacle),
	FarmPlot:   extentShaped(actual("building_farmplotst", OccPassable)),
	Furnace:    designed(actual("building_furnacest", OccObstacle, OtherFurnace)),
	TradeDepot: designed(actual("building_tradedepotst", OccObstacle)),
	Shop:       actual("building_shopst", OccObstacle),
	Door:       actual("building_doorst", OccDynamic),
	Floodgate:  actual("building_floodgatest", OccDynamic),
	Box:        furniture("building_boxst", OccObstacle),
	Weaponrack: furniture("building_weaponrackst", OccObstacle),
	Armorstand: furniture("building_armorstandst", OccObstacle),
	Workshop:   designed(actual("building_workshopst", OccObstacle, OtherWorkshop)),
	Cabinet:    furniture("building_cabinetst", OccObstacle),
	Statue:     furniture("building_statuest", OccObstacle),

	WindowGlass: actual("building_window_glassst", OccImpassable),
	WindowGem:   actual("building_window_gemst", OccImpassable),
	Well:        actual("building_wellst", OccWell, OtherWell),
	Bridge:      designed(actual("building_bridgest", OccFloored, OtherBridge)),
	RoadDirt:    extentShaped(actual("building_road_dirtst", OccPassable, OtherAnyRoad)),
	RoadPaved:   designed(extentShaped(actual("building_road_pavedst", OccPassable, OtherAnyRoad))),
	SiegeEngine: designed(actual("building_siegeenginest", OccObstacle)),
	Trap:        actual("building_trapst", OccPassable, OtherTrap),
	AnimalTrap:  actual("building_animaltrapst", OccPassable),
	Support:     actual("building_supportst", OccImpassable),

	ArcheryTarget: furniture("building_archerytargetst", OccObstacle),
	Chain:         furniture("building_chainst", OccObstacle),
	Cage:          furniture("building_cagest", OccObstacle),

	Stockpile: {
		Name:             "building_stockpilest",
		ExtentShaped:     true,
		SettingOccupancy: true,
		CompleteOcc:      OccNone,
		Categories:       []OtherID{OtherStockpile},
	},
	Civzone: {
		Name:         "building_civzonest",
		ExtentShaped: true,
		CompleteOcc:  OccNone,
		Categories:   []OtherID{OtherAnyZone},
	},

	Weapon:       actual("building_weaponst", OccPassable),
	Wagon:        actual("building_wagonst", OccObstacle),
	ScrewPump:    designed(actual("building_screw_pumpst", OccImpassable, OtherAnyMachine)),
	Construction: actual("building_constructionst", OccNone, OtherConstruction),
	Hatch:        actual("building_hatchst", OccDynamic),
	GrateWall:    actual("building_grate_wallst", OccImpassable),
	GrateFloor:   actual("building_grate_floorst", OccFloored),
	BarsVertical: actual("building_bars_verticalst", OccImpassable),
	BarsFloor:    actual("building_bars_floorst", OccFloored),

	GearAssembly:   actual("building_gear_assemblyst", OccImpassable, OtherAnyMachine),
	AxleHorizontal: actual("building_axle_horizontalst", OccImpassable, OtherAnyMachine),
	AxleVertical:   actual("building_axle_verticalst", OccImpassable, OtherAnyMachine),
	WaterWheel:     designed(actual("building_water_wheelst", OccImpassable, OtherAnyMachine)),
	Windmill:       designed(actual("building_windmillst", OccImpassable, OtherAnyMachine)),

	TractionBench: furniture("building_traction_benchst", OccObstacle),
	Slab:          furniture("building_slabst", OccObstacle),
	Nest:          actual("building_nestst", OccObstacle),
	NestBox:       actual("building_nest_boxst", OccObstacle),
	Hive:          actual("building_hivest", OccObstacle),
	Rollers:       actual("building_rollersst", OccPassable, OtherAnyMachine),
}

// TraitsOf возвращает свойства вида здания
func TraitsOf(t Type) (Traits, bool) {
	if !t.Valid() {
		return Traits{}, false
	}
	return traitTable[t], true
}
