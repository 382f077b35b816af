package building

// Type вид здания. Набор закрыт: у каждого значения есть запись в traitTable и constructors.
type Type int16

const (
	TypeNone Type = iota - 1
	Chair
	Bed
	Table
	Coffin
	FarmPlot
	Furnace
	TradeDepot
	Shop
	Door
	Floodgate
	Box
	Weaponrack
	Armorstand
	Workshop
	Cabinet
	Statue
	WindowGlass
	WindowGem
	Well
	Bridge
	RoadDirt
	RoadPaved
	SiegeEngine
	Trap
	AnimalTrap
	Support
	ArcheryTarget
	Chain
	Cage
	Stockpile
	Civzone
	Weapon
	Wagon
	ScrewPump
	Construction
	Hatch
	GrateWall
	GrateFloor
	BarsVertical
	BarsFloor
	GearAssembly
	AxleHorizontal
	AxleVertical
	WaterWheel
	Windmill
	TractionBench
	Slab
	Nest
	NestBox
	Hive
	Rollers

	typeCount // всегда последний
)

// AllTypes возвращает все допустимые виды зданий
func AllTypes() []Type {
	types := make([]Type, 0, typeCount)
	for t := Chair; t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Valid проверяет, что значение входит в закрытый набор
func (t Type) Valid() bool {
	return t >= Chair && t < typeCount
}

// String возвращает имя класса вида здания
func (t Type) String() string {
	if !t.Valid() {
		return "NONE"
	}
	return traitTable[t].Name
}

// Подтипы мастерских
const (
	WorkshopCarpenters = iota
	WorkshopFarmers
	WorkshopMasons
	WorkshopCraftsdwarfs
	WorkshopJewelers
	WorkshopMetalsmithsForge
	WorkshopMagmaForge
	WorkshopBowyers
	WorkshopMechanics
	WorkshopSiege
	WorkshopButchers
	WorkshopLeatherworks
	WorkshopTanners
	WorkshopClothiers
	WorkshopFishery
	WorkshopStill
	WorkshopLoom
	WorkshopQuern
	WorkshopKennels
	WorkshopKitchen
	WorkshopAshery
	WorkshopDyers
	WorkshopMillstone
	WorkshopCustom
	WorkshopTool
)

// Подтипы печей
const (
	FurnaceWood = iota
	FurnaceSmelter
	FurnaceGlass
	FurnaceKiln
	FurnaceMagmaSmelter
	FurnaceMagmaGlass
	FurnaceMagmaKiln
	FurnaceCustom
)

// Подтипы ловушек
const (
	TrapCage = iota
	TrapStoneFall
	TrapWeapon
	TrapLever
	TrapPressurePlate
	TrapTrackStop
)

// ScrewPumpDirection сторона, с которой винтовой насос забирает воду
type ScrewPumpDirection int8

const (
	FromNorth ScrewPumpDirection = iota
	FromEast
	FromSouth
	FromWest
)

// BridgeDirection направление подъёма моста
type BridgeDirection int8

const (
	BridgeRetracting BridgeDirection = iota - 1
	BridgeLeft
	BridgeRight
	BridgeUp
	BridgeDown
)

// TileOcc занятость тайла зданием
type TileOcc uint8

const (
	OccNone TileOcc = iota
	OccPlanned
	OccPassable
	OccObstacle
	OccWell
	OccFloored
	OccImpassable
	OccDynamic
)

// OtherID индексы категорий реестра зданий
type OtherID int

const (
	OtherAnyFree OtherID = iota // Здания, которые могут быть комнатами
	OtherAnyActual
	OtherAnyMachine
	OtherAnyRoad
	OtherAnyZone
	OtherStockpile
	OtherWorkshop
	OtherFurnace
	OtherTrap
	OtherWell
	OtherBridge
	OtherFurniture
	OtherConstruction
)
