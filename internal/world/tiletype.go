package world

// TileType класс рельефа тайла
type TileType uint8

const (
	TileVoid TileType = iota // Данных нет
	OpenSpace
	RampTop
	Floor
	SoilFloor
	Grass
	Shrub
	Pebbles
	Boulder
	Ramp
	StairUp
	StairDown
	StairUpDown
	Wall
	Fortification
	Tree
	MurkyPool

	tileTypeCount
)

type tileAttrs struct {
	name         string
	passableHigh bool // Можно стоять и строить
	open         bool // Открытое пространство без опоры
}

var tileTable = [tileTypeCount]tileAttrs{
	TileVoid:      {name: "Void"},
	OpenSpace:     {name: "OpenSpace", open: true},
	RampTop:       {name: "RampTop", open: true},
	Floor:         {name: "Floor", passableHigh: true},
	SoilFloor:     {name: "SoilFloor", passableHigh: true},
	Grass:         {name: "Grass", passableHigh: true},
	Shrub:         {name: "Shrub", passableHigh: true},
	Pebbles:       {name: "Pebbles", passableHigh: true},
	Boulder:       {name: "Boulder", passableHigh: true},
	Ramp:          {name: "Ramp", passableHigh: true},
	StairUp:       {name: "StairUp", passableHigh: true},
	StairDown:     {name: "StairDown", passableHigh: true},
	StairUpDown:   {name: "StairUpDown", passableHigh: true},
	Wall:          {name: "Wall"},
	Fortification: {name: "Fortification"},
	Tree:          {name: "Tree"},
	MurkyPool:     {name: "MurkyPool"},
}

// String имя класса рельефа
func (tt TileType) String() string {
	if tt >= tileTypeCount {
		return "Unknown"
	}
	return tileTable[tt].name
}

// HighPassable истина для тайлов, на которых можно ставить здания
func HighPassable(tt TileType) bool {
	return tt < tileTypeCount && tileTable[tt].passableHigh
}

// IsOpenTerrain истина для открытого пространства, не дающего опоры
func IsOpenTerrain(tt TileType) bool {
	return tt < tileTypeCount && tileTable[tt].open
}
