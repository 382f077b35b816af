package item

import "github.com/annel0/buildcore/internal/vec"

// Type тип предмета
type Type int16

const (
	TypeNone Type = iota - 1
	Bar
	SmallGem
	Blocks
	Rough
	Boulder
	Wood
	Door
	Floodgate
	Bed
	Chair
	Chain
	Table
	Coffin
	Statue
	Cabinet
	Box
	Mechanism
	TrapParts
	Pipe
	Pebble
)

var typeNames = map[Type]string{
	TypeNone:  "NONE",
	Bar:       "BAR",
	SmallGem:  "SMALLGEM",
	Blocks:    "BLOCKS",
	Rough:     "ROUGH",
	Boulder:   "BOULDER",
	Wood:      "WOOD",
	Door:      "DOOR",
	Floodgate: "FLOODGATE",
	Bed:       "BED",
	Chair:     "CHAIR",
	Chain:     "CHAIN",
	Table:     "TABLE",
	Coffin:    "COFFIN",
	Statue:    "STATUE",
	Cabinet:   "CABINET",
	Box:       "BOX",
	Mechanism: "TRAPPARTS_MECHANISM",
	TrapParts: "TRAPPARTS",
	Pipe:      "PIPE_SECTION",
	Pebble:    "PEBBLE",
}

// String возвращает имя типа
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsUnworked истина для необработанного сырья (камня из породы),
// постройка из которого получается грубой
func (t Type) IsUnworked() bool {
	return t == Boulder
}

// Flags флаги состояния предмета
type Flags struct {
	InJob      bool // Предмет зарезервирован работой
	OnGround   bool
	Forbid     bool
	InBuilding bool
}

// Item представляет предмет мира
type Item struct {
	ID       int32
	Type     Type
	Subtype  int16
	MatType  int16
	MatIndex int32
	Pos      vec.Vec3
	Flags    Flags
}

// New создаёт предмет на земле
func New(id int32, t Type, matType int16, matIndex int32, pos vec.Vec3) *Item {
	return &Item{
		ID:       id,
		Type:     t,
		Subtype:  -1,
		MatType:  matType,
		MatIndex: matIndex,
		Pos:      pos,
		Flags:    Flags{OnGround: true},
	}
}

// IsReserved сообщает, что предмет уже занят другой работой
func (it *Item) IsReserved() bool {
	return it.Flags.InJob
}
