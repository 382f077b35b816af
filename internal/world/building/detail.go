package building

// Detail поля, специфичные для конкретного вида здания.
// Реализации перечислены ниже; других быть не может.
type Detail interface {
	detail()
}

// WellDetail колодец
type WellDetail struct {
	BucketZ int // Уровень, до которого опускается ведро
}

// FurnaceDetail печь
type FurnaceDetail struct {
	MeltRemainder []int32 // Остаток переплавки по каждому неорганическому материалу
}

// BurialFlags разрешения на захоронение
type BurialFlags struct {
	AllowBurial bool
	NoCitizens  bool
	NoPets      bool
}

// CoffinDetail гроб
type CoffinDetail struct {
	Burial BurialFlags
}

// TrapDetail ловушка; вид ловушки хранится в Subtype здания
type TrapDetail struct {
	PlateThreshold int32
}

// WaterWheelDetail водяное колесо
type WaterWheelDetail struct {
	IsVertical bool
}

// AxleHorizontalDetail горизонтальная ось
type AxleHorizontalDetail struct {
	IsVertical bool
}

// ScrewPumpDetail винтовой насос
type ScrewPumpDetail struct {
	Direction ScrewPumpDirection
}

// GateFlags флаги моста
type GateFlags struct {
	HasSupport bool
	Closed     bool
}

// BridgeDetail мост
type BridgeDetail struct {
	Direction BridgeDirection
	GateFlags GateFlags
}

func (*WellDetail) detail()           {}
func (*FurnaceDetail) detail()        {}
func (*CoffinDetail) detail()         {}
func (*TrapDetail) detail()           {}
func (*WaterWheelDetail) detail()     {}
func (*AxleHorizontalDetail) detail() {}
func (*ScrewPumpDetail) detail()      {}
func (*BridgeDetail) detail()         {}

// plain вид без собственных полей
func plain() Detail { return nil }

var detailConstructors = map[Type]func() Detail{
	Coffin:         func() Detail { return &CoffinDetail{} },
	Furnace:        func() Detail { return &FurnaceDetail{} },
	Well:           func() Detail { return &WellDetail{} },
	Bridge:         func() Detail { return &BridgeDetail{Direction: BridgeRetracting} },
	Trap:           func() Detail { return &TrapDetail{} },
	ScrewPump:      func() Detail { return &ScrewPumpDetail{} },
	AxleHorizontal: func() Detail { return &AxleHorizontalDetail{} },
	WaterWheel:     func() Detail { return &WaterWheelDetail{} },
}

// Constructor возвращает конструктор записи для вида здания
func Constructor(t Type) (func() Detail, bool) {
	if !t.Valid() {
		return nil, false
	}
	if ctor, ok := detailConstructors[t]; ok {
		return ctor, true
	}
	return plain, true
}
