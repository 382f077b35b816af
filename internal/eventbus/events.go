package eventbus

// Источник и типы событий движка строительства
const (
	SourceBuildings = "buildings"

	TypeBuildingRegistered = "building.registered"
	TypeConstructionJob    = "building.construction_job"
)

// BuildingRegistered здание связано с миром и заняло тайлы
type BuildingRegistered struct {
	BuildingID int32   `json:"building_id"`
	Type       string  `json:"type"`
	Subtype    int     `json:"subtype"`
	X1         int     `json:"x1"`
	Y1         int     `json:"y1"`
	X2         int     `json:"x2"`
	Y2         int     `json:"y2"`
	Z          int     `json:"z"`
	Rooms      []int32 `json:"rooms,omitempty"`
}

// ConstructionJobCreated для здания создана работа постройки
type ConstructionJobCreated struct {
	BuildingID int32  `json:"building_id"`
	JobID      int32  `json:"job_id"`
	Mode       string `json:"mode"` // "items" или "filters"
	Rough      bool   `json:"rough"`
	Items      int    `json:"items"`
}
