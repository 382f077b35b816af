package job

// RefType тип общей ссылки работы
type RefType int8

const (
	RefBuildingHolder RefType = iota
	RefUnitWorker
)

// GeneralRef связывает работу с объектом мира
type GeneralRef interface {
	Type() RefType
}

// BuildingHolder ссылка на здание, которому принадлежит работа
type BuildingHolder struct {
	BuildingID int32
}

// Type реализует GeneralRef
func (*BuildingHolder) Type() RefType {
	return RefBuildingHolder
}
