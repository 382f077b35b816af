package job

import (
	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world/item"
)

// Type тип работы
type Type int16

const (
	ConstructBuilding Type = iota
	DestroyBuilding
)

// ItemRole назначение прикреплённого к работе предмета
type ItemRole int8

const (
	Reagent ItemRole = iota
	Hauled
	TargetContainer
)

// ItemRef предмет, закреплённый за работой
type ItemRef struct {
	Item *item.Item
	Role ItemRole
}

// Job работа, которую выполняют жители
type Job struct {
	ID         int32
	Type       Type
	Pos        vec.Vec3
	MatType    int16
	MatIndex   int32
	References []GeneralRef
	Items      []ItemRef
	JobItems   []*JobItem
}

// New создаёт несвязанную с миром работу
func New(t Type, pos vec.Vec3) *Job {
	return &Job{
		ID:       -1,
		Type:     t,
		Pos:      pos,
		MatType:  -1,
		MatIndex: -1,
	}
}

// AttachItem закрепляет предмет за работой и резервирует его
func AttachItem(j *Job, it *item.Item, role ItemRole) {
	it.Flags.InJob = true
	j.Items = append(j.Items, ItemRef{Item: it, Role: role})
}

// BuildingID возвращает ID здания из ссылки-держателя, если она есть
func (j *Job) BuildingID() (int32, bool) {
	for _, ref := range j.References {
		if holder, ok := ref.(*BuildingHolder); ok {
			return holder.BuildingID, true
		}
	}
	return -1, false
}
