package job

import "github.com/annel0/buildcore/internal/world/item"

// JobItem фильтр материала: описывает, какие предметы и сколько нужны работе.
// Владение фильтром передаётся работе (или строителю, который его уничтожает).
type JobItem struct {
	ItemType    item.Type
	ItemSubtype int16
	MatType     int16
	MatIndex    int32
	Quantity    int // < 0 - вычислить по площади здания
	Vector      string
	released    bool
}

// NewJobItem создаёт фильтр с неопределённым количеством
func NewJobItem(t item.Type, matType int16, matIndex int32) *JobItem {
	return &JobItem{
		ItemType:    t,
		ItemSubtype: -1,
		MatType:     matType,
		MatIndex:    matIndex,
		Quantity:    -1,
	}
}

// Release уничтожает фильтр. Повторный вызов ничего не делает.
func (ji *JobItem) Release() {
	if ji == nil || ji.released {
		return
	}
	*ji = JobItem{released: true}
}

// Released сообщает, что фильтр уничтожен
func (ji *JobItem) Released() bool {
	return ji.released
}
