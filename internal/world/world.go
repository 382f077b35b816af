package world

import (
	"github.com/annel0/buildcore/internal/eventbus"
	"github.com/annel0/buildcore/internal/world/job"
)

// EquipmentUpdate флаги пересчёта снаряжения и комнат интерфейсом
type EquipmentUpdate struct {
	Buildings bool
}

// World контекст мира, который явно передаётся в каждую операцию строительства.
// Все поля изменяются только в пределах хода симуляции, без параллельного доступа.
type World struct {
	Grid       *Grid
	Raws       *Raws
	Buildings  *Registry
	Jobs       *job.Registry
	PlayerRace int32

	ProcessJobs     bool // Планировщику работ есть что пересмотреть
	EquipmentUpdate EquipmentUpdate

	Bus eventbus.EventBus // Необязательная шина доменных событий

	nextBuildingID *int32 // nil - мир не готов к строительству
}

// Options параметры создания мира
type Options struct {
	PlayerRace int32
	MaxJobRefs int
}

// New создаёт мир над готовой сеткой. Источник ID зданий не подключён,
// пока не вызван EnableBuilding.
func New(grid *Grid, raws *Raws, opts Options) *World {
	if grid == nil {
		grid = NewGrid()
	}
	return &World{
		Grid:       grid,
		Raws:       raws,
		Buildings:  NewRegistry(),
		Jobs:       job.NewRegistry(opts.MaxJobRefs),
		PlayerRace: opts.PlayerRace,
	}
}

// EnableBuilding подключает источник последовательных ID зданий
func (w *World) EnableBuilding(firstID int32) {
	next := firstID
	w.nextBuildingID = &next
}

// CanBuild сообщает, подключён ли источник ID
func (w *World) CanBuild() bool {
	return w.nextBuildingID != nil
}

// NextBuildingID выдаёт очередной ID здания. ID не переиспользуются.
func (w *World) NextBuildingID() (int32, bool) {
	if w.nextBuildingID == nil {
		return -1, false
	}
	id := *w.nextBuildingID
	*w.nextBuildingID++
	return id, true
}

// PeekBuildingID возвращает ID, который будет выдан следующим
func (w *World) PeekBuildingID() (int32, bool) {
	if w.nextBuildingID == nil {
		return -1, false
	}
	return *w.nextBuildingID, true
}
