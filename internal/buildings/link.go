package buildings

import (
	"fmt"

	"github.com/annel0/buildcore/internal/eventbus"
	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
)

// RegisterBuilding связывает готовое здание с миром: выдаёт ID, добавляет в
// реестр и индексы, помечает тайлы и привязывает к комнатам.
func RegisterBuilding(w *world.World, b *building.Building) error {
	if b == nil {
		return ErrNilBuilding
	}
	if b.IsRegistered() {
		return fmt.Errorf("%w: building %d is already registered", ErrInvalidArgument, b.ID)
	}
	if w == nil || !w.CanBuild() {
		return ErrWorldNotReady
	}

	return linkBuilding(w, b)
}

// linkBuilding ничего не меняет, если у мира нет источника ID
func linkBuilding(w *world.World, b *building.Building) error {
	id, ok := w.NextBuildingID()
	if !ok {
		return ErrWorldNotReady
	}
	b.ID = id

	w.Buildings.Append(b)
	w.Buildings.Categorize(b, true)

	if b.IsSettingOccupancy() {
		MarkBuildingTiles(w, b, false)
	}

	rooms := linkRooms(w, b)

	w.ProcessJobs = true

	buildingsRegistered.WithLabelValues(b.Type.String()).Inc()
	logger.Debug("здание %d (%s) зарегистрировано в (%d,%d)-(%d,%d) z=%d",
		b.ID, b.Type, b.X1, b.Y1, b.X2, b.Y2, b.Z)

	publish(w, eventbus.TypeBuildingRegistered, eventbus.BuildingRegistered{
		BuildingID: b.ID,
		Type:       b.Type.String(),
		Subtype:    b.Subtype,
		X1:         b.X1,
		Y1:         b.Y1,
		X2:         b.X2,
		Y2:         b.Y2,
		Z:          b.Z,
		Rooms:      rooms,
	})
	return nil
}

// MarkBuildingTiles записывает здание в пометки и занятость тайлов его площади.
// remove снимает пометки: склад перестаёт помечать тайлы, занятость сбрасывается.
func MarkBuildingTiles(w *world.World, b *building.Building, remove bool) {
	useExtents := b.UsesExtents()
	stockpile := b.Type == building.Stockpile && !remove
	complete := b.IsComplete() && !remove

	for tx := b.X1; tx <= b.X2; tx++ {
		for ty := b.Y1; ty <= b.Y2; ty++ {
			if useExtents && !b.Room.Includes(tx, ty) {
				continue
			}

			tile := vec.Vec3{X: tx, Y: ty, Z: b.Z}
			des := w.Grid.Designation(tile)
			if des == nil {
				continue
			}

			des.Pile = stockpile
			if !remove {
				des.Dig = world.DigNo
			}

			if complete {
				w.Grid.UpdateOccupancy(tile, b.Type)
				continue
			}

			occ := w.Grid.Occupancy(tile)
			if remove {
				occ.Building = building.OccNone
			} else {
				occ.Building = building.OccPlanned
			}
		}
	}
}

// linkRooms привязывает здание к комнатам, которые накрывают его угол.
// Возвращает ID комнат-родителей.
func linkRooms(w *world.World, b *building.Building) []int32 {
	var parents []int32

	for _, room := range w.Buildings.Other(building.OtherAnyFree) {
		if room == b || !room.IsRoom || room.Z != b.Z {
			continue
		}
		if !room.Room.Includes(b.X1, b.Y1) {
			continue
		}

		room.Children = append(room.Children, b.ID)
		b.Parents = append(b.Parents, room.ID)
		parents = append(parents, room.ID)
	}

	if len(parents) > 0 {
		w.EquipmentUpdate.Buildings = true
	}
	return parents
}
