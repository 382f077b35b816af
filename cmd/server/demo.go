package main

import (
	"github.com/annel0/buildcore/internal/buildings"
	"github.com/annel0/buildcore/internal/logging"
	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
	"github.com/annel0/buildcore/internal/world/item"
	"github.com/annel0/buildcore/internal/world/job"
)

// surfaceAt ищет верхний тайл колонки, на котором можно строить
func surfaceAt(w *world.World, x, y, maxZ int) (vec.Vec3, bool) {
	for z := maxZ; z >= 0; z-- {
		pos := vec.Vec3{X: x, Y: y, Z: z}
		if tt, ok := w.Grid.TileType(pos); ok && world.HighPassable(tt) {
			return pos, true
		}
	}
	return vec.Vec3{}, false
}

// placeDemoBuildings закладывает мастерскую из камня и поле рядом с ней
func placeDemoBuildings(w *world.World) {
	maxZ := 0
	for _, b := range w.Grid.Blocks() {
		if b.Pos.Z > maxZ {
			maxZ = b.Pos.Z
		}
	}

	pos, ok := surfaceAt(w, 8, 8, maxZ)
	if !ok {
		logging.Warn("Демо: поверхность не найдена")
		return
	}

	ws, err := buildings.AllocInstance(w, pos, building.Workshop, building.WorkshopMasons, -1)
	if err != nil {
		logging.Error("Демо: %v", err)
		return
	}
	if ok, _ := buildings.SetSize(w, ws, vec.Vec2{}, 0); ok {
		stone := item.New(1, item.Boulder, 0, 0, pos)
		if ok, err := buildings.ConstructWithItems(w, ws, []*item.Item{stone}); err != nil || !ok {
			logging.Warn("Демо: мастерская не заложена (%v)", err)
		}
	}

	farmPos := pos.Offset(4, 0)
	farm, err := buildings.AllocInstance(w, farmPos, building.FarmPlot, -1, -1)
	if err != nil {
		logging.Error("Демо: %v", err)
		return
	}
	if ok, _ := buildings.SetSize(w, farm, vec.Vec2{X: 4, Y: 3}, 0); ok {
		filters := []*job.JobItem{job.NewJobItem(item.Boulder, -1, -1)}
		if ok, err := buildings.ConstructWithFilters(w, farm, filters); err != nil || !ok {
			logging.Warn("Демо: поле не заложено (%v)", err)
		}
	}

	logging.Info("Демо: зарегистрировано зданий: %d", buildings.NumBuildings(w))
}
