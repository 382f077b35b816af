package buildings

import (
	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
)

// CheckFreeTiles проверяет, что прямоугольник size с углом pos пригоден для постройки.
//
// Тайлы, бит которых в существующей маске ext сброшен (или которые лежат вне неё),
// пропускаются. Если createExt и ext передан, неподходящие тайлы вырезаются из
// маски, а сама маска выделяется при первой необходимости. Возвращает true, если
// нашёлся хотя бы один подходящий тайл. При отказе маска остаётся частично
// изменённой: тайлы, вырезанные до отказа, не восстанавливаются.
func CheckFreeTiles(w *world.World, pos vec.Vec3, size vec.Vec2, ext *building.Extents, createExt, allowOccupied bool) bool {
	foundAny := false

	for dx := 0; dx < size.X; dx++ {
		for dy := 0; dy < size.Y; dy++ {
			tile := pos.Offset(dx, dy)

			if ext.Present() && !ext.Includes(tile.X, tile.Y) {
				continue
			}

			block := w.Grid.TileBlock(tile)
			if block == nil {
				tileChecks.WithLabelValues(checkOffMap).Inc()
				return false
			}

			l := tile.ToVec2().LocalInChunk()
			allowed := true
			if !allowOccupied && block.Occupancy[l.X][l.Y].Building != building.OccNone {
				allowed = false
			} else if !world.HighPassable(block.TileType[l.X][l.Y]) {
				allowed = false
			}

			if allowed {
				foundAny = true
				continue
			}

			if ext == nil || !createExt {
				tileChecks.WithLabelValues(checkBlocked).Inc()
				return false
			}
			if !ext.Present() {
				ext.Allocate(pos.X, pos.Y, size.X, size.Y)
			}
			if !ext.Exclude(tile.X, tile.Y) {
				tileChecks.WithLabelValues(checkBlocked).Inc()
				return false
			}
			extentTilesCarved.Inc()
			logger.Trace("тайл (%d,%d,%d) исключён из маски", tile.X, tile.Y, tile.Z)
		}
	}

	if !foundAny {
		tileChecks.WithLabelValues(checkEmpty).Inc()
		return false
	}
	tileChecks.WithLabelValues(checkOK).Inc()
	return true
}

// CountExtentTiles число тайлов, входящих в маску; без маски - defaultValue
func CountExtentTiles(ext *building.Extents, defaultValue int) int {
	if !ext.Present() {
		return defaultValue
	}
	return ext.Count()
}

// HasSupport проверяет, есть ли под краями прямоугольника опора.
// Смотрит рамку в один тайл вокруг прямоугольника без углов; тайлы вне карты
// пропускаются. Опора - любой тайл, который не является открытым пространством.
func HasSupport(w *world.World, pos vec.Vec3, size vec.Vec2) bool {
	for dx := -1; dx <= size.X; dx++ {
		for dy := -1; dy <= size.Y; dy++ {
			edgeX := dx < 0 || dx == size.X
			edgeY := dy < 0 || dy == size.Y
			// углы и внутренность не в счёт
			if edgeX == edgeY {
				continue
			}

			tt, ok := w.Grid.TileType(pos.Offset(dx, dy))
			if !ok {
				continue
			}
			if !world.IsOpenTerrain(tt) {
				return true
			}
		}
	}
	return false
}

// checkBuildingTiles проверяет площадь здания. canChange разрешает вырезать
// маску у зданий произвольной формы.
func checkBuildingTiles(w *world.World, b *building.Building, canChange bool) bool {
	return CheckFreeTiles(w, b.Origin(), b.Size(), &b.Room,
		canChange && b.IsExtentShaped(), !b.IsSettingOccupancy())
}
