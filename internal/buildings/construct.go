package buildings

import (
	"fmt"

	"github.com/annel0/buildcore/internal/eventbus"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
	"github.com/annel0/buildcore/internal/world/item"
	"github.com/annel0/buildcore/internal/world/job"
)

const (
	modeItems   = "items"
	modeFilters = "filters"
)

// checkConstructable общие предусловия обоих способов постройки
func checkConstructable(w *world.World, b *building.Building, count int) error {
	if b == nil {
		return ErrNilBuilding
	}
	if count == 0 {
		return fmt.Errorf("%w: empty material list", ErrInvalidArgument)
	}
	if b.IsRegistered() {
		return fmt.Errorf("%w: building %d is already registered", ErrInvalidArgument, b.ID)
	}
	if !b.IsActual() {
		return fmt.Errorf("%w: %s is not an actual building", ErrInvalidArgument, b.Type)
	}
	if w == nil || !w.CanBuild() {
		return ErrWorldNotReady
	}
	return nil
}

// ConstructWithItems регистрирует здание и создаёт работу постройки из конкретных предметов.
// false без ошибки: площадь непригодна или один из предметов уже занят другой работой;
// в этом случае мир не изменён.
func ConstructWithItems(w *world.World, b *building.Building, items []*item.Item) (bool, error) {
	if err := checkConstructable(w, b, len(items)); err != nil {
		constructTotal.WithLabelValues(modeItems, resultRejected).Inc()
		return false, err
	}

	for i, it := range items {
		if it == nil {
			constructTotal.WithLabelValues(modeItems, resultRejected).Inc()
			return false, fmt.Errorf("%w: index %d", ErrNilItem, i)
		}
		if it.IsReserved() {
			logger.Debug("предмет %d уже занят работой, здание %s не строится", it.ID, b.Type)
			constructTotal.WithLabelValues(modeItems, resultInfeasible).Inc()
			return false, nil
		}
	}

	j, err := linkForConstruct(w, b, modeItems)
	if j == nil {
		return false, err
	}

	rough := false
	for _, it := range items {
		job.AttachItem(j, it, job.Hauled)

		if it.Type.IsUnworked() {
			rough = true
		}
		if b.MatType == -1 {
			b.MatType = it.MatType
		}
		if b.MatIndex == -1 {
			b.MatIndex = it.MatIndex
		}
	}

	createDesign(b, rough)
	constructed(w, b, j, modeItems, rough, len(items))
	return true, nil
}

// ConstructWithFilters регистрирует здание и создаёт работу постройки по фильтрам материалов.
// Вызов забирает владение фильтрами при любом исходе: если работа не создана,
// все фильтры уничтожаются.
func ConstructWithFilters(w *world.World, b *building.Building, filters []*job.JobItem) (ok bool, err error) {
	defer func() {
		if ok {
			return
		}
		for _, f := range filters {
			f.Release()
		}
	}()

	if err := checkConstructable(w, b, len(filters)); err != nil {
		constructTotal.WithLabelValues(modeFilters, resultRejected).Inc()
		return false, err
	}
	for i, f := range filters {
		if f == nil {
			constructTotal.WithLabelValues(modeFilters, resultRejected).Inc()
			return false, fmt.Errorf("%w: filter index %d", ErrNilItem, i)
		}
	}

	j, err := linkForConstruct(w, b, modeFilters)
	if j == nil {
		return false, err
	}

	rough := false
	for _, f := range filters {
		if f.Quantity < 0 {
			f.Quantity = computeMaterialAmount(b)
		}
		j.JobItems = append(j.JobItems, f)

		if f.ItemType.IsUnworked() {
			rough = true
		}
		if b.MatType == -1 {
			b.MatType = f.MatType
		}
		if b.MatIndex == -1 {
			b.MatIndex = f.MatIndex
		}
	}

	createDesign(b, rough)
	constructed(w, b, j, modeFilters, rough, len(filters))
	return true, nil
}

// linkForConstruct проверяет площадь, связывает здание с миром и создаёт работу.
// nil без ошибки - площадь непригодна.
func linkForConstruct(w *world.World, b *building.Building, mode string) (*job.Job, error) {
	if !checkBuildingTiles(w, b, false) {
		constructTotal.WithLabelValues(mode, resultInfeasible).Inc()
		return nil, nil
	}

	ref, err := w.Jobs.AllocBuildingHolder()
	if err != nil {
		logger.Warn("не удалось выделить ссылку на здание %s: %v", b.Type, err)
		constructTotal.WithLabelValues(mode, resultExhausted).Inc()
		return nil, err
	}

	if err := linkBuilding(w, b); err != nil {
		return nil, err
	}
	ref.BuildingID = b.ID

	j := job.New(job.ConstructBuilding, b.Center())
	j.References = append(j.References, ref)
	b.Jobs = append(b.Jobs, j)
	w.Jobs.LinkIntoWorld(j)

	return j, nil
}

// createDesign переносит материал на работу и заводит Design там, где он нужен
func createDesign(b *building.Building, rough bool) {
	j := b.CurrentJob()
	j.MatType = b.MatType
	j.MatIndex = b.MatIndex

	if b.NeedsDesign() {
		b.Design = &building.Design{Rough: rough}
	}
}

func constructed(w *world.World, b *building.Building, j *job.Job, mode string, rough bool, n int) {
	constructTotal.WithLabelValues(mode, resultOK).Inc()
	logger.Debug("работа %d постройки здания %d (%s), материалов: %d", j.ID, b.ID, mode, n)

	publish(w, eventbus.TypeConstructionJob, eventbus.ConstructionJobCreated{
		BuildingID: b.ID,
		JobID:      j.ID,
		Mode:       mode,
		Rough:      rough,
		Items:      n,
	})
}
