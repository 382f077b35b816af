package buildings

import (
	"fmt"

	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
)

const (
	// defaultPlateThreshold минимальный вес, на который срабатывает нажимная плита
	defaultPlateThreshold = 500
)

// AllocInstance создаёт новое незарегистрированное здание в тайле pos.
// subtype и custom равные -1 оставляют значения по умолчанию.
func AllocInstance(w *world.World, pos vec.Vec3, t building.Type, subtype, custom int) (*building.Building, error) {
	if w == nil || !w.CanBuild() {
		return nil, ErrWorldNotReady
	}

	ctor, ok := building.Constructor(t)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}

	b := building.New(t, ctor(), pos)
	b.Race = w.PlayerRace
	if subtype != -1 {
		b.Subtype = subtype
	}
	if custom != -1 {
		b.CustomType = custom
	}
	b.MaterialAmount = 1

	switch d := b.Detail.(type) {
	case *building.WellDetail:
		d.BucketZ = b.Z
	case *building.FurnaceDetail:
		d.MeltRemainder = make([]int32, w.Raws.InorganicCount())
	case *building.CoffinDetail:
		d.Burial = building.BurialFlags{AllowBurial: true, NoCitizens: false, NoPets: true}
	case *building.TrapDetail:
		if b.Subtype == building.TrapPressurePlate {
			d.PlateThreshold = defaultPlateThreshold
		}
	}

	logger.Trace("создано здание %s (%d/%d) в %v", t, b.Subtype, b.CustomType, pos)
	return b, nil
}
