package buildings

import (
	"context"
	"testing"

	"github.com/annel0/buildcore/internal/eventbus"
	"github.com/annel0/buildcore/internal/vec"
	"github.com/annel0/buildcore/internal/world"
	"github.com/annel0/buildcore/internal/world/building"
	"github.com/stretchr/testify/require"
)

const (
	testZ        = 1
	testRace     = 465
	soapMakerID  = 7
	testMapWidth = 32 // 2x2 блока
)

// newTestWorld мир с полом на уровне testZ в тайлах 0..31 и одним
// пользовательским описанием мастерской 3x2 с рабочим местом (1,1)
func newTestWorld(t *testing.T) *world.World {
	t.Helper()

	g := world.NewGrid()
	g.FillRect(testZ, 0, 0, testMapWidth-1, testMapWidth-1, world.Floor)

	raws, err := world.NewRaws([]*world.BuildingDef{
		{ID: soapMakerID, Code: "SOAP_MAKER", Name: "Мыловарня", Kind: "workshop", DimX: 3, DimY: 2, WorkLocX: 1, WorkLocY: 1},
	}, []world.InorganicRaw{{ID: "IRON"}, {ID: "GOLD"}, {ID: "TIN"}})
	require.NoError(t, err)

	w := world.New(g, raws, world.Options{PlayerRace: testRace})
	w.EnableBuilding(0)
	return w
}

func at(x, y int) vec.Vec3 {
	return vec.Vec3{X: x, Y: y, Z: testZ}
}

// newPlaced создаёт здание и задаёт ему размер, проверяя успешную проверку тайлов
func newPlaced(t *testing.T, w *world.World, pos vec.Vec3, typ building.Type, subtype int, size vec.Vec2) *building.Building {
	t.Helper()

	b, err := AllocInstance(w, pos, typ, subtype, -1)
	require.NoError(t, err)
	ok, err := SetSize(w, b, size, 0)
	require.NoError(t, err)
	require.True(t, ok, "площадь %s в %v должна быть свободна", typ, pos)
	return b
}

// recordingBus синхронно запоминает опубликованные события
type recordingBus struct {
	events []*eventbus.Envelope
}

func (r *recordingBus) Publish(_ context.Context, ev *eventbus.Envelope) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingBus) Subscribe(context.Context, eventbus.Filter, eventbus.Handler) (eventbus.Subscription, error) {
	return nil, nil
}

func (r *recordingBus) Metrics() eventbus.Stats {
	return eventbus.Stats{Published: uint64(len(r.events))}
}

func (r *recordingBus) ofType(eventType string) []*eventbus.Envelope {
	var out []*eventbus.Envelope
	for _, ev := range r.events {
		if ev.EventType == eventType {
			out = append(out, ev)
		}
	}
	return out
}
