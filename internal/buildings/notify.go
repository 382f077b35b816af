package buildings

import (
	"context"

	"github.com/annel0/buildcore/internal/eventbus"
	"github.com/annel0/buildcore/internal/logging"
	"github.com/annel0/buildcore/internal/world"
)

var logger = logging.GetBuildingsLogger()

// publish отправляет доменное событие в шину мира, если она подключена.
// Ошибки публикации не влияют на результат операции.
func publish(w *world.World, eventType string, payload interface{}) {
	if w.Bus == nil {
		return
	}

	ev, err := eventbus.NewEnvelope(eventbus.SourceBuildings, eventType, 1, payload)
	if err != nil {
		logger.Error("не удалось сериализовать событие %s: %v", eventType, err)
		return
	}
	if err := w.Bus.Publish(context.Background(), ev); err != nil {
		logger.Warn("событие %s не опубликовано: %v", eventType, err)
	}
}
