package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/buildcore/internal/config"
	"github.com/annel0/buildcore/internal/eventbus"
	"github.com/annel0/buildcore/internal/logging"
	"github.com/annel0/buildcore/internal/metrics"
	"github.com/annel0/buildcore/internal/storage"
	"github.com/annel0/buildcore/internal/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var (
		configPath = flag.String("config", "", "Путь к YAML конфигурации (по умолчанию $BUILDCORE_CONFIG)")
		demo       = flag.Bool("demo", false, "Заложить пробные здания на поверхности мира")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	level, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok {
		logging.Warn("Неизвестный уровень логирования %q, используется INFO", cfg.LogLevel)
	}
	// Логгеры, созданные дальше, пишут и в файл
	logging.GetLoggerManager().EnableFileLogging(true, level)
	if err := logging.GetLoggerManager().SetLogLevel("buildings", level, level); err != nil {
		logging.Warn("Не удалось задать уровень логгера зданий: %v", err)
	}
	defer logging.GetLoggerManager().CloseAll()

	logging.Info("🏗️ Запуск движка строительства...")

	// === RAW-ДАННЫЕ ===
	raws, err := world.LoadRaws(cfg.Raws.Path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Warn("Файл raw-данных %s не найден, пользовательских зданий не будет", cfg.Raws.Path)
		raws, err = world.NewRaws(nil, nil)
	}
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки raw-данных: %v", err)
	}
	logging.Info("📜 Raw-данные: %d описаний зданий, %d неорганических материалов",
		len(raws.Buildings), raws.InorganicCount())

	// === ХРАНИЛИЩЕ И МИР ===
	store, err := storage.NewGridStorage(cfg.Storage.DataPath)
	if err != nil {
		log.Fatalf("❌ Ошибка открытия хранилища: %v", err)
	}
	defer store.Close()

	w, err := restoreWorld(cfg, store, raws)
	if err != nil {
		log.Fatalf("❌ Ошибка подготовки мира: %v", err)
	}

	// === ШИНА СОБЫТИЙ ===
	bus, closeBus, err := openBus(cfg.EventBus)
	if err != nil {
		log.Fatalf("❌ Ошибка подключения шины событий: %v", err)
	}
	defer closeBus()
	w.Bus = bus

	if _, err := eventbus.StartLoggingListener(bus, logging.GetComponentLogger("events")); err != nil {
		logging.Warn("Слушатель событий не запущен: %v", err)
	}

	// === МЕТРИКИ ===
	exporter := eventbus.NewMetricsExporter(bus, prometheus.DefaultRegisterer)
	exporter.Start()
	defer exporter.Stop()

	if err := metrics.NewServerMetrics().Register(prometheus.DefaultRegisterer); err != nil {
		logging.Warn("Метрики процесса не зарегистрированы: %v", err)
	}

	metricsAddr := fmt.Sprintf(":%d", cfg.Metrics.GetMetricsPort())
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("❌ Ошибка HTTP сервера метрик: %v", err)
		}
	}()
	defer srv.Close()

	if *demo {
		placeDemoBuildings(w)
	}

	logging.Info("✅ Движок готов: %d блоков карты, метрики на http://localhost%s/metrics",
		w.Grid.BlockCount(), metricsAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, сохранение мира...", sig)

	if err := store.SaveWorld(w); err != nil {
		logging.Error("❌ Ошибка сохранения мира: %v", err)
	}

	logging.Info("👋 Движок остановлен")
}

// restoreWorld поднимает сетку из хранилища или генерирует новую
func restoreWorld(cfg *config.Config, store *storage.GridStorage, raws *world.Raws) (*world.World, error) {
	grid, err := store.LoadGrid()
	if err != nil {
		return nil, err
	}

	nextID := cfg.World.FirstBuildingID
	if grid.BlockCount() == 0 {
		logging.Info("🌍 Генерация мира %dx%d блоков, %d уровней (seed=%d)",
			cfg.World.BlocksX, cfg.World.BlocksY, cfg.World.ZLevels, cfg.World.Seed)
		grid = world.NewGenerator(cfg.World.Seed, cfg.World.BlocksX, cfg.World.BlocksY, cfg.World.ZLevels).Generate()
	} else {
		logging.Info("🌍 Загружено %d блоков карты", grid.BlockCount())
		if saved, ok, err := store.LoadNextBuildingID(); err != nil {
			return nil, err
		} else if ok {
			nextID = saved
		}
	}

	w := world.New(grid, raws, world.Options{
		PlayerRace: cfg.World.PlayerRace,
		MaxJobRefs: cfg.World.MaxJobRefs,
	})
	w.EnableBuilding(nextID)
	return w, nil
}

// openBus выбирает JetStream, если задан адрес NATS, иначе in-memory шину
func openBus(cfg config.EventBusConfig) (eventbus.EventBus, func(), error) {
	if cfg.URL == "" {
		mb := eventbus.NewMemoryBus(cfg.Capacity)
		return mb, mb.Close, nil
	}

	jb, err := eventbus.NewJetStreamBus(cfg.URL, cfg.Stream, time.Duration(cfg.Retention)*time.Hour)
	if err != nil {
		return nil, nil, err
	}
	logging.Info("📨 Шина событий: JetStream %s, поток %s", cfg.URL, cfg.Stream)
	return jb, func() { _ = jb.Close() }, nil
}
