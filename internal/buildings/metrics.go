package buildings

import "github.com/prometheus/client_golang/prometheus"

var (
	buildingsRegistered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "buildcore",
		Name:      "buildings_registered_total",
		Help:      "Здания, связанные с миром.",
	}, []string{"type"})

	constructTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "buildcore",
		Name:      "construct_total",
		Help:      "Попытки создать работу постройки по способу задания материалов и результату.",
	}, []string{"mode", "result"})

	tileChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "buildcore",
		Name:      "tile_checks_total",
		Help:      "Проверки тайлов площади здания по результату.",
	}, []string{"result"})

	extentTilesCarved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "buildcore",
		Name:      "extent_tiles_carved_total",
		Help:      "Тайлы, исключённые из площади маской протяжённости.",
	})
)

func init() {
	prometheus.MustRegister(buildingsRegistered, constructTotal, tileChecks, extentTilesCarved)
}

// Результаты проверки тайлов
const (
	checkOK      = "ok"
	checkBlocked = "blocked"
	checkOffMap  = "off_map"
	checkEmpty   = "empty"
)

// Результаты создания работы
const (
	resultOK         = "ok"
	resultRejected   = "rejected"
	resultInfeasible = "infeasible"
	resultExhausted  = "exhausted"
)
