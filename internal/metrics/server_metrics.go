package metrics

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// ServerMetrics метрики процесса сервера
type ServerMetrics struct {
	StartTime time.Time
}

// NewServerMetrics создает новый экземпляр метрик
func NewServerMetrics() *ServerMetrics {
	return &ServerMetrics{
		StartTime: time.Now(),
	}
}

// GetUptime возвращает время работы сервера
func (sm *ServerMetrics) GetUptime() string {
	uptime := time.Since(sm.StartTime)

	days := int(uptime.Hours()) / 24
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dд %dч %dм %dс", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	}
	return fmt.Sprintf("%dс", seconds)
}

// GetMemoryUsage возвращает использование памяти в MB
func (sm *ServerMetrics) GetMemoryUsage() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Alloc) / 1024 / 1024
}

// GetRSS резидентная память процесса в байтах
func (sm *ServerMetrics) GetRSS() (uint64, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}
	info, err := proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}

// GetCPUUsage возвращает использование CPU процессом в процентах
func (sm *ServerMetrics) GetCPUUsage() (float64, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		// Если не удалось получить метрику процесса, попробуем системную
		cpuPercents, err := cpu.Percent(100*time.Millisecond, false)
		if err != nil || len(cpuPercents) == 0 {
			return 0, err
		}
		return cpuPercents[0], nil
	}

	return cpuPercent, nil
}

// Register публикует метрики процесса как GaugeFunc
func (sm *ServerMetrics) Register(reg prometheus.Registerer) error {
	gauges := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "buildcore",
			Subsystem: "process",
			Name:      "uptime_seconds",
			Help:      "Время работы сервера.",
		}, func() float64 { return time.Since(sm.StartTime).Seconds() }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "buildcore",
			Subsystem: "process",
			Name:      "heap_alloc_mb",
			Help:      "Выделенная куча Go в MB.",
		}, sm.GetMemoryUsage),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "buildcore",
			Subsystem: "process",
			Name:      "rss_bytes",
			Help:      "Резидентная память процесса.",
		}, func() float64 {
			rss, err := sm.GetRSS()
			if err != nil {
				return 0
			}
			return float64(rss)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "buildcore",
			Subsystem: "process",
			Name:      "cpu_percent",
			Help:      "Загрузка CPU процессом.",
		}, func() float64 {
			v, err := sm.GetCPUUsage()
			if err != nil {
				return 0
			}
			return v
		}),
	}

	for _, g := range gauges {
		if err := reg.Register(g); err != nil {
			return err
		}
	}
	return nil
}
