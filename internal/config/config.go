package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации движка строительства.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Raws     RawsConfig     `yaml:"raws"`
	Storage  StorageConfig  `yaml:"storage"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	EventBus EventBusConfig `yaml:"eventbus"`
	LogLevel string         `yaml:"log_level"`
}

// WorldConfig описывает генерируемую сетку мира
type WorldConfig struct {
	Seed            int64 `yaml:"seed"`
	BlocksX         int   `yaml:"blocks_x"` // Размер в блоках 16x16
	BlocksY         int   `yaml:"blocks_y"`
	ZLevels         int   `yaml:"z_levels"`
	PlayerRace      int32 `yaml:"player_race"`
	FirstBuildingID int32 `yaml:"first_building_id"`
	MaxJobRefs      int   `yaml:"max_job_refs"` // 0 - без ограничения
}

type RawsConfig struct {
	Path string `yaml:"path"`
}

type StorageConfig struct {
	DataPath string `yaml:"data_path"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

type EventBusConfig struct {
	URL       string `yaml:"url"` // Пусто - in-memory шина
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
	Capacity  int    `yaml:"capacity"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:            12345,
			BlocksX:         4,
			BlocksY:         4,
			ZLevels:         8,
			FirstBuildingID: 0,
		},
		Raws:     RawsConfig{Path: "assets/raws/buildings.yaml"},
		Storage:  StorageConfig{DataPath: "data"},
		EventBus: EventBusConfig{Stream: "BUILDINGS", Retention: 24, Capacity: 1024},
		LogLevel: "info",
	}
}

// GetMetricsPort возвращает порт Prometheus с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(m.Port, "BUILDCORE_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV BUILDCORE_CONFIG, иначе возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("BUILDCORE_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
