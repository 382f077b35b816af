package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BuildingDef описание пользовательской мастерской или печи из raw-данных
type BuildingDef struct {
	ID       int32  `yaml:"id"`
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"` // "workshop" или "furnace"
	DimX     int    `yaml:"dim_x"`
	DimY     int    `yaml:"dim_y"`
	WorkLocX int    `yaml:"workloc_x"`
	WorkLocY int    `yaml:"workloc_y"`
}

// InorganicRaw неорганический материал
type InorganicRaw struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Raws таблица raw-данных мира
type Raws struct {
	Buildings  []*BuildingDef `yaml:"buildings"`
	Inorganics []InorganicRaw `yaml:"inorganics"`

	byID map[int32]*BuildingDef
}

// NewRaws собирает таблицу из готовых описаний
func NewRaws(defs []*BuildingDef, inorganics []InorganicRaw) (*Raws, error) {
	r := &Raws{Buildings: defs, Inorganics: inorganics}
	if err := r.index(); err != nil {
		return nil, err
	}
	return r, nil
}

// ParseRaws разбирает raw-данные из YAML
func ParseRaws(data []byte) (*Raws, error) {
	var r Raws
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("ошибка разбора raw-данных: %w", err)
	}
	if err := r.index(); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadRaws читает raw-данные из файла
func LoadRaws(path string) (*Raws, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRaws(data)
}

func (r *Raws) index() error {
	r.byID = make(map[int32]*BuildingDef, len(r.Buildings))
	for _, def := range r.Buildings {
		if def == nil {
			return fmt.Errorf("пустое описание здания")
		}
		if def.DimX < 1 || def.DimY < 1 {
			return fmt.Errorf("здание %q (%d): размер %dx%d меньше 1", def.Code, def.ID, def.DimX, def.DimY)
		}
		if _, dup := r.byID[def.ID]; dup {
			return fmt.Errorf("повторный id здания %d (%q)", def.ID, def.Code)
		}
		r.byID[def.ID] = def
	}
	return nil
}

// FindBuildingDef ищет описание по id пользовательского вида
func (r *Raws) FindBuildingDef(id int) (*BuildingDef, bool) {
	if r == nil || id < 0 {
		return nil, false
	}
	def, ok := r.byID[int32(id)]
	return def, ok
}

// InorganicCount количество известных неорганических материалов
func (r *Raws) InorganicCount() int {
	if r == nil {
		return 0
	}
	return len(r.Inorganics)
}
