package world

import "github.com/annel0/buildcore/internal/world/building"

// Registry реестр зданий мира: общий список и индексы по категориям
type Registry struct {
	all   []*building.Building
	other map[building.OtherID][]*building.Building
	byID  map[int32]*building.Building
}

// NewRegistry создаёт пустой реестр
func NewRegistry() *Registry {
	return &Registry{
		other: make(map[building.OtherID][]*building.Building),
		byID:  make(map[int32]*building.Building),
	}
}

// Append добавляет здание в общий список
func (r *Registry) Append(b *building.Building) {
	r.all = append(r.all, b)
	r.byID[b.ID] = b
}

// Categorize раскладывает здание по индексам его вида.
// free=true: здание только что добавлено и ещё не занято комнатой, поэтому
// попадает и в ANY_FREE, если его вид может быть комнатой.
func (r *Registry) Categorize(b *building.Building, free bool) {
	for _, id := range b.Traits().Categories {
		if id == building.OtherAnyFree && !free {
			continue
		}
		r.other[id] = append(r.other[id], b)
	}
}

// All все здания в порядке регистрации
func (r *Registry) All() []*building.Building {
	return r.all
}

// Len количество зданий
func (r *Registry) Len() int {
	return len(r.all)
}

// At здание по индексу в общем списке
func (r *Registry) At(index int) (*building.Building, bool) {
	if index < 0 || index >= len(r.all) {
		return nil, false
	}
	return r.all[index], true
}

// Other здания категории
func (r *Registry) Other(id building.OtherID) []*building.Building {
	return r.other[id]
}

// Find ищет здание по ID
func (r *Registry) Find(id int32) *building.Building {
	return r.byID[id]
}

// Contains проверяет, зарегистрировано ли здание
func (r *Registry) Contains(b *building.Building) bool {
	for _, x := range r.all {
		if x == b {
			return true
		}
	}
	return false
}
