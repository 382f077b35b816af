package job

import "errors"

// ErrRefExhausted пул ссылок исчерпан
var ErrRefExhausted = errors.New("job: could not allocate building holder reference")

// Registry список работ мира
type Registry struct {
	list      []*Job
	nextID    int32
	refLimit  int // 0 - без ограничения
	refsInUse int
}

// NewRegistry создаёт реестр работ. refLimit ограничивает число выделенных ссылок-держателей.
func NewRegistry(refLimit int) *Registry {
	return &Registry{refLimit: refLimit}
}

// AllocBuildingHolder выделяет ссылку-держатель здания
func (r *Registry) AllocBuildingHolder() (*BuildingHolder, error) {
	if r.refLimit > 0 && r.refsInUse >= r.refLimit {
		return nil, ErrRefExhausted
	}
	r.refsInUse++
	return &BuildingHolder{BuildingID: -1}, nil
}

// LinkIntoWorld присваивает работе ID и добавляет её в общий список
func (r *Registry) LinkIntoWorld(j *Job) {
	j.ID = r.nextID
	r.nextID++
	r.list = append(r.list, j)
}

// All возвращает связанные работы в порядке добавления
func (r *Registry) All() []*Job {
	return r.list
}

// Len количество связанных работ
func (r *Registry) Len() int {
	return len(r.list)
}

// Find ищет работу по ID
func (r *Registry) Find(id int32) *Job {
	for _, j := range r.list {
		if j.ID == id {
			return j
		}
	}
	return nil
}
