package building

// Extents маска протяжённости над прямоугольником здания.
// Tiles == nil означает, что маски нет и в здание входят все тайлы.
type Extents struct {
	X, Y          int
	Width, Height int
	Tiles         []uint8
}

// Present сообщает, выделена ли маска
func (e *Extents) Present() bool {
	return e != nil && e.Tiles != nil
}

// index возвращает индекс тайла в маске или false, если тайл вне маски
func (e *Extents) index(x, y int) (int, bool) {
	if !e.Present() {
		return 0, false
	}
	dx := x - e.X
	dy := y - e.Y
	if dx < 0 || dy < 0 || dx >= e.Width || dy >= e.Height {
		return 0, false
	}
	return dx + dy*e.Width, true
}

// Covers сообщает, что маска есть и тайл лежит в её пределах
func (e *Extents) Covers(x, y int) bool {
	_, ok := e.index(x, y)
	return ok
}

// Includes истина, если маска есть и бит тайла установлен
func (e *Extents) Includes(x, y int) bool {
	i, ok := e.index(x, y)
	return ok && e.Tiles[i] != 0
}

// Allocate создаёт маску с установленными битами
func (e *Extents) Allocate(x, y, width, height int) {
	e.X, e.Y = x, y
	e.Width, e.Height = width, height
	e.Tiles = make([]uint8, width*height)
	for i := range e.Tiles {
		e.Tiles[i] = 1
	}
}

// Exclude сбрасывает бит тайла; false, если тайл вне маски
func (e *Extents) Exclude(x, y int) bool {
	i, ok := e.index(x, y)
	if !ok {
		return false
	}
	e.Tiles[i] = 0
	return true
}

// Release освобождает маску
func (e *Extents) Release() {
	e.Tiles = nil
}

// Count число установленных битов
func (e *Extents) Count() int {
	cnt := 0
	for _, v := range e.Tiles {
		if v != 0 {
			cnt++
		}
	}
	return cnt
}
