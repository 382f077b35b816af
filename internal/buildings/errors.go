package buildings

import "errors"

var (
	// ErrNilBuilding обязательная ссылка на здание не передана
	ErrNilBuilding = errors.New("buildings: nil building")
	// ErrNilItem в списке материалов есть пустой элемент
	ErrNilItem = errors.New("buildings: nil item")
	// ErrInvalidArgument нарушено предусловие операции
	ErrInvalidArgument = errors.New("buildings: invalid argument")
	// ErrUnknownType для вида здания нет конструктора записи
	ErrUnknownType = errors.New("buildings: unknown building type")
	// ErrWorldNotReady у мира нет источника ID зданий
	ErrWorldNotReady = errors.New("buildings: world is not ready for building")
)
