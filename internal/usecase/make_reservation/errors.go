package make_reservation

import (
	"errors"
	"strings"
)

var (
	// ErrNoTableAvailable возвращается, когда подходящих столов нет
	ErrNoTableAvailable = errors.New("make_reservation: no table available")

	// ErrManagerRequired возвращается для компаний сверх порога автобронирования
	ErrManagerRequired = errors.New("make_reservation: party requires manager")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("make_reservation: invalid input data")
)

// UnresolvedItemsError возвращается, когда часть позиций takeaway-заказа
// не распознана по каталогу. Заказ не фиксируется: fail closed.
type UnresolvedItemsError struct {
	Names []string
}

func (e *UnresolvedItemsError) Error() string {
	return "make_reservation: items not on menu: " + strings.Join(e.Names, ", ")
}
