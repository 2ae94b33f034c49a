package cancel_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда брони с таким именем нет
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")
)
