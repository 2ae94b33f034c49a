package availability

import "github.com/m04kA/LDV-ReservationService/internal/domain"

// ReservationStore интерфейс хранилища броней
type ReservationStore interface {
	List() []domain.Reservation
}

// TableRegistry интерфейс реестра столов
type TableRegistry interface {
	All() []domain.Table
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
