package cancel_reservation

import (
	"context"
	"fmt"
	"strings"
)

// UseCase use case отмены брони
type UseCase struct {
	store   ReservationStore
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, metricsRecorder MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		metrics: metricsRecorder,
		logger:  logger,
	}
}

// Execute отменяет бронь по имени клиента.
// Поиск нечеткий, по подстроке без учета регистра. При нескольких
// совпадениях отменяется самое раннее созданное.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	uc.logger.Info("CancelReservation: lookup name=%q", req.CustomerName)

	matches := uc.store.FindByName(req.CustomerName)
	if len(matches) == 0 {
		uc.logger.Warn("CancelReservation: nothing found for %q", req.CustomerName)
		return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, req.CustomerName)
	}

	target := matches[0]
	if !uc.store.CancelByID(target.ID) {
		// Бронь успела исчезнуть между поиском и отменой
		uc.logger.Warn("CancelReservation: %s vanished before cancel", target.ID)
		return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, req.CustomerName)
	}

	uc.logger.Info("CancelReservation: cancelled %s for %q", target.ID, target.CustomerName)
	uc.metrics.ReservationCancelled()

	return &Response{
		ReservationID: target.ID,
		CustomerName:  target.CustomerName,
		Type:          target.Type,
	}, nil
}
