package make_reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	findTable "github.com/m04kA/LDV-ReservationService/internal/usecase/find_table"
)

// UseCase use case создания брони: единственная точка, которая пишет
// в хранилище броней.
type UseCase struct {
	allocator    TableAllocator
	store        ReservationStore
	menuService  MenuService
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	allocator TableAllocator,
	store ReservationStore,
	menuService MenuService,
	txManager TransactionManager,
	metricsRecorder MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocator:    allocator,
		store:        store,
		menuService:  menuService,
		txManager:    txManager,
		metrics:      metricsRecorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет создание брони.
//
// Dine-in: подбор стола выполняется заново прямо перед записью, результату
// более раннего check_availability здесь не доверяют. Подбор и запись идут
// в одной критической секции, иначе два конкурентных вызова могут занять
// один стол.
//
// Takeaway: заказ обсчитывается по каталогу. При любой нераспознанной
// позиции бронь не создается. Успешный заказ занимает ноль столов на
// стандартное окно подготовки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Type == "" {
		req.Type = domain.TypeDineIn
	}

	uc.logger.Info("MakeReservation: type=%s party=%d date=%q time=%q customer=%q",
		req.Type, req.PartySize, req.Date, req.Time, req.CustomerName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MakeReservation: validation failed: %v", err)
		return nil, err
	}

	// Запрос обратного звонка менеджера: фиксируется в логах для персонала,
	// бронь не создается
	if req.Notes == NoteManagerCallbackIT || req.Notes == NoteManagerCallbackEN {
		uc.logger.Warn("MakeReservation: manager callback requested by %q (%d pax, contact=%q)",
			req.CustomerName, req.PartySize, req.ContactInfo)
		uc.metrics.ManagerEscalated()
		return &Response{ManagerCallback: true, Type: req.Type}, nil
	}

	start := resolveStart(req.Date, req.Time, uc.timeProvider.Now())

	if req.Type == domain.TypeTakeaway {
		return uc.executeTakeaway(req, start)
	}
	return uc.executeDineIn(ctx, req, start)
}

func (uc *UseCase) executeDineIn(ctx context.Context, req *Request, start time.Time) (*Response, error) {
	var resp *Response

	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		result := uc.allocator.Execute(&findTable.Request{
			PartySize: req.PartySize,
			StartTime: start,
		})
		if result == nil {
			uc.logger.Warn("MakeReservation: no tables for party=%d at %s",
				req.PartySize, start.Format(domain.TimeFormat))
			return ErrNoTableAvailable
		}
		if result.RequiresManager {
			uc.logger.Warn("MakeReservation: party=%d requires manager approval", req.PartySize)
			uc.metrics.ManagerEscalated()
			return ErrManagerRequired
		}

		reservation := domain.Reservation{
			ID:              uuid.NewString(),
			CustomerName:    req.CustomerName,
			ContactInfo:     req.ContactInfo,
			PartySize:       req.PartySize,
			StartTime:       start,
			DurationMinutes: domain.DineInDurationMinutes,
			TableIDs:        result.TableIDs,
			Notes:           req.Notes,
			Type:            domain.TypeDineIn,
			CreatedAt:       uc.timeProvider.Now(),
		}
		uc.store.Create(reservation)

		uc.logger.Info("MakeReservation: created %s tables=%v start=%s",
			reservation.ID, reservation.TableIDs, start.Format(domain.TimeFormat))

		resp = &Response{
			ReservationID: reservation.ID,
			Type:          domain.TypeDineIn,
			TableIDs:      reservation.TableIDs,
			StartTime:     start,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.ReservationCreated(string(domain.TypeDineIn))
	return resp, nil
}

func (uc *UseCase) executeTakeaway(req *Request, start time.Time) (*Response, error) {
	order := uc.menuService.ProcessOrder(req.Items)
	if len(order.Unresolved) > 0 {
		uc.logger.Warn("MakeReservation: unresolved order items: %v", order.Unresolved)
		uc.metrics.ItemsUnresolved(len(order.Unresolved))
		return nil, &UnresolvedItemsError{Names: order.Unresolved}
	}

	names := make([]string, 0, len(order.Items))
	for _, line := range order.Items {
		names = append(names, line.Name)
	}

	reservation := domain.Reservation{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		ContactInfo:     req.ContactInfo,
		PartySize:       0,
		StartTime:       start,
		DurationMinutes: domain.TakeawayDurationMinutes,
		TableIDs:        nil,
		Notes:           fmt.Sprintf("Ordine: %s", strings.Join(names, ", ")),
		Type:            domain.TypeTakeaway,
		CreatedAt:       uc.timeProvider.Now(),
	}
	uc.store.Create(reservation)

	uc.logger.Info("MakeReservation: takeaway %s total=%.2f items=%d",
		reservation.ID, order.Total, len(order.Items))
	uc.metrics.ReservationCreated(string(domain.TypeTakeaway))

	return &Response{
		ReservationID: reservation.ID,
		Type:          domain.TypeTakeaway,
		StartTime:     start,
		TotalCost:     fmt.Sprintf("€%.0f", order.Total),
	}, nil
}
