package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	findTable "github.com/m04kA/LDV-ReservationService/internal/usecase/find_table"
)

// Сообщения для диспетчера: он озвучивает их клиенту напрямую
const (
	msgChangeover = "DISPONIBILE MA ATTENZIONE: Questo orario (21:%02d) è nel cambio turno. Per il secondo turno devi proporre le 21:30. Chiedi al cliente se le 21:30 va bene."
	msgBeforeOpen = "DISPONIBILE MA ATTENZIONE: Il ristorante apre alle 19:30. Proponi le 19:30 come orario di inizio."
	msgManager    = "Party size too large for auto-booking. Tell user the manager will call back."
	msgAvailable  = "Tables available. Confirm with user."
	msgNoTables   = "No suitable tables found for that time."
)

// UseCase проверка доступности столов: только чтение, хранилище не меняется
type UseCase struct {
	allocator    TableAllocator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(allocator TableAllocator, logger Logger) *UseCase {
	return &UseCase{
		allocator:    allocator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку доступности.
//
// Сменная политика применяется здесь, а не в движке размещения: она
// рассуждает о настенных часах, а не о состоянии столов. Запрос в окне
// пересменки (21:00-21:29) или до открытия не отклоняется и не
// принимается молча - подбор выполняется как обычно, а к результату
// прикладывается совет с правильным временем.
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	now := uc.timeProvider.Now()
	start := resolveStart(req.Date, req.Time, now)

	uc.logger.Info("CheckAvailability: party=%d date=%q time=%q -> start=%s",
		req.PartySize, req.Date, req.Time, start.Format(domain.DateFormat+" "+domain.TimeFormat))

	guidance := domain.ClassifyRequestTime(start.Hour(), start.Minute())

	result := uc.allocator.Execute(&findTable.Request{
		PartySize: req.PartySize,
		StartTime: start,
	})

	// Эскалация сильнее любых советов по времени
	if result != nil && result.RequiresManager {
		uc.logger.Warn("CheckAvailability: party of %d escalated to manager", req.PartySize)
		return &Response{
			Available:       false,
			RequiresManager: true,
			Message:         msgManager,
		}
	}

	resp := &Response{}
	if result != nil {
		resp.Available = true
		resp.TableIDs = result.TableIDs
	}

	if guidance != nil {
		resp.SuggestedTime = guidance.SuggestedTime()
		switch guidance.Reason {
		case domain.GuidanceShiftChangeover:
			resp.Message = fmt.Sprintf(msgChangeover, start.Minute())
		case domain.GuidanceBeforeOpening:
			resp.Message = msgBeforeOpen
		}
		uc.logger.Info("CheckAvailability: guidance %s -> suggest %s", guidance.Reason, resp.SuggestedTime)
		return resp
	}

	if resp.Available {
		resp.Message = msgAvailable
	} else {
		resp.Message = msgNoTables
	}
	return resp
}
