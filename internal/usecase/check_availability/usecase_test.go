package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	"github.com/m04kA/LDV-ReservationService/internal/infra/storage/reservations"
	"github.com/m04kA/LDV-ReservationService/internal/infra/storage/tables"
	"github.com/m04kA/LDV-ReservationService/internal/service/availability"
	findTable "github.com/m04kA/LDV-ReservationService/internal/usecase/find_table"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fixedTime фиксированный провайдер времени для тестов
type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase(store *reservations.Store, now time.Time) *UseCase {
	registry := tables.NewRegistry([]domain.Table{
		{ID: "T1", MinCapacity: 1, MaxCapacity: 2},
		{ID: "T7", MinCapacity: 4, MaxCapacity: 6},
	})
	checker := availability.NewService(store, registry, nopLogger{})
	allocator := findTable.NewUseCase(registry, checker, nopLogger{})

	uc := NewUseCase(allocator, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func testNow() time.Time {
	return time.Date(2025, 10, 15, 12, 0, 0, 0, time.Local)
}

func TestShiftGapGuidance(t *testing.T) {
	uc := newUseCase(reservations.NewStore(), testNow())

	// 21:00 - совет о пересменке рядом с сырым результатом, не вместо него
	resp := uc.Execute(context.Background(), &Request{PartySize: 2, Date: "2025-10-15", Time: "21:00"})
	assert.True(t, resp.Available)
	assert.Equal(t, []string{"T1"}, resp.TableIDs)
	assert.Equal(t, "21:30", resp.SuggestedTime)
	assert.Contains(t, resp.Message, "cambio turno")
	assert.False(t, resp.RequiresManager)

	// 21:30 - обычная доступность второй смены, без советов
	resp = uc.Execute(context.Background(), &Request{PartySize: 2, Date: "2025-10-15", Time: "21:30"})
	assert.True(t, resp.Available)
	assert.Empty(t, resp.SuggestedTime)
	assert.Equal(t, msgAvailable, resp.Message)
}

func TestBeforeOpeningGuidance(t *testing.T) {
	uc := newUseCase(reservations.NewStore(), testNow())

	resp := uc.Execute(context.Background(), &Request{PartySize: 2, Date: "2025-10-15", Time: "18:00"})
	assert.True(t, resp.Available)
	assert.Equal(t, "19:30", resp.SuggestedTime)
	assert.Contains(t, resp.Message, "apre alle 19:30")
}

func TestManagerEscalationBeatsGuidance(t *testing.T) {
	uc := newUseCase(reservations.NewStore(), testNow())

	resp := uc.Execute(context.Background(), &Request{PartySize: 12, Date: "2025-10-15", Time: "21:00"})
	assert.False(t, resp.Available)
	assert.True(t, resp.RequiresManager)
	assert.Empty(t, resp.SuggestedTime)
	assert.Equal(t, msgManager, resp.Message)
}

func TestNoTablesFound(t *testing.T) {
	// Единственный стол на двоих занят; T7 для двоих слишком велик
	// по нижней границе (4 > 2+1)
	store := reservations.NewStore()
	store.Create(domain.Reservation{
		ID: "r1", StartTime: time.Date(2025, 10, 15, 19, 30, 0, 0, time.Local),
		DurationMinutes: 90, TableIDs: []string{"T1"}, Type: domain.TypeDineIn,
	})
	uc := newUseCase(store, testNow())

	resp := uc.Execute(context.Background(), &Request{PartySize: 2, Date: "2025-10-15", Time: "20:00"})
	assert.False(t, resp.Available)
	assert.False(t, resp.RequiresManager)
	assert.Equal(t, msgNoTables, resp.Message)
}

func TestMalformedInputDefaultsToNow(t *testing.T) {
	// "now" зафиксирован на 20:00 - внутри первой смены
	now := time.Date(2025, 10, 15, 20, 0, 0, 0, time.Local)
	uc := newUseCase(reservations.NewStore(), now)

	resp := uc.Execute(context.Background(), &Request{PartySize: 2, Date: "not-a-date", Time: "banana"})
	require.NotNil(t, resp)
	// Нечитаемый вход не падает и не советует: 20:00 - обычное время смены
	assert.True(t, resp.Available)
	assert.Empty(t, resp.SuggestedTime)
}

func TestResolveStart(t *testing.T) {
	now := time.Date(2025, 10, 15, 20, 7, 0, 0, time.Local)

	tests := []struct {
		name    string
		dateStr string
		timeStr string
		want    time.Time
	}{
		{name: "both valid", dateStr: "2025-12-24", timeStr: "21:30", want: time.Date(2025, 12, 24, 21, 30, 0, 0, time.Local)},
		{name: "bad date falls back to today", dateStr: "24/12/2025", timeStr: "21:30", want: time.Date(2025, 10, 15, 21, 30, 0, 0, time.Local)},
		{name: "bad time falls back to now", dateStr: "2025-12-24", timeStr: "9pm", want: time.Date(2025, 12, 24, 20, 7, 0, 0, time.Local)},
		{name: "empty input is fully now", dateStr: "", timeStr: "", want: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveStart(tt.dateStr, tt.timeStr, now)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}
