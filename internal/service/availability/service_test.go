package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	"github.com/m04kA/LDV-ReservationService/internal/infra/storage/reservations"
	"github.com/m04kA/LDV-ReservationService/internal/infra/storage/tables"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.Local)
}

func testRegistry() *tables.Registry {
	return tables.NewRegistry([]domain.Table{
		{ID: "T1", Name: "Win 1", MinCapacity: 1, MaxCapacity: 2},
		{ID: "T7", Name: "Round", MinCapacity: 4, MaxCapacity: 6},
	})
}

func TestIsAvailable(t *testing.T) {
	store := reservations.NewStore()
	store.Create(domain.Reservation{
		ID:              "r1",
		CustomerName:    "Giulia Rossi",
		StartTime:       at(19, 30),
		DurationMinutes: 90, // занимает T1 до 21:00
		TableIDs:        []string{"T1"},
		Type:            domain.TypeDineIn,
	})
	store.Create(domain.Reservation{
		ID:              "r2",
		CustomerName:    "Mario Verdi",
		StartTime:       at(20, 0),
		DurationMinutes: 30,
		TableIDs:        nil, // takeaway, столов не держит
		Type:            domain.TypeTakeaway,
	})

	svc := NewService(store, testRegistry(), nopLogger{})

	tests := []struct {
		name     string
		tableIDs []string
		start    time.Time
		duration int
		want     bool
	}{
		{name: "conflict inside existing interval", tableIDs: []string{"T1"}, start: at(19, 45), duration: 90, want: false},
		{name: "other table is free", tableIDs: []string{"T7"}, start: at(19, 45), duration: 90, want: true},
		{name: "pair conflicts when one table busy", tableIDs: []string{"T7", "T1"}, start: at(20, 0), duration: 90, want: false},
		{name: "start exactly at existing end", tableIDs: []string{"T1"}, start: at(21, 0), duration: 90, want: true},
		{name: "end exactly at existing start", tableIDs: []string{"T1"}, start: at(18, 0), duration: 90, want: true},
		{name: "takeaway never blocks tables", tableIDs: []string{"T7"}, start: at(20, 0), duration: 30, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.IsAvailable(tt.tableIDs, tt.start, tt.duration))
		})
	}
}

func TestTableStatusAt(t *testing.T) {
	store := reservations.NewStore()
	store.Create(domain.Reservation{
		ID:              "r1",
		StartTime:       at(19, 30),
		DurationMinutes: 90,
		TableIDs:        []string{"T1"},
		Type:            domain.TypeDineIn,
	})

	svc := NewService(store, testRegistry(), nopLogger{})

	during := svc.TableStatusAt(at(20, 0))
	assert.Equal(t, domain.TableStatusOccupied, during["T1"])
	assert.Equal(t, domain.TableStatusFree, during["T7"])

	// Снимок ровно в момент окончания брони: стол уже свободен
	after := svc.TableStatusAt(at(21, 0))
	assert.Equal(t, domain.TableStatusFree, after["T1"])
}
