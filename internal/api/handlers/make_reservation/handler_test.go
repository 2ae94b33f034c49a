package make_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
	makeReservation "github.com/m04kA/LDV-ReservationService/internal/usecase/make_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// stubUseCase возвращает заранее заданный результат
type stubUseCase struct {
	resp *makeReservation.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *makeReservation.Request) (*makeReservation.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, uc MakeReservationUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(raw))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &stubUseCase{resp: &makeReservation.Response{
		ReservationID: "abc-123",
		Type:          domain.TypeDineIn,
		TableIDs:      []string{"T1"},
		StartTime:     time.Date(2025, 10, 15, 20, 0, 0, 0, time.Local),
	}}

	rec := doRequest(t, uc, MakeReservationRequest{
		PartySize:    2,
		CustomerName: "Mario",
		ContactInfo:  "333",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc-123", resp.ReservationID)
	assert.Equal(t, []string{"T1"}, resp.TableIDs)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "20:00", resp.Time)
}

func TestHandleInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	NewHandler(&stubUseCase{}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", makeReservation.ErrInvalidInput, http.StatusBadRequest},
		{"no table", makeReservation.ErrNoTableAvailable, http.StatusConflict},
		{"manager required", makeReservation.ErrManagerRequired, http.StatusConflict},
		{"unresolved items", &makeReservation.UnresolvedItemsError{Names: []string{"Pizza"}}, http.StatusBadRequest},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tc.err}, MakeReservationRequest{CustomerName: "Mario"})
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandleUnresolvedItemsMessage(t *testing.T) {
	err := &makeReservation.UnresolvedItemsError{Names: []string{"Pizza Margherita", "Sushi"}}
	rec := doRequest(t, &stubUseCase{err: err}, MakeReservationRequest{CustomerName: "Mario"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pizza Margherita, Sushi")
	assert.Contains(t, rec.Body.String(), "non sono sul men")
}
