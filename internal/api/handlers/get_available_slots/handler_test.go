package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
)

type mockUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotDate time.Time
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	m.gotDate = req.Date
	return m.resp, m.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{resp: &getAvailableSlots.Response{
		Date: date,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "10:00", DurationMinutes: 60, Bookable: true},
			{StartTime: "12:00", DurationMinutes: 60, Bookable: false, Reason: getAvailableSlots.ReasonLunchBreak},
		},
	}}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-06-05", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, date, uc.gotDate)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-06-05", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].Bookable)
	assert.Empty(t, resp.Slots[0].Reason)
	assert.Equal(t, "lunch_break", resp.Slots[1].Reason)
}

func TestHandle_MissingDate(t *testing.T) {
	handler := NewHandler(&mockUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	handler := NewHandler(&mockUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=05-06-2026", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseError(t *testing.T) {
	uc := &mockUseCase{err: errors.New("boom")}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-06-05", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
