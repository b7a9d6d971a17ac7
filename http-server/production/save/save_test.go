package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dropx/internal/storage"
)

type MockEntryRecorder struct {
	mock.Mock
}

func (m *MockEntryRecorder) AddEntry(ctx context.Context, req storage.SaveProductionEntry) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestSaveEntry_Success(t *testing.T) {
	mockEntries := new(MockEntryRecorder)

	mockEntries.On("AddEntry", mock.Anything, storage.SaveProductionEntry{
		LotID:       1,
		OperationID: 10,
		EmployeeID:  42,
		Pcs:         60,
		EntryDate:   "2024-03-12",
	}).Return(int64(5), nil)

	handler := SaveEntry(slog.Default(), mockEntries)

	body := `{"lot_id": 1, "operation_id": 10, "employee_id": 42, "pcs": 60, "entry_date": "2024-03-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Production entry recorded")

	mockEntries.AssertExpectations(t)
}

func TestSaveEntry_MissingFields(t *testing.T) {
	mockEntries := new(MockEntryRecorder)
	handler := SaveEntry(slog.Default(), mockEntries)

	body := `{"lot_id": 1, "pcs": 60}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockEntries.AssertNotCalled(t, "AddEntry")
}

func TestSaveEntry_NonPositivePcs(t *testing.T) {
	mockEntries := new(MockEntryRecorder)
	handler := SaveEntry(slog.Default(), mockEntries)

	body := `{"lot_id": 1, "operation_id": 10, "employee_id": 42, "pcs": 0, "entry_date": "2024-03-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "pcs must be a positive number")
}

func TestSaveEntry_BadDate(t *testing.T) {
	mockEntries := new(MockEntryRecorder)
	handler := SaveEntry(slog.Default(), mockEntries)

	body := `{"lot_id": 1, "operation_id": 10, "employee_id": 42, "pcs": 60, "entry_date": "12-03-2024"}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "entry_date must be YYYY-MM-DD")
}

func TestSaveEntry_StorageError(t *testing.T) {
	mockEntries := new(MockEntryRecorder)

	mockEntries.On("AddEntry", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection timeout"))

	handler := SaveEntry(slog.Default(), mockEntries)

	body := `{"lot_id": 1, "operation_id": 10, "employee_id": 42, "pcs": 60, "entry_date": "2024-03-12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/production", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal server error")
}
