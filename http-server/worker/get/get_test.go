package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dropx/internal/middleware/auth"
	"dropx/internal/storage"
)

type MockIncomeAggregator struct {
	mock.Mock
}

func (m *MockIncomeAggregator) Summary(ctx context.Context, userID int64, from, to string) (*storage.WorkerSummary, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.WorkerSummary), args.Error(1)
}

func (m *MockIncomeAggregator) Monthly(ctx context.Context, userID int64) ([]storage.MonthlyIncome, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.MonthlyIncome), args.Error(1)
}

func workerRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	claims := &auth.Claims{UserID: 7, IDNumber: "EMP-007", Role: storage.RoleWorker}
	return req.WithContext(auth.WithClaims(req.Context(), claims))
}

func TestGetSummary_Success(t *testing.T) {
	mockIncome := new(MockIncomeAggregator)

	summary := &storage.WorkerSummary{
		TotalIncome: 190,
		Entries: []storage.WorkerEntry{
			{ID: 1, LotNumber: "L-100", OpName: "Cutting", RatePerPiece: 1.5, Pcs: 60, Income: 90},
			{ID: 2, LotNumber: "L-100", OpName: "Sewing", RatePerPiece: 2.5, Pcs: 40, Income: 100},
		},
	}

	mockIncome.On("Summary", mock.Anything, int64(7), "", "").Return(summary, nil)

	handler := GetSummary(slog.Default(), mockIncome)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, workerRequest(t, "/api/worker/summary"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp storage.WorkerSummary
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 190.0, resp.TotalIncome)
	assert.Len(t, resp.Entries, 2)

	mockIncome.AssertExpectations(t)
}

func TestGetSummary_RangePassedThrough(t *testing.T) {
	mockIncome := new(MockIncomeAggregator)

	mockIncome.On("Summary", mock.Anything, int64(7), "2024-03-01", "2024-03-31").
		Return(&storage.WorkerSummary{Entries: []storage.WorkerEntry{}}, nil)

	handler := GetSummary(slog.Default(), mockIncome)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, workerRequest(t, "/api/worker/summary?from=2024-03-01&to=2024-03-31"))

	assert.Equal(t, http.StatusOK, rr.Code)
	mockIncome.AssertExpectations(t)
}

func TestGetSummary_BadDate(t *testing.T) {
	mockIncome := new(MockIncomeAggregator)
	handler := GetSummary(slog.Default(), mockIncome)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, workerRequest(t, "/api/worker/summary?from=03-2024"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "from/to must be YYYY-MM-DD")
	mockIncome.AssertNotCalled(t, "Summary")
}

func TestGetSummary_NoClaims(t *testing.T) {
	mockIncome := new(MockIncomeAggregator)
	handler := GetSummary(slog.Default(), mockIncome)

	req := httptest.NewRequest(http.MethodGet, "/api/worker/summary", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	mockIncome.AssertNotCalled(t, "Summary")
}

func TestGetSummary_ServiceError(t *testing.T) {
	mockIncome := new(MockIncomeAggregator)

	mockIncome.On("Summary", mock.Anything, int64(7), "", "").
		Return(nil, errors.New("connection timeout"))

	handler := GetSummary(slog.Default(), mockIncome)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, workerRequest(t, "/api/worker/summary"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal server error")
}

func TestGetMonthly_Success(t *testing.T) {
	mockIncome := new(MockIncomeAggregator)

	months := []storage.MonthlyIncome{
		{Month: "2024-02", TotalIncome: 310.5},
		{Month: "2024-03", TotalIncome: 190},
	}

	mockIncome.On("Monthly", mock.Anything, int64(7)).Return(months, nil)

	handler := GetMonthly(slog.Default(), mockIncome)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, workerRequest(t, "/api/worker/monthly"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []storage.MonthlyIncome
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "2024-02", resp[0].Month)

	mockIncome.AssertExpectations(t)
}

func TestGetMonthly_NoClaims(t *testing.T) {
	mockIncome := new(MockIncomeAggregator)
	handler := GetMonthly(slog.Default(), mockIncome)

	req := httptest.NewRequest(http.MethodGet, "/api/worker/monthly", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	mockIncome.AssertNotCalled(t, "Monthly")
}
