package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dropx/internal/storage"
)

type MockProgressStorage struct {
	mock.Mock
}

func (m *MockProgressStorage) GetLotOperationTotals(ctx context.Context, lotID int64) ([]storage.LotOperationTotal, error) {
	args := m.Called(ctx, lotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.LotOperationTotal), args.Error(1)
}

func opID(id int64) *int64 {
	return &id
}

func qty(v float64) *float64 {
	return &v
}

func TestAll_MinAcrossOperations(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	// Lot L-100 (target 100): cutting is at 60 pcs, sewing at 40.
	// The lot as a whole can only be as far as sewing.
	totals := []storage.LotOperationTotal{
		{LotID: 1, LotNumber: "L-100", TargetQty: qty(100), OperationID: opID(10), Pcs: 60},
		{LotID: 1, LotNumber: "L-100", TargetQty: qty(100), OperationID: opID(11), Pcs: 40},
	}

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(0)).Return(totals, nil)

	service := NewService(mockStorage)
	progress, err := service.All(context.Background())

	assert.NoError(t, err)
	assert.Len(t, progress, 1)
	assert.Equal(t, int64(1), progress[0].ID)
	assert.Equal(t, "L-100", progress[0].LotNumber)
	assert.Equal(t, int64(40), progress[0].CompletedPcs)
	assert.NotNil(t, progress[0].ProgressPct)
	assert.Equal(t, 40.0, *progress[0].ProgressPct)

	mockStorage.AssertExpectations(t)
}

func TestAll_OperationWithoutEntriesPinsLotAtZero(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	totals := []storage.LotOperationTotal{
		{LotID: 1, LotNumber: "L-100", TargetQty: qty(100), OperationID: opID(10), Pcs: 60},
		{LotID: 1, LotNumber: "L-100", TargetQty: qty(100), OperationID: opID(11), Pcs: 0},
	}

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(0)).Return(totals, nil)

	service := NewService(mockStorage)
	progress, err := service.All(context.Background())

	assert.NoError(t, err)
	assert.Len(t, progress, 1)
	assert.Equal(t, int64(0), progress[0].CompletedPcs)
	assert.Equal(t, 0.0, *progress[0].ProgressPct)
}

func TestAll_LotWithoutOperations(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	// A lot with no operations comes back as one row with a nil operation id.
	totals := []storage.LotOperationTotal{
		{LotID: 2, LotNumber: "L-200", TargetQty: qty(50), OperationID: nil, Pcs: 0},
	}

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(0)).Return(totals, nil)

	service := NewService(mockStorage)
	progress, err := service.All(context.Background())

	assert.NoError(t, err)
	assert.Len(t, progress, 1)
	assert.Equal(t, int64(0), progress[0].CompletedPcs)
	assert.Equal(t, 0.0, *progress[0].ProgressPct)
}

func TestAll_NilTargetMeansNilPct(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	totals := []storage.LotOperationTotal{
		{LotID: 3, LotNumber: "L-300", TargetQty: nil, OperationID: opID(30), Pcs: 25},
	}

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(0)).Return(totals, nil)

	service := NewService(mockStorage)
	progress, err := service.All(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(25), progress[0].CompletedPcs)
	assert.Nil(t, progress[0].ProgressPct)
}

func TestAll_ZeroTargetMeansNilPct(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	totals := []storage.LotOperationTotal{
		{LotID: 3, LotNumber: "L-300", TargetQty: qty(0), OperationID: opID(30), Pcs: 25},
	}

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(0)).Return(totals, nil)

	service := NewService(mockStorage)
	progress, err := service.All(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, progress[0].ProgressPct)
}

func TestAll_PctRoundedToTwoDecimals(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	totals := []storage.LotOperationTotal{
		{LotID: 4, LotNumber: "L-400", TargetQty: qty(3), OperationID: opID(40), Pcs: 1},
	}

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(0)).Return(totals, nil)

	service := NewService(mockStorage)
	progress, err := service.All(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 33.33, *progress[0].ProgressPct)
}

func TestAll_PreservesLotOrder(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	// Storage delivers newest lot first; the fold must not reorder.
	totals := []storage.LotOperationTotal{
		{LotID: 9, LotNumber: "L-900", TargetQty: qty(10), OperationID: opID(90), Pcs: 5},
		{LotID: 1, LotNumber: "L-100", TargetQty: qty(10), OperationID: opID(10), Pcs: 7},
	}

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(0)).Return(totals, nil)

	service := NewService(mockStorage)
	progress, err := service.All(context.Background())

	assert.NoError(t, err)
	assert.Len(t, progress, 2)
	assert.Equal(t, "L-900", progress[0].LotNumber)
	assert.Equal(t, "L-100", progress[1].LotNumber)
}

func TestByLot_Success(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	totals := []storage.LotOperationTotal{
		{LotID: 5, LotNumber: "L-500", TargetQty: qty(200), OperationID: opID(50), Pcs: 120},
		{LotID: 5, LotNumber: "L-500", TargetQty: qty(200), OperationID: opID(51), Pcs: 80},
	}

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(5)).Return(totals, nil)

	service := NewService(mockStorage)
	progress, err := service.ByLot(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(80), progress.CompletedPcs)
	assert.Equal(t, 40.0, *progress.ProgressPct)
}

func TestByLot_UnknownLot(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(404)).
		Return([]storage.LotOperationTotal{}, nil)

	service := NewService(mockStorage)
	_, err := service.ByLot(context.Background(), 404)

	assert.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAll_StorageError(t *testing.T) {
	mockStorage := new(MockProgressStorage)

	mockStorage.On("GetLotOperationTotals", mock.Anything, int64(0)).
		Return(nil, errors.New("connection timeout"))

	service := NewService(mockStorage)
	_, err := service.All(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "service.progress.All")
}
