package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dropx/internal/storage"
)

type MockIdentityStorage struct {
	mock.Mock
}

func (m *MockIdentityStorage) UserByID(ctx context.Context, id int64) (*storage.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.User), args.Error(1)
}

func (m *MockIdentityStorage) EmployeeIDByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdentityStorage) EmployeeIDByEmpCode(ctx context.Context, empCode string) (int64, error) {
	args := m.Called(ctx, empCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdentityStorage) EmployeeIDByPhone(ctx context.Context, phone string) (int64, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(int64), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func workerUser() *storage.User {
	return &storage.User{
		ID:       7,
		IDNumber: "EMP-007",
		Role:     storage.RoleWorker,
		Name:     "Ravi",
		Phone:    strPtr("9876543210"),
	}
}

func TestResolveEmployeeID_DirectLinkWins(t *testing.T) {
	mockStorage := new(MockIdentityStorage)

	mockStorage.On("UserByID", mock.Anything, int64(7)).Return(workerUser(), nil)
	mockStorage.On("EmployeeIDByUserID", mock.Anything, int64(7)).Return(int64(42), nil)

	resolver := NewResolver(mockStorage)
	id, linked, err := resolver.ResolveEmployeeID(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, linked)
	assert.Equal(t, int64(42), id)

	// The direct link is authoritative; the fallbacks must not even run.
	mockStorage.AssertNotCalled(t, "EmployeeIDByEmpCode")
	mockStorage.AssertNotCalled(t, "EmployeeIDByPhone")
	mockStorage.AssertExpectations(t)
}

func TestResolveEmployeeID_FallsThroughToEmpCode(t *testing.T) {
	mockStorage := new(MockIdentityStorage)

	mockStorage.On("UserByID", mock.Anything, int64(7)).Return(workerUser(), nil)
	mockStorage.On("EmployeeIDByUserID", mock.Anything, int64(7)).
		Return(int64(0), storage.ErrNotFound)
	mockStorage.On("EmployeeIDByEmpCode", mock.Anything, "EMP-007").Return(int64(43), nil)

	resolver := NewResolver(mockStorage)
	id, linked, err := resolver.ResolveEmployeeID(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, linked)
	assert.Equal(t, int64(43), id)

	mockStorage.AssertNotCalled(t, "EmployeeIDByPhone")
	mockStorage.AssertExpectations(t)
}

func TestResolveEmployeeID_FallsThroughToPhone(t *testing.T) {
	mockStorage := new(MockIdentityStorage)

	mockStorage.On("UserByID", mock.Anything, int64(7)).Return(workerUser(), nil)
	mockStorage.On("EmployeeIDByUserID", mock.Anything, int64(7)).
		Return(int64(0), storage.ErrNotFound)
	mockStorage.On("EmployeeIDByEmpCode", mock.Anything, "EMP-007").
		Return(int64(0), storage.ErrNotFound)
	mockStorage.On("EmployeeIDByPhone", mock.Anything, "9876543210").Return(int64(44), nil)

	resolver := NewResolver(mockStorage)
	id, linked, err := resolver.ResolveEmployeeID(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, linked)
	assert.Equal(t, int64(44), id)

	mockStorage.AssertExpectations(t)
}

func TestResolveEmployeeID_NoMatchIsNotAnError(t *testing.T) {
	mockStorage := new(MockIdentityStorage)

	mockStorage.On("UserByID", mock.Anything, int64(7)).Return(workerUser(), nil)
	mockStorage.On("EmployeeIDByUserID", mock.Anything, int64(7)).
		Return(int64(0), storage.ErrNotFound)
	mockStorage.On("EmployeeIDByEmpCode", mock.Anything, "EMP-007").
		Return(int64(0), storage.ErrNotFound)
	mockStorage.On("EmployeeIDByPhone", mock.Anything, "9876543210").
		Return(int64(0), storage.ErrNotFound)

	resolver := NewResolver(mockStorage)
	id, linked, err := resolver.ResolveEmployeeID(context.Background(), 7)

	assert.NoError(t, err)
	assert.False(t, linked)
	assert.Equal(t, int64(0), id)
}

func TestResolveEmployeeID_SkipsEmptyPhone(t *testing.T) {
	mockStorage := new(MockIdentityStorage)

	user := workerUser()
	user.Phone = nil

	mockStorage.On("UserByID", mock.Anything, int64(7)).Return(user, nil)
	mockStorage.On("EmployeeIDByUserID", mock.Anything, int64(7)).
		Return(int64(0), storage.ErrNotFound)
	mockStorage.On("EmployeeIDByEmpCode", mock.Anything, "EMP-007").
		Return(int64(0), storage.ErrNotFound)

	resolver := NewResolver(mockStorage)
	_, linked, err := resolver.ResolveEmployeeID(context.Background(), 7)

	assert.NoError(t, err)
	assert.False(t, linked)

	mockStorage.AssertNotCalled(t, "EmployeeIDByPhone")
}

func TestResolveEmployeeID_UnknownUser(t *testing.T) {
	mockStorage := new(MockIdentityStorage)

	mockStorage.On("UserByID", mock.Anything, int64(99)).
		Return(nil, storage.ErrNotFound)

	resolver := NewResolver(mockStorage)
	id, linked, err := resolver.ResolveEmployeeID(context.Background(), 99)

	assert.NoError(t, err)
	assert.False(t, linked)
	assert.Equal(t, int64(0), id)
}

func TestResolveEmployeeID_StorageError(t *testing.T) {
	mockStorage := new(MockIdentityStorage)

	mockStorage.On("UserByID", mock.Anything, int64(7)).Return(workerUser(), nil)
	mockStorage.On("EmployeeIDByUserID", mock.Anything, int64(7)).
		Return(int64(0), errors.New("connection timeout"))

	resolver := NewResolver(mockStorage)
	_, _, err := resolver.ResolveEmployeeID(context.Background(), 7)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "service.identity.ResolveEmployeeID")
}
