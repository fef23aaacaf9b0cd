package address

import (
	"context"
	"testing"

	"loja-be/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID uint) ([]*Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Address), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Address), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, addr *Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, addr *Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ClearDefault(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRepository) SetDefault(ctx context.Context, userID uint, addressID uuid.UUID) error {
	args := m.Called(ctx, userID, addressID)
	return args.Error(0)
}

func userCtx(id uint) context.Context {
	return utils.SetUserContext(context.Background(), id, "test@example.com", "user")
}

func TestService_Create(t *testing.T) {
	input := CreateAddressInput{
		Street:       "Rua das Flores",
		Number:       "100",
		Neighborhood: "Centro",
		City:         "Sao Paulo",
		State:        "SP",
		PostalCode:   "01000-000",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		addr, err := svc.Create(userCtx(1), input)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), addr.UserID)
		assert.Equal(t, "SP", addr.State)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Default clears previous default", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		in := input
		in.SetAsDefault = true

		mockRepo.On("ClearDefault", mock.Anything, uint(1)).Return(nil).Once()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		addr, err := svc.Create(userCtx(1), in)

		assert.NoError(t, err)
		assert.True(t, addr.IsDefault)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid state code", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		in := input
		in.State = "Sao"

		_, err := svc.Create(userCtx(1), in)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("Invalid postal code", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		in := input
		in.PostalCode = "abc"

		_, err := svc.Create(userCtx(1), in)
		assert.ErrorIs(t, err, ErrInvalidPostal)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestService_Get(t *testing.T) {
	addrID := uuid.New()

	t.Run("Owner can read", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, addrID).
			Return(&Address{ID: addrID, UserID: 1}, nil).Once()

		addr, err := svc.Get(userCtx(1), addrID)
		assert.NoError(t, err)
		assert.Equal(t, addrID, addr.ID)
	})

	t.Run("Other user's address reads as not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, addrID).
			Return(&Address{ID: addrID, UserID: 2}, nil).Once()

		_, err := svc.Get(userCtx(1), addrID)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	addrID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, addrID).
			Return(&Address{ID: addrID, UserID: 1}, nil).Once()
		mockRepo.On("Delete", mock.Anything, addrID).Return(nil).Once()

		assert.NoError(t, svc.Delete(userCtx(1), addrID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Cannot delete another user's address", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, addrID).
			Return(&Address{ID: addrID, UserID: 2}, nil).Once()

		err := svc.Delete(userCtx(1), addrID)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}
