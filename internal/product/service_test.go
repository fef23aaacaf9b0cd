package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetList(ctx context.Context, opts ListOptions) ([]*Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewProductInput, slug string) (*Product, error) {
	args := m.Called(ctx, input, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success slugifies the name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := NewProductInput{
			Name:       "Cafe Premium 500g",
			Price:      decimal.RequireFromString("19.90"),
			CategoryID: 1,
			Stock:      10,
			Available:  true,
		}

		mockRepo.On("Create", ctx, input, "cafe-premium-500g").
			Return(&Product{ID: 1, Name: input.Name, Slug: "cafe-premium-500g"}, nil).Once()

		p, err := svc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "cafe-premium-500g", p.Slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Non-positive price is rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, NewProductInput{
			Name:  "Gratis",
			Price: decimal.Zero,
		})

		assert.ErrorIs(t, err, ErrInvalidPrice)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate slug", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := NewProductInput{Name: "Cafe", Price: decimal.RequireFromString("5.00")}
		mockRepo.On("Create", ctx, input, "cafe").Return(nil, ErrSlugTaken).Once()

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrSlugTaken)
	})
}

func TestService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty slug short-circuits", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.GetBySlug(ctx, "")

		assert.ErrorIs(t, err, ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Product referenced by an order", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Delete", ctx, uint(3)).Return(ErrProductReferenced).Once()

		err := svc.Delete(ctx, 3)
		assert.ErrorIs(t, err, ErrProductReferenced)
	})
}
