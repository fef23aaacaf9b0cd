package product

import (
	"context"

	"loja-be/internal/logger"
	"loja-be/internal/utils"

	"go.uber.org/zap"
)

// Service defines the business logic for the product catalog.
type Service interface {
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	return s.repo.GetList(ctx, opts)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	if slug == "" {
		return nil, ErrProductNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("name", input.Name),
	)

	if !input.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	p, err := s.repo.Create(ctx, input, utils.Slugify(input.Name))
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))
	return p, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Delete"),
		zap.Uint("product_id", id),
	)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("failed to delete product", zap.Error(err))
		return err
	}

	log.Info("product deleted")
	return nil
}
