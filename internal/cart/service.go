package cart

import (
	"context"

	"loja-be/internal/logger"
	"loja-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for the session cart.
type Service interface {
	Add(ctx context.Context, productID uint, quantity int) (Cart, error)
	Remove(ctx context.Context, productID uint) error
	View(ctx context.Context) (*View, error)
	Items(ctx context.Context) (Cart, error)
	Clear(ctx context.Context) error
}

type service struct {
	store       Store
	productRepo product.Repository
}

func NewService(store Store, productRepo product.Repository) Service {
	return &service{store: store, productRepo: productRepo}
}

// Add puts quantity units of a product into the session cart. A product
// already present has its quantity bumped; a new one is inserted with a
// snapshot of the current name and price.
func (s *service) Add(ctx context.Context, productID uint, quantity int) (Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Add"),
		zap.Uint("product_id", productID),
		zap.Int("quantity", quantity),
	)

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Warn("product lookup failed", zap.Error(err))
		return nil, err
	}
	if !p.Available {
		return nil, ErrProductUnavailable
	}

	c := s.store.Load(ctx)
	key := Key(productID)

	if line, ok := c[key]; ok {
		line.Quantity += quantity
		c[key] = line
	} else {
		c[key] = Line{
			ProductID: productID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  quantity,
		}
	}

	if err := s.store.Save(ctx, c); err != nil {
		log.Error("failed to save cart", zap.Error(err))
		return nil, err
	}

	log.Info("product added to cart", zap.Int("cart_size", len(c)))
	return c, nil
}

// Remove drops a product from the cart. Removing something that is not
// there is a no-op, not an error.
func (s *service) Remove(ctx context.Context, productID uint) error {
	c := s.store.Load(ctx)
	key := Key(productID)

	if _, ok := c[key]; !ok {
		return nil
	}

	delete(c, key)
	return s.store.Save(ctx, c)
}

func (s *service) View(ctx context.Context) (*View, error) {
	return BuildView(s.store.Load(ctx)), nil
}

func (s *service) Items(ctx context.Context) (Cart, error) {
	return s.store.Load(ctx), nil
}

func (s *service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
