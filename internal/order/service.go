package order

import (
	"context"
	"errors"
	"sort"

	"loja-be/internal/address"
	"loja-be/internal/cart"
	"loja-be/internal/logger"
	"loja-be/internal/metrics"
	"loja-be/internal/product"
	"loja-be/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Place(ctx context.Context, addressID string) (*Order, error)
	ListForUser(ctx context.Context) ([]*Order, error)
	GetForUser(ctx context.Context, orderID uint) (*Order, error)
}

type service struct {
	repo        Repository
	addressRepo address.Repository
	cart        cart.Service
}

func NewService(repo Repository, addressRepo address.Repository, cartSvc cart.Service) Service {
	return &service{
		repo:        repo,
		addressRepo: addressRepo,
		cart:        cartSvc,
	}
}

// Place turns the session cart into an order, all or nothing:
// preconditions, a full stock verification pass, then one transaction
// that writes the order, its items and the stock decrements. The cart
// is only cleared after the commit, so a failed checkout leaves it
// intact for a retry.
func (s *service) Place(ctx context.Context, addressID string) (*Order, error) {
	timer := metrics.StartTimer()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Place"),
		zap.Uint("user_id", userID),
	)

	log.Info("order placement started")

	// ---------- preconditions ----------
	lines, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		log.Warn("checkout with empty cart")
		return nil, ErrEmptyCart
	}

	if addressID == "" {
		return nil, ErrInvalidAddress
	}
	addrID, err := uuid.Parse(addressID)
	if err != nil {
		return nil, ErrInvalidAddress
	}

	addr, err := s.addressRepo.GetByID(ctx, addrID)
	if err != nil || addr.UserID != userID {
		log.Warn("checkout with address not owned by user")
		return nil, ErrAddressNotFound
	}

	// ---------- stock verification pass ----------
	// Reads all live levels before any mutation happens. The commit
	// below re-checks via conditional decrements, so a concurrent
	// checkout slipping between the two passes still cannot oversell.
	items := sortedItems(lines)

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	levels, err := s.repo.GetStockLevels(ctx, productIDs)
	if err != nil {
		log.Error("stock verification failed", zap.Error(err))
		metrics.OrdersFailed.Inc()
		return nil, ErrTransactionFailed
	}

	for _, item := range items {
		lvl, ok := levels[item.ProductID]
		if !ok {
			log.Warn("cart references missing product",
				zap.Uint("product_id", item.ProductID))
			return nil, product.ErrProductNotFound
		}
		if lvl.Stock < item.Quantity {
			log.Warn("insufficient stock",
				zap.Uint("product_id", item.ProductID),
				zap.Int("requested", item.Quantity),
				zap.Int("available", lvl.Stock),
			)
			return nil, &InsufficientStockError{
				ProductID: item.ProductID,
				Name:      lvl.Name,
				Available: lvl.Stock,
			}
		}
	}

	// ---------- commit pass ----------
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	o := &Order{
		UserID:    userID,
		AddressID: &addr.ID,
		Total:     total,
		Status:    StatusPending,
	}

	placed, err := s.repo.Create(ctx, o, items)
	if err != nil {
		metrics.OrdersFailed.Inc()

		var stockErr *InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, err
		}

		log.Error("order transaction failed", zap.Error(err))
		return nil, ErrTransactionFailed
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order exists; a stale cart is an annoyance, not a loss.
		log.Warn("failed to clear cart after checkout", zap.Error(err))
	}

	metrics.OrdersPlaced.Inc()
	log.Info("order placed",
		zap.Uint("order_id", placed.ID),
		zap.String("total", placed.Total.StringFixed(2)),
		zap.Duration("duration", timer.Duration()),
	)

	return placed, nil
}

// sortedItems turns cart lines into order items in product-id order so
// the transaction writes rows deterministically.
func sortedItems(lines cart.Cart) []Item {
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, Item{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})
	return items
}

func (s *service) ListForUser(ctx context.Context) ([]*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*Order{}
	}
	return orders, nil
}

func (s *service) GetForUser(ctx context.Context, orderID uint) (*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	return s.repo.GetByIDForUser(ctx, userID, orderID)
}
