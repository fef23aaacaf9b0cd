package address

import (
	"context"
	"regexp"

	"loja-be/internal/logger"
	"loja-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	stateRegex  = regexp.MustCompile(`^[A-Z]{2}$`)
	postalRegex = regexp.MustCompile(`^\d{5}-?\d{3}$`)
)

// Service defines the business logic for the address book.
type Service interface {
	List(ctx context.Context) ([]*Address, error)
	Get(ctx context.Context, addressID uuid.UUID) (*Address, error)

	Create(ctx context.Context, input CreateAddressInput) (*Address, error)
	Update(ctx context.Context, input UpdateAddressInput) (*Address, error)
	Delete(ctx context.Context, addressID uuid.UUID) error

	SetDefaultAddress(ctx context.Context, addressID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Address, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "List"),
		zap.Uint("user_id", userID),
	)

	log.Info("listing addresses")

	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Get(
	ctx context.Context,
	addressID uuid.UUID,
) (*Address, error) {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Get"),
		zap.String("address_id", addressID.String()),
	)

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		log.Warn("address not found", zap.Error(err))
		return nil, err
	}

	// Never reveal another user's address.
	if addr.UserID != userID {
		log.Warn("unauthorized address access")
		return nil, ErrAddressNotFound
	}

	return addr, nil
}

func validateFields(state, postal string) error {
	if !stateRegex.MatchString(state) {
		return ErrInvalidState
	}
	if !postalRegex.MatchString(postal) {
		return ErrInvalidPostal
	}
	return nil
}

func (s *service) Create(
	ctx context.Context,
	input CreateAddressInput,
) (*Address, error) {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)

	if err := validateFields(input.State, input.PostalCode); err != nil {
		return nil, err
	}

	addr := &Address{
		ID:           uuid.New(),
		UserID:       userID,
		Street:       input.Street,
		Number:       input.Number,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		IsDefault:    input.SetAsDefault,
	}

	if input.SetAsDefault {
		_ = s.repo.ClearDefault(ctx, userID)
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	log.Info("address created", zap.String("address_id", addr.ID.String()))
	return addr, nil
}

func (s *service) Update(
	ctx context.Context,
	input UpdateAddressInput,
) (*Address, error) {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Update"),
		zap.Uint("user_id", userID),
	)

	id, err := uuid.Parse(input.AddressID)
	if err != nil {
		return nil, ErrInvalidID
	}

	if err := validateFields(input.State, input.PostalCode); err != nil {
		return nil, err
	}

	old, err := s.repo.GetByID(ctx, id)
	if err != nil || old.UserID != userID {
		return nil, ErrAddressNotFound
	}

	addr := &Address{
		ID:           id,
		UserID:       userID,
		Street:       input.Street,
		Number:       input.Number,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		IsDefault:    input.SetAsDefault,
	}

	if input.SetAsDefault && !old.IsDefault {
		_ = s.repo.ClearDefault(ctx, userID)
	}

	if err := s.repo.Update(ctx, addr); err != nil {
		log.Error("failed to update address", zap.Error(err))
		return nil, err
	}

	log.Info("address updated", zap.String("address_id", id.String()))
	return addr, nil
}

func (s *service) Delete(
	ctx context.Context,
	addressID uuid.UUID,
) error {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Delete"),
		zap.String("address_id", addressID.String()),
		zap.Uint("user_id", userID),
	)

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil || addr.UserID != userID {
		return ErrAddressNotFound
	}

	log.Info("address deleted")

	return s.repo.Delete(ctx, addressID)
}

func (s *service) SetDefaultAddress(
	ctx context.Context,
	addressID uuid.UUID,
) error {

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "SetDefaultAddress"),
		zap.String("address_id", addressID.String()),
		zap.Uint("user_id", userID),
	)

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil || addr.UserID != userID {
		return ErrAddressNotFound
	}

	log.Info("setting default address")

	if err := s.repo.SetDefault(ctx, userID, addressID); err != nil {
		log.Error("failed to set default address", zap.Error(err))
		return err
	}

	return nil
}
